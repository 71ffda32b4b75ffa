package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/conectando/internal/importer"
)

func TestService_Import(t *testing.T) {
	svc := importer.NewService()

	locs, err := svc.Import(importer.SourceCensus, strings.NewReader("Localidad;Población\nCruz Azul;900\n"))
	require.NoError(t, err)
	assert.Len(t, locs, 1)

	locs, err = svc.Import("", strings.NewReader("name,population\nSanta Rita,1000\n"))
	require.NoError(t, err)
	assert.Len(t, locs, 1)

	_, err = svc.Import("shapefile", strings.NewReader(""))
	assert.Error(t, err)
}
