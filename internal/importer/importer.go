package importer

import (
	"io"

	"github.com/MrJamesThe3rd/conectando/internal/location"
)

// Source identifies the layout of an uploaded locations file.
type Source string

const (
	SourceCensus Source = "census"
)

type Importer interface {
	Parse(r io.Reader) ([]location.CreateParams, error)
}
