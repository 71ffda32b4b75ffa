package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/conectando/internal/importer/census"
	"github.com/MrJamesThe3rd/conectando/internal/location"
)

type Service struct {
	census Importer
}

func NewService() *Service {
	return &Service{
		census: census.NewParser(),
	}
}

// Import parses r with the importer registered for source. An empty source means census.
func (s *Service) Import(source Source, r io.Reader) ([]location.CreateParams, error) {
	var importer Importer

	switch source {
	case SourceCensus, "":
		importer = s.census
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return importer.Parse(r)
}
