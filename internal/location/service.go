package location

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=location
type Repository interface {
	CreateLocation(ctx context.Context, loc *Location) error
	GetLocation(ctx context.Context, name string) (*Location, error)
	ListLocations(ctx context.Context) ([]*Location, error)
	UpsertLocations(ctx context.Context, locs []*Location) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name       string
	Population int
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if p.Population < 0 {
		return fmt.Errorf("%w: population of %s must not be negative", ErrInvalid, p.Name)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Location, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	loc := &Location{Name: strings.TrimSpace(params.Name), Population: params.Population}
	if err := s.repo.CreateLocation(ctx, loc); err != nil {
		return nil, err
	}

	return loc, nil
}

func (s *Service) Get(ctx context.Context, name string) (*Location, error) {
	return s.repo.GetLocation(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]*Location, error) {
	return s.repo.ListLocations(ctx)
}

// ImportBatch upserts the given locations by name. Rows are validated up front so a bad row
// leaves the store untouched.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) ([]*Location, error) {
	if len(params) == 0 {
		return nil, nil
	}

	locs := make([]*Location, 0, len(params))

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}

		locs = append(locs, &Location{Name: strings.TrimSpace(p.Name), Population: p.Population})
	}

	if err := s.repo.UpsertLocations(ctx, locs); err != nil {
		return nil, fmt.Errorf("upsert locations: %w", err)
	}

	return locs, nil
}
