package project

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/conectando/internal/calendar"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	GetProject(ctx context.Context, name string) (*Project, error)
	ListProjects(ctx context.Context, filter ListFilter) ([]*Project, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: calendar.Today}
}

// ListFilter narrows project listings. Nil fields match everything.
type ListFilter struct {
	Status *Status
	Closed *bool
	// FinishFrom and FinishTo bound FinishDate, both inclusive.
	FinishFrom *time.Time
	FinishTo   *time.Time
}

func (s *Service) Get(ctx context.Context, name string) (*Project, error) {
	return s.repo.GetProject(ctx, name)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Project, error) {
	return s.repo.ListProjects(ctx, filter)
}

// EndingThisMonth lists open projects whose finish date falls in the current month.
func (s *Service) EndingThisMonth(ctx context.Context) ([]*Project, error) {
	start, end := calendar.MonthRange(s.now())

	return s.repo.ListProjects(ctx, ListFilter{
		Closed:     new(false),
		FinishFrom: &start,
		FinishTo:   &end,
	})
}
