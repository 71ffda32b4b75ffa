package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/conectando/internal/calendar"
	"github.com/MrJamesThe3rd/conectando/internal/ledger"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

type Service struct {
	repo  ledger.Repository
	admin User
	now   func() time.Time
}

func NewService(repo ledger.Repository, admin User) *Service {
	return &Service{repo: repo, admin: admin, now: calendar.Today}
}

type CreateParams struct {
	Name              string
	Factor            int
	ClosurePercentage int
	StartDate         time.Time
	DurationInDays    int
	LocationName      string
}

func (s *Service) CreateProject(ctx context.Context, params CreateParams) (*project.Project, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	loc, err := tx.Location(ctx, params.LocationName)
	if err != nil {
		return nil, err
	}

	p, err := s.admin.CreateProject(ProjectParams{
		Name:              params.Name,
		Factor:            params.Factor,
		ClosurePercentage: params.ClosurePercentage,
		StartDate:         params.StartDate,
		DurationInDays:    params.DurationInDays,
		Location:          *loc,
	}, s.now())
	if err != nil {
		return nil, err
	}

	if err := tx.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit project: %w", err)
	}

	slog.Info("project created", "project", p.Name, "admin", s.admin.Name, "goal", p.MoneyRequired())

	return p, nil
}

// CancelProject cancels the named project and refunds its donors atomically.
func (s *Service) CancelProject(ctx context.Context, name string) (*project.Project, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p, err := tx.Project(ctx, name)
	if err != nil {
		return nil, err
	}

	refunded := p.Donations

	donors, err := tx.Donors(ctx, ledger.Nicknames(refunded))
	if err != nil {
		return nil, err
	}

	if err := s.admin.CancelProject(p, donors); err != nil {
		return nil, err
	}

	if err := tx.DeleteDonations(ctx, ledger.DonationIDs(refunded)); err != nil {
		return nil, err
	}

	for _, u := range donors {
		if err := tx.SaveDonor(ctx, u); err != nil {
			return nil, err
		}
	}

	if err := tx.SaveProject(ctx, p); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancellation: %w", err)
	}

	slog.Info("project cancelled", "project", p.Name, "admin", s.admin.Name, "refunded_donations", len(refunded))

	return p, nil
}
