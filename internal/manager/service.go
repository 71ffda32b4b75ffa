package manager

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/conectando/internal/calendar"
	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/ledger"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

// Service runs portfolio-wide operations on top of the domain services.
type Service struct {
	ledger    ledger.Repository
	projects  *project.Service
	donors    *donor.Service
	locations *location.Service
	now       func() time.Time
}

func NewService(repo ledger.Repository, projects *project.Service, donors *donor.Service, locations *location.Service) *Service {
	return &Service{
		ledger:    repo,
		projects:  projects,
		donors:    donors,
		locations: locations,
		now:       calendar.Today,
	}
}

// SweepResult summarises one sweep run.
type SweepResult struct {
	Closed            []string `json:"closed"`
	Refunded          []string `json:"refunded"`
	RefundedDonations int      `json:"refunded_donations"`
}

// Sweep closes every finished open project and refunds the incomplete ones in a single
// transaction. Open projects and the donors involved stay locked until it commits.
func (s *Service) Sweep(ctx context.Context) (SweepResult, error) {
	today := s.now()

	tx, err := s.ledger.Begin(ctx)
	if err != nil {
		return SweepResult{}, err
	}
	defer tx.Rollback()

	open, err := tx.OpenProjects(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("load open projects: %w", err)
	}

	var refundable []donation.Donation

	for _, p := range open {
		if p.HasFinished(today) && p.Status != project.StatusComplete {
			refundable = append(refundable, p.Donations...)
		}
	}

	var users []*donor.User
	if len(refundable) > 0 {
		users, err = tx.Donors(ctx, ledger.Nicknames(refundable))
		if err != nil {
			return SweepResult{}, fmt.Errorf("load donors: %w", err)
		}
	}

	m := New(open, nil, users, nil)

	res, err := m.CloseFinishedProjects(today)
	if err != nil {
		return SweepResult{}, err
	}

	if err := tx.DeleteDonations(ctx, ledger.DonationIDs(res.RefundedDonations)); err != nil {
		return SweepResult{}, err
	}

	for _, u := range res.Donors {
		if err := tx.SaveDonor(ctx, u); err != nil {
			return SweepResult{}, err
		}
	}

	for _, p := range res.Closed {
		if err := tx.SaveProject(ctx, p); err != nil {
			return SweepResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return SweepResult{}, fmt.Errorf("commit sweep: %w", err)
	}

	out := SweepResult{
		Closed:            names(res.Closed),
		Refunded:          names(res.Refunded),
		RefundedDonations: len(res.RefundedDonations),
	}

	slog.Info("sweep finished",
		"closed", len(out.Closed),
		"refunded", len(out.Refunded),
		"refunded_donations", out.RefundedDonations,
	)

	return out, nil
}

// Portfolio loads a read-only Manager over the current state.
func (s *Service) Portfolio(ctx context.Context) (*Manager, error) {
	open, err := s.projects.List(ctx, project.ListFilter{Closed: new(false)})
	if err != nil {
		return nil, fmt.Errorf("list open projects: %w", err)
	}

	closed, err := s.projects.List(ctx, project.ListFilter{Closed: new(true)})
	if err != nil {
		return nil, fmt.Errorf("list closed projects: %w", err)
	}

	users, err := s.donors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}

	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	return New(open, closed, users, locations), nil
}

func (s *Service) EndingThisMonth(ctx context.Context) ([]*project.Project, error) {
	m, err := s.Portfolio(ctx)
	if err != nil {
		return nil, err
	}

	return m.OpenProjectsEndingThisMonth(s.now()), nil
}

func (s *Service) TopTen(ctx context.Context) ([]donation.Donation, error) {
	users, err := s.donors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}

	return New(nil, nil, users, nil).TopTenBiggestDonations(), nil
}

// Today is the date the service considers current.
func (s *Service) Today() time.Time {
	return s.now()
}

func names(projects []*project.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Name
	}

	return out
}
