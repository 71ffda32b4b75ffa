// Package funding runs the inbound donation flow: resolve donor and project, apply the donation
// and persist both sides in one transaction.
package funding

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/calendar"
	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/ledger"
)

type Service struct {
	repo ledger.Repository
	now  func() time.Time
}

func NewService(repo ledger.Repository) *Service {
	return &Service{repo: repo, now: calendar.Today}
}

type DonateParams struct {
	Nickname    string
	ProjectName string
	Comment     string
	Amount      decimal.Decimal
}

// Donate applies a donation. Lookup failures wrap donor.ErrNotFound or project.ErrNotFound;
// rule violations wrap donor.ErrInsufficientFunds, donation.ErrInvalidAmount or
// donation.ErrInvalidDonation.
func (s *Service) Donate(ctx context.Context, params DonateParams) (donation.Donation, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return donation.Donation{}, err
	}
	defer tx.Rollback()

	// Projects are always locked before donors.
	p, err := tx.Project(ctx, params.ProjectName)
	if err != nil {
		return donation.Donation{}, err
	}

	u, err := tx.Donor(ctx, params.Nickname)
	if err != nil {
		return donation.Donation{}, err
	}

	d, err := u.Donate(params.Amount, params.Comment, p, s.now())
	if err != nil {
		return donation.Donation{}, err
	}

	if err := tx.AddDonation(ctx, d); err != nil {
		return donation.Donation{}, err
	}

	if err := tx.SaveDonor(ctx, u); err != nil {
		return donation.Donation{}, err
	}

	if err := tx.SaveProject(ctx, p); err != nil {
		return donation.Donation{}, err
	}

	if err := tx.Commit(); err != nil {
		return donation.Donation{}, fmt.Errorf("commit donation: %w", err)
	}

	slog.Info("donation received",
		"donor", u.Nickname,
		"project", p.Name,
		"amount", d.Amount.String(),
		"project_status", p.Status,
		"points", u.Points,
	)

	return d, nil
}
