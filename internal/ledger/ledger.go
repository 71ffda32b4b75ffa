// Package ledger is the transactional boundary for operations that move money between donors and
// projects. Everything loaded through a Tx stays row-locked until Commit or Rollback, so two
// donations to the same project, or a donation racing a sweep, are applied one after the other.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=ledger
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
}

type Tx interface {
	Location(ctx context.Context, name string) (*location.Location, error)
	Donor(ctx context.Context, nickname string) (*donor.User, error)
	Donors(ctx context.Context, nicknames []string) ([]*donor.User, error)
	Project(ctx context.Context, name string) (*project.Project, error)
	OpenProjects(ctx context.Context) ([]*project.Project, error)

	CreateProject(ctx context.Context, p *project.Project) error
	SaveProject(ctx context.Context, p *project.Project) error
	SaveDonor(ctx context.Context, u *donor.User) error
	AddDonation(ctx context.Context, d donation.Donation) error
	DeleteDonations(ctx context.Context, ids []uuid.UUID) error

	Commit() error
	Rollback() error
}

// DonationIDs collects the IDs of the given donations.
func DonationIDs(donations []donation.Donation) []uuid.UUID {
	ids := make([]uuid.UUID, len(donations))
	for i, d := range donations {
		ids[i] = d.ID
	}

	return ids
}

// Nicknames returns the distinct donor nicknames behind the given donations.
func Nicknames(donations []donation.Donation) []string {
	seen := make(map[string]struct{}, len(donations))

	var out []string

	for _, d := range donations {
		if _, ok := seen[d.DonorNickname]; ok {
			continue
		}

		seen[d.DonorNickname] = struct{}{}
		out = append(out, d.DonorNickname)
	}

	return out
}
