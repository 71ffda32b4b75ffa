package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	donationStore "github.com/MrJamesThe3rd/conectando/internal/donation/store"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	donorStore "github.com/MrJamesThe3rd/conectando/internal/donor/store"
	"github.com/MrJamesThe3rd/conectando/internal/ledger"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	locationStore "github.com/MrJamesThe3rd/conectando/internal/location/store"
	"github.com/MrJamesThe3rd/conectando/internal/project"
	projectStore "github.com/MrJamesThe3rd/conectando/internal/project/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type tx struct {
	tx        *sql.Tx
	locations *locationStore.Store
	donors    *donorStore.Store
	projects  *projectStore.Store
	donations *donationStore.Store
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &tx{
		tx:        dbTx,
		locations: locationStore.New(dbTx),
		donors:    donorStore.New(dbTx),
		projects:  projectStore.New(dbTx),
		donations: donationStore.New(dbTx),
	}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

func (t *tx) Location(ctx context.Context, name string) (*location.Location, error) {
	return t.locations.GetLocation(ctx, name)
}

func (t *tx) Donor(ctx context.Context, nickname string) (*donor.User, error) {
	return t.donors.LockDonor(ctx, nickname)
}

func (t *tx) Donors(ctx context.Context, nicknames []string) ([]*donor.User, error) {
	return t.donors.LockDonors(ctx, nicknames)
}

func (t *tx) Project(ctx context.Context, name string) (*project.Project, error) {
	return t.projects.LockProject(ctx, name)
}

func (t *tx) OpenProjects(ctx context.Context) ([]*project.Project, error) {
	return t.projects.LockOpenProjects(ctx)
}

func (t *tx) CreateProject(ctx context.Context, p *project.Project) error {
	return t.projects.CreateProject(ctx, p)
}

func (t *tx) SaveProject(ctx context.Context, p *project.Project) error {
	return t.projects.SaveProject(ctx, p)
}

func (t *tx) SaveDonor(ctx context.Context, u *donor.User) error {
	return t.donors.SaveDonor(ctx, u)
}

func (t *tx) AddDonation(ctx context.Context, d donation.Donation) error {
	return t.donations.CreateDonation(ctx, d)
}

func (t *tx) DeleteDonations(ctx context.Context, ids []uuid.UUID) error {
	return t.donations.DeleteDonations(ctx, ids)
}
