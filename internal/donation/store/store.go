package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/conectando/internal/database"
	"github.com/MrJamesThe3rd/conectando/internal/donation"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

const selectDonationColumns = `id, donor_nickname, project_name, amount, comment, date`

func (s *Store) CreateDonation(ctx context.Context, d donation.Donation) error {
	query := `
		INSERT INTO donations (id, donor_nickname, project_name, amount, comment, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, d.ID, d.DonorNickname, d.ProjectName, d.Amount, d.Comment, d.Date)
	if err != nil {
		return fmt.Errorf("creating donation: %w", err)
	}

	return nil
}

func (s *Store) DeleteDonations(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM donations WHERE id::text = ANY($1)`

	if _, err := s.db.ExecContext(ctx, query, uuidStrings(ids)); err != nil {
		return fmt.Errorf("deleting donations: %w", err)
	}

	return nil
}

// ByDonor returns the donations of the given donors keyed by nickname, oldest first.
func (s *Store) ByDonor(ctx context.Context, nicknames []string) (map[string][]donation.Donation, error) {
	query := `SELECT ` + selectDonationColumns + `
		FROM donations
		WHERE donor_nickname = ANY($1)
		ORDER BY date ASC, created_at ASC`

	return s.grouped(ctx, query, nicknames, func(d donation.Donation) string { return d.DonorNickname })
}

// ByProject returns the donations received by the given projects keyed by project name, oldest first.
func (s *Store) ByProject(ctx context.Context, names []string) (map[string][]donation.Donation, error) {
	query := `SELECT ` + selectDonationColumns + `
		FROM donations
		WHERE project_name = ANY($1)
		ORDER BY date ASC, created_at ASC`

	return s.grouped(ctx, query, names, func(d donation.Donation) string { return d.ProjectName })
}

// Biggest returns the largest donations across all donors.
func (s *Store) Biggest(ctx context.Context, limit int) ([]donation.Donation, error) {
	query := `SELECT ` + selectDonationColumns + `
		FROM donations
		ORDER BY amount DESC, date ASC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing biggest donations: %w", err)
	}
	defer rows.Close()

	var out []donation.Donation

	for rows.Next() {
		var d donation.Donation
		if err := rows.Scan(&d.ID, &d.DonorNickname, &d.ProjectName, &d.Amount, &d.Comment, &d.Date); err != nil {
			return nil, fmt.Errorf("scanning donation: %w", err)
		}

		out = append(out, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating donation rows: %w", err)
	}

	return out, nil
}

func (s *Store) grouped(ctx context.Context, query string, keys []string, keyOf func(donation.Donation) string) (map[string][]donation.Donation, error) {
	out := make(map[string][]donation.Donation, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	rows, err := s.db.QueryContext(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("listing donations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d donation.Donation
		if err := rows.Scan(&d.ID, &d.DonorNickname, &d.ProjectName, &d.Amount, &d.Comment, &d.Date); err != nil {
			return nil, fmt.Errorf("scanning donation: %w", err)
		}

		k := keyOf(d)
		out[k] = append(out[k], d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating donation rows: %w", err)
	}

	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}
