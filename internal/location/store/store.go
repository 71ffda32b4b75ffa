package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/conectando/internal/database"
	"github.com/MrJamesThe3rd/conectando/internal/location"
)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

func (s *Store) CreateLocation(ctx context.Context, loc *location.Location) error {
	query := `INSERT INTO locations (name, population) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, loc.Name, loc.Population); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", location.ErrExists, loc.Name)
		}

		return fmt.Errorf("creating location: %w", err)
	}

	return nil
}

func (s *Store) GetLocation(ctx context.Context, name string) (*location.Location, error) {
	query := `SELECT name, population FROM locations WHERE name = $1`

	var loc location.Location
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&loc.Name, &loc.Population); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", location.ErrNotFound, name)
		}

		return nil, fmt.Errorf("getting location: %w", err)
	}

	return &loc, nil
}

func (s *Store) ListLocations(ctx context.Context) ([]*location.Location, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, population FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var locs []*location.Location

	for rows.Next() {
		var loc location.Location
		if err := rows.Scan(&loc.Name, &loc.Population); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}

		locs = append(locs, &loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating location rows: %w", err)
	}

	return locs, nil
}

// UpsertLocations writes all locations or none. When the store is not already inside a
// transaction it opens one.
func (s *Store) UpsertLocations(ctx context.Context, locs []*location.Location) error {
	if db, ok := s.db.(*sql.DB); ok {
		dbTx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer dbTx.Rollback()

		if err := New(dbTx).UpsertLocations(ctx, locs); err != nil {
			return err
		}

		if err := dbTx.Commit(); err != nil {
			return fmt.Errorf("committing transaction: %w", err)
		}

		return nil
	}

	query := `
		INSERT INTO locations (name, population)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET population = EXCLUDED.population
	`

	for _, loc := range locs {
		if _, err := s.db.ExecContext(ctx, query, loc.Name, loc.Population); err != nil {
			return fmt.Errorf("upserting location %s: %w", loc.Name, err)
		}
	}

	return nil
}
