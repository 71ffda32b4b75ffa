package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/conectando/internal/database"
	donationStore "github.com/MrJamesThe3rd/conectando/internal/donation/store"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

type Store struct {
	db        database.Querier
	donations *donationStore.Store
}

func New(db database.Querier) *Store {
	return &Store{db: db, donations: donationStore.New(db)}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: name, factor, closure_percentage, start_date, finish_date, status, closed,
// location name, location population.
func scanProject(s scanner) (*project.Project, error) {
	var p project.Project

	var status string

	if err := s.Scan(
		&p.Name, &p.Factor, &p.ClosurePercentage, &p.StartDate, &p.FinishDate, &status, &p.Closed,
		&p.Location.Name, &p.Location.Population,
	); err != nil {
		return nil, err
	}

	p.Status = project.Status(status)

	return &p, nil
}

const selectProjectColumns = `
	p.name, p.factor, p.closure_percentage, p.start_date, p.finish_date, p.status, p.closed,
	l.name, l.population
`

const fromProjects = `
	FROM projects p
	JOIN locations l ON l.name = p.location_name
`

func (s *Store) GetProject(ctx context.Context, name string) (*project.Project, error) {
	return s.getProject(ctx, name, "")
}

// LockProject loads the project and holds its row lock until the surrounding transaction ends.
func (s *Store) LockProject(ctx context.Context, name string) (*project.Project, error) {
	return s.getProject(ctx, name, " FOR UPDATE OF p")
}

func (s *Store) getProject(ctx context.Context, name, lock string) (*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + fromProjects + `WHERE p.name = $1` + lock

	p, err := scanProject(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", project.ErrNotFound, name)
		}

		return nil, fmt.Errorf("getting project: %w", err)
	}

	if err := s.attachDonations(ctx, []*project.Project{p}); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Store) ListProjects(ctx context.Context, filter project.ListFilter) ([]*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + fromProjects + `WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.Closed != nil {
		query += fmt.Sprintf(" AND p.closed = $%d", argIdx)

		args = append(args, *filter.Closed)
		argIdx++
	}

	if filter.FinishFrom != nil {
		query += fmt.Sprintf(" AND p.finish_date >= $%d", argIdx)

		args = append(args, *filter.FinishFrom)
		argIdx++
	}

	if filter.FinishTo != nil {
		query += fmt.Sprintf(" AND p.finish_date <= $%d", argIdx)

		args = append(args, *filter.FinishTo)
		argIdx++
	}

	query += " ORDER BY p.finish_date ASC, p.name ASC"

	return s.list(ctx, query, args...)
}

// LockOpenProjects loads every project still in the open portfolio, locking their rows.
func (s *Store) LockOpenProjects(ctx context.Context) ([]*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + fromProjects + `
		WHERE NOT p.closed
		ORDER BY p.finish_date ASC, p.name ASC
		FOR UPDATE OF p`

	return s.list(ctx, query)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*project.Project, error) {
	projects, err := s.scanAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if err := s.attachDonations(ctx, projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// scanAll drains the result set before returning so the connection is free for the next query
// when running inside a transaction.
func (s *Store) scanAll(ctx context.Context, query string, args ...any) ([]*project.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}

	return projects, nil
}

func (s *Store) attachDonations(ctx context.Context, projects []*project.Project) error {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}

	byProject, err := s.donations.ByProject(ctx, names)
	if err != nil {
		return err
	}

	for _, p := range projects {
		p.Donations = byProject[p.Name]
	}

	return nil
}

func (s *Store) CreateProject(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (name, factor, closure_percentage, start_date, finish_date, location_name, status, closed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Factor,
		p.ClosurePercentage,
		p.StartDate,
		p.FinishDate,
		p.Location.Name,
		string(p.Status),
		p.Closed,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", project.ErrExists, p.Name)
		}

		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

// SaveProject persists the mutable state of a project: its status and whether it was closed.
func (s *Store) SaveProject(ctx context.Context, p *project.Project) error {
	query := `UPDATE projects SET status = $1, closed = $2 WHERE name = $3`

	res, err := s.db.ExecContext(ctx, query, string(p.Status), p.Closed, p.Name)
	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", project.ErrNotFound, p.Name)
	}

	return nil
}
