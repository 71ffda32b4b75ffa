package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/database"
	donationStore "github.com/MrJamesThe3rd/conectando/internal/donation/store"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
)

type Store struct {
	db        database.Querier
	donations *donationStore.Store
}

func New(db database.Querier) *Store {
	return &Store{db: db, donations: donationStore.New(db)}
}

func (s *Store) CreateDonor(ctx context.Context, u *donor.User) error {
	query := `
		INSERT INTO donors (nickname, money, points, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, u.Nickname, u.Money, u.Points); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", donor.ErrExists, u.Nickname)
		}

		return fmt.Errorf("creating donor: %w", err)
	}

	return nil
}

func (s *Store) GetDonor(ctx context.Context, nickname string) (*donor.User, error) {
	return s.getDonor(ctx, nickname, "")
}

// LockDonor loads the donor and holds its row lock until the surrounding transaction ends.
func (s *Store) LockDonor(ctx context.Context, nickname string) (*donor.User, error) {
	return s.getDonor(ctx, nickname, " FOR UPDATE")
}

func (s *Store) getDonor(ctx context.Context, nickname, lock string) (*donor.User, error) {
	query := `SELECT nickname, money, points FROM donors WHERE nickname = $1` + lock

	var u donor.User
	if err := s.db.QueryRowContext(ctx, query, nickname).Scan(&u.Nickname, &u.Money, &u.Points); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", donor.ErrNotFound, nickname)
		}

		return nil, fmt.Errorf("getting donor: %w", err)
	}

	if err := s.attachDonations(ctx, []*donor.User{&u}); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Store) ListDonors(ctx context.Context) ([]*donor.User, error) {
	return s.list(ctx, `SELECT nickname, money, points FROM donors ORDER BY nickname ASC`)
}

// LockDonors loads and locks the named donors in nickname order. Unknown nicknames are skipped.
func (s *Store) LockDonors(ctx context.Context, nicknames []string) ([]*donor.User, error) {
	if len(nicknames) == 0 {
		return nil, nil
	}

	query := `
		SELECT nickname, money, points FROM donors
		WHERE nickname = ANY($1)
		ORDER BY nickname ASC
		FOR UPDATE`

	return s.list(ctx, query, nicknames)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*donor.User, error) {
	users, err := s.scanAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if err := s.attachDonations(ctx, users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Store) scanAll(ctx context.Context, query string, args ...any) ([]*donor.User, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing donors: %w", err)
	}
	defer rows.Close()

	var users []*donor.User

	for rows.Next() {
		var u donor.User
		if err := rows.Scan(&u.Nickname, &u.Money, &u.Points); err != nil {
			return nil, fmt.Errorf("scanning donor: %w", err)
		}

		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating donor rows: %w", err)
	}

	return users, nil
}

func (s *Store) attachDonations(ctx context.Context, users []*donor.User) error {
	nicknames := make([]string, len(users))
	for i, u := range users {
		nicknames[i] = u.Nickname
	}

	byDonor, err := s.donations.ByDonor(ctx, nicknames)
	if err != nil {
		return err
	}

	for _, u := range users {
		u.Donations = byDonor[u.Nickname]
	}

	return nil
}

func (s *Store) AddMoney(ctx context.Context, nickname string, amount decimal.Decimal) (*donor.User, error) {
	query := `UPDATE donors SET money = money + $1 WHERE nickname = $2`

	res, err := s.db.ExecContext(ctx, query, amount, nickname)
	if err != nil {
		return nil, fmt.Errorf("adding money: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%w: %s", donor.ErrNotFound, nickname)
	}

	return s.GetDonor(ctx, nickname)
}

// SaveDonor persists the balance and points of a donor.
func (s *Store) SaveDonor(ctx context.Context, u *donor.User) error {
	query := `UPDATE donors SET money = $1, points = $2 WHERE nickname = $3`

	res, err := s.db.ExecContext(ctx, query, u.Money, u.Points, u.Nickname)
	if err != nil {
		return fmt.Errorf("saving donor: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", donor.ErrNotFound, u.Nickname)
	}

	return nil
}
