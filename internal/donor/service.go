package donor

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=donor
type Repository interface {
	CreateDonor(ctx context.Context, u *User) error
	GetDonor(ctx context.Context, nickname string) (*User, error)
	ListDonors(ctx context.Context) ([]*User, error)
	AddMoney(ctx context.Context, nickname string, amount decimal.Decimal) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Nickname string
	Money    decimal.Decimal
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*User, error) {
	nickname := strings.TrimSpace(params.Nickname)
	if nickname == "" {
		return nil, fmt.Errorf("%w: nickname is required", ErrInvalid)
	}

	if params.Money.IsNegative() {
		return nil, fmt.Errorf("%w: initial money must not be negative", ErrInvalid)
	}

	if !params.Money.Equal(params.Money.Truncate(donation.AmountScale)) {
		return nil, fmt.Errorf("%w: initial money has fractions of a cent", ErrInvalid)
	}

	u := &User{Nickname: nickname, Money: params.Money}
	if err := s.repo.CreateDonor(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, nickname string) (*User, error) {
	return s.repo.GetDonor(ctx, nickname)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.ListDonors(ctx)
}

func (s *Service) Deposit(ctx context.Context, nickname string, amount decimal.Decimal) (*User, error) {
	if err := donation.ValidateAmount(amount); err != nil {
		return nil, fmt.Errorf("%w: deposit: %w", ErrInvalid, err)
	}

	return s.repo.AddMoney(ctx, nickname, amount)
}

func (s *Service) Donations(ctx context.Context, nickname string) ([]donation.Donation, error) {
	u, err := s.repo.GetDonor(ctx, nickname)
	if err != nil {
		return nil, err
	}

	return u.Donations, nil
}
