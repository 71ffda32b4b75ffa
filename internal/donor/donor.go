package donor

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

var (
	ErrNotFound          = errors.New("donor not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalid           = errors.New("invalid donor")
	ErrExists            = errors.New("donor already exists")
	// ErrDonationNotFound is returned when undoing a donation that is not in the donor's history.
	ErrDonationNotFound = errors.New("donation not in donor history")
)

// User is a donor: a money balance, loyalty points and the history of donations made.
type User struct {
	Nickname  string
	Money     decimal.Decimal
	Points    int
	Donations []donation.Donation
}

// Donate moves amount from the donor's balance to p. Points are scored against the history as it
// was before this donation.
func (u *User) Donate(amount decimal.Decimal, comment string, p *project.Project, today time.Time) (donation.Donation, error) {
	if err := donation.ValidateAmount(amount); err != nil {
		return donation.Donation{}, err
	}

	if amount.GreaterThan(u.Money) {
		return donation.Donation{}, fmt.Errorf("%w: %s has %s, tried to donate %s", ErrInsufficientFunds, u.Nickname, u.Money, amount)
	}

	if err := p.ValidateDonation(today); err != nil {
		return donation.Donation{}, err
	}

	d := donation.New(u.Nickname, p.Name, amount, comment, today)

	u.Points += d.CalculatePoints(u, p)
	u.Money = u.Money.Sub(amount)
	u.Donations = append(u.Donations, d)
	p.ReceiveDonation(d)

	return d, nil
}

// UndoDonation refunds d and removes it from the history.
func (u *User) UndoDonation(d donation.Donation) error {
	idx := slices.IndexFunc(u.Donations, func(h donation.Donation) bool { return h.ID == d.ID })
	if idx < 0 {
		return fmt.Errorf("%w: %s does not own donation %s", ErrDonationNotFound, u.Nickname, d.ID)
	}

	u.Money = u.Money.Add(d.Amount)
	u.Donations = slices.Delete(u.Donations, idx, idx+1)

	return nil
}

func (u *User) LastDonation() (donation.Donation, bool) {
	return donation.Latest(u.Donations)
}

// Deposit adds funds to the donor's balance.
func (u *User) Deposit(amount decimal.Decimal) error {
	if err := donation.ValidateAmount(amount); err != nil {
		return fmt.Errorf("%w: deposit: %w", ErrInvalid, err)
	}

	u.Money = u.Money.Add(amount)

	return nil
}

// Find returns the donor with the given nickname.
func Find(users []*User, nickname string) (*User, error) {
	for _, u := range users {
		if u.Nickname == nickname {
			return u, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, nickname)
}

// Refund returns every donation on p to its owner and clears p's ledger. All owners are resolved
// before any balance changes, so a missing donor leaves everything untouched. The refunded donors
// are returned once each, in the order their first donation appears on p.
func Refund(p *project.Project, users []*User) ([]*User, error) {
	owners := make([]*User, len(p.Donations))

	for i, d := range p.Donations {
		u, err := Find(users, d.DonorNickname)
		if err != nil {
			return nil, fmt.Errorf("refunding %s: %w", p.Name, err)
		}

		if !slices.ContainsFunc(u.Donations, func(h donation.Donation) bool { return h.ID == d.ID }) {
			return nil, fmt.Errorf("refunding %s: %w: %s does not own donation %s", p.Name, ErrDonationNotFound, u.Nickname, d.ID)
		}

		owners[i] = u
	}

	var refunded []*User

	for i, d := range p.Donations {
		if err := owners[i].UndoDonation(d); err != nil {
			return nil, err
		}

		if !slices.Contains(refunded, owners[i]) {
			refunded = append(refunded, owners[i])
		}
	}

	p.UndoDonations()

	return refunded, nil
}
