// Package donation holds the immutable record of a single contribution and the loyalty points it earns.
package donation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/calendar"
)

var (
	// ErrInvalidDonation is returned when a project is not accepting donations.
	ErrInvalidDonation = errors.New("invalid donation")
	// ErrInvalidAmount is returned for zero or negative amounts and for fractions of a cent.
	ErrInvalidAmount = errors.New("invalid donation amount")
)

// AmountScale is the number of decimal places money is stored with.
const AmountScale = 2

// ValidateAmount accepts positive amounts expressed in whole cents.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: must be positive, got %s", ErrInvalidAmount, amount)
	}

	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: at most %d decimal places, got %s", ErrInvalidAmount, AmountScale, amount)
	}

	return nil
}

const (
	// underservedPopulation is the population below which a location doubles the points earned.
	underservedPopulation = 2000
	// bigDonationThreshold is the amount a donation must exceed to earn points on its own.
	bigDonationThreshold = 1000
	sameMonthBonus       = 500
)

// Donation is one contribution from a donor to a project. It is never mutated after creation;
// donors and projects each keep their own copy, joined by ID.
type Donation struct {
	ID            uuid.UUID
	DonorNickname string
	ProjectName   string
	Amount        decimal.Decimal
	Comment       string
	Date          time.Time
}

func New(donorNickname, projectName string, amount decimal.Decimal, comment string, date time.Time) Donation {
	return Donation{
		ID:            uuid.New(),
		DonorNickname: donorNickname,
		ProjectName:   projectName,
		Amount:        amount,
		Comment:       comment,
		Date:          calendar.Date(date),
	}
}

// History is the donor side of a points calculation.
type History interface {
	LastDonation() (Donation, bool)
}

// Destination is the project side of a points calculation.
type Destination interface {
	LocationPopulation() int
}

// CalculatePoints returns the loyalty points this donation earns. Donations to underserved
// locations earn twice the amount, otherwise only donations above bigDonationThreshold earn their
// amount. A donor whose previous donation fell in the same month gets a flat bonus on top.
func (d Donation) CalculatePoints(history History, dest Destination) int {
	amount := int(d.Amount.IntPart())

	var points int

	switch {
	case dest.LocationPopulation() < underservedPopulation:
		points = amount * 2
	case amount > bigDonationThreshold:
		points = amount
	}

	if last, ok := history.LastDonation(); ok && calendar.SameMonth(last.Date, d.Date) {
		points += d.PointsFromLastDonationOnSameMonth()
	}

	return points
}

// PointsFromLastDonationOnSameMonth is the bonus for giving twice within a calendar month.
func (d Donation) PointsFromLastDonationOnSameMonth() int {
	return sameMonthBonus
}

// Latest returns the donation with the latest date. Ties keep the earliest element in order.
func Latest(donations []Donation) (Donation, bool) {
	if len(donations) == 0 {
		return Donation{}, false
	}

	latest := donations[0]

	for _, d := range donations[1:] {
		if d.Date.After(latest.Date) {
			latest = d
		}
	}

	return latest, true
}
