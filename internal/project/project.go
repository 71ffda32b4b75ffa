package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/calendar"
	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/location"
)

var (
	ErrNotFound = errors.New("project not found")
	ErrExists   = errors.New("project already exists")
	// ErrInvalidOperation is returned for project creation parameters that cannot be honoured.
	ErrInvalidOperation = errors.New("invalid project operation")
)

// Status represents the funding state of a project.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusComplete  Status = "COMPLETE"
	StatusCancelled Status = "CANCELLED"
)

// Project is a funding campaign for a location. Its goal is Factor times the location population.
type Project struct {
	Name              string
	Factor            int
	ClosurePercentage int
	StartDate         time.Time
	FinishDate        time.Time
	Donations         []donation.Donation
	Location          location.Location
	Status            Status
	// Closed is set by the manager sweep once the project leaves the open portfolio.
	Closed bool
}

type Params struct {
	Name              string
	Factor            int
	ClosurePercentage int
	StartDate         time.Time
	DurationInDays    int
	Location          location.Location
}

// New builds an active project. FinishDate is derived from the duration and never changes.
func New(p Params) *Project {
	start := calendar.Date(p.StartDate)

	return &Project{
		Name:              p.Name,
		Factor:            p.Factor,
		ClosurePercentage: p.ClosurePercentage,
		StartDate:         start,
		FinishDate:        start.AddDate(0, 0, p.DurationInDays),
		Location:          p.Location,
		Status:            StatusActive,
	}
}

// ValidateDonation checks that the project accepts donations on the given day.
func (p *Project) ValidateDonation(today time.Time) error {
	today = calendar.Date(today)

	if p.Status != StatusActive {
		return fmt.Errorf("%w: project %s is %s", donation.ErrInvalidDonation, p.Name, p.Status)
	}

	if today.Before(p.StartDate) {
		return fmt.Errorf("%w: project %s has not started", donation.ErrInvalidDonation, p.Name)
	}

	if today.After(p.FinishDate) {
		return fmt.Errorf("%w: project %s has finished", donation.ErrInvalidDonation, p.Name)
	}

	return nil
}

// ReceiveDonation records d and completes the project once the closure percentage is reached.
func (p *Project) ReceiveDonation(d donation.Donation) {
	p.Donations = append(p.Donations, d)

	if p.HasReachedGoal() {
		p.Status = StatusComplete
	}
}

func (p *Project) HasReachedGoal() bool {
	return p.PercentageAchieved() >= float64(p.ClosurePercentage)
}

// PercentageAchieved is the share of MoneyRequired collected so far. Each donation's cents are
// dropped before dividing, so 99.99 counts as 99.
func (p *Project) PercentageAchieved() float64 {
	total := p.totalTruncated()
	required := p.MoneyRequired()

	if required <= 0 {
		if total == 0 {
			return 0
		}

		return 100
	}

	return float64(total) / float64(required) * 100
}

func (p *Project) totalTruncated() int64 {
	var total int64
	for _, d := range p.Donations {
		total += d.Amount.IntPart()
	}

	return total
}

func (p *Project) MoneyRequired() int {
	return p.Factor * p.Location.Population
}

func (p *Project) LocationPopulation() int {
	return p.Location.Population
}

// Cancel is terminal.
func (p *Project) Cancel() {
	p.Status = StatusCancelled
}

// UndoDonations drops the funding ledger once every donation has been refunded to its donor.
func (p *Project) UndoDonations() {
	p.Donations = nil
}

// TotalAmountDonations returns the exact sum of all donations.
func (p *Project) TotalAmountDonations() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Donations {
		total = total.Add(d.Amount)
	}

	return total
}

func (p *Project) NumberOfDonors() int {
	return len(p.Donors())
}

// Donors returns the distinct donor nicknames in first-donation order.
func (p *Project) Donors() []string {
	seen := make(map[string]struct{}, len(p.Donations))

	var donors []string

	for _, d := range p.Donations {
		if _, ok := seen[d.DonorNickname]; ok {
			continue
		}

		seen[d.DonorNickname] = struct{}{}
		donors = append(donors, d.DonorNickname)
	}

	return donors
}

func (p *Project) LastDonation() (donation.Donation, bool) {
	return donation.Latest(p.Donations)
}

// EndsInMonthOf reports whether the project finishes in the same calendar month as day.
func (p *Project) EndsInMonthOf(day time.Time) bool {
	return calendar.SameMonth(p.FinishDate, day)
}

// HasFinished reports whether the donation window is over as of today, inclusive.
func (p *Project) HasFinished(today time.Time) bool {
	return !p.FinishDate.After(calendar.Date(today))
}
