package project_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

var today = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newProject() *project.Project {
	return project.New(project.Params{
		Name:              "Conectando Santa Rita",
		Factor:            1,
		ClosurePercentage: 50,
		StartDate:         today.AddDate(0, 0, -3),
		DurationInDays:    10,
		Location:          location.Location{Name: "Santa Rita", Population: 2000},
	})
}

func give(nickname string, amount string) donation.Donation {
	return donation.New(nickname, "Conectando Santa Rita", decimal.RequireFromString(amount), "", today)
}

func TestNew(t *testing.T) {
	p := newProject()

	assert.Equal(t, project.StatusActive, p.Status)
	assert.Equal(t, today.AddDate(0, 0, -3), p.StartDate)
	assert.Equal(t, today.AddDate(0, 0, 7), p.FinishDate)
	assert.Equal(t, 2000, p.MoneyRequired())
	assert.Equal(t, 2000, p.LocationPopulation())
	assert.Empty(t, p.Donations)
}

func TestProject_ValidateDonation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *project.Project)
		day     time.Time
		wantErr bool
	}{
		{name: "Open", day: today},
		{name: "FirstDay", day: today.AddDate(0, 0, -3)},
		{name: "LastDay", day: today.AddDate(0, 0, 7)},
		{name: "NotStarted", day: today.AddDate(0, 0, -4), wantErr: true},
		{name: "Finished", day: today.AddDate(0, 0, 8), wantErr: true},
		{name: "Complete", mutate: func(p *project.Project) { p.Status = project.StatusComplete }, day: today, wantErr: true},
		{name: "Cancelled", mutate: func(p *project.Project) { p.Cancel() }, day: today, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject()
			if tt.mutate != nil {
				tt.mutate(p)
			}

			err := p.ValidateDonation(tt.day)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, donation.ErrInvalidDonation))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestProject_ReceiveDonation_CompletesAtClosurePercentage(t *testing.T) {
	p := newProject()

	p.ReceiveDonation(give("Ana1970", "500"))
	assert.Equal(t, project.StatusActive, p.Status)
	assert.InDelta(t, 25.0, p.PercentageAchieved(), 0.0001)
	assert.False(t, p.HasReachedGoal())

	p.ReceiveDonation(give("Juan2001", "499.99"))
	assert.Equal(t, project.StatusActive, p.Status, "cents are truncated before the percentage")
	assert.InDelta(t, 49.95, p.PercentageAchieved(), 0.0001)

	p.ReceiveDonation(give("Juan2001", "1"))
	assert.Equal(t, project.StatusComplete, p.Status)
	assert.True(t, p.HasReachedGoal())
}

func TestProject_PercentageAchieved_NoPopulation(t *testing.T) {
	p := newProject()
	p.Location.Population = 0

	assert.Zero(t, p.PercentageAchieved())

	p.ReceiveDonation(give("Ana1970", "10"))
	assert.Equal(t, 100.0, p.PercentageAchieved())
	assert.Equal(t, project.StatusComplete, p.Status)
}

func TestProject_Queries(t *testing.T) {
	p := newProject()
	p.ClosurePercentage = 100

	first := give("Ana1970", "100.50")
	second := give("Juan2001", "200")
	second.Date = today.AddDate(0, 0, 1)
	third := give("Ana1970", "300")

	p.ReceiveDonation(first)
	p.ReceiveDonation(second)
	p.ReceiveDonation(third)

	assert.Equal(t, 2, p.NumberOfDonors())
	assert.Equal(t, []string{"Ana1970", "Juan2001"}, p.Donors())
	assert.True(t, decimal.RequireFromString("600.50").Equal(p.TotalAmountDonations()))

	last, ok := p.LastDonation()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)
}

func TestProject_UndoDonations(t *testing.T) {
	p := newProject()
	p.ReceiveDonation(give("Ana1970", "100"))
	p.ReceiveDonation(give("Juan2001", "200"))

	p.UndoDonations()

	assert.Empty(t, p.Donations)
	assert.True(t, p.TotalAmountDonations().IsZero())
	assert.Zero(t, p.NumberOfDonors())

	_, ok := p.LastDonation()
	assert.False(t, ok)
}

func TestProject_Dates(t *testing.T) {
	p := newProject()

	assert.True(t, p.EndsInMonthOf(today))
	assert.False(t, p.EndsInMonthOf(today.AddDate(0, 3, 0)))

	assert.False(t, p.HasFinished(today))
	assert.True(t, p.HasFinished(p.FinishDate))
	assert.True(t, p.HasFinished(p.FinishDate.Add(36*time.Hour)))
}
