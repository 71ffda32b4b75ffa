package manager_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

var today = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// projectFinishing builds an active project with a goal of 1000 that finishes on the given day.
func projectFinishing(name string, finish time.Time) *project.Project {
	start := finish.AddDate(0, 0, -3)
	if start.After(today) {
		start = today
	}

	return project.New(project.Params{
		Name:              name,
		Factor:            1,
		ClosurePercentage: 100,
		StartDate:         start,
		DurationInDays:    int(finish.Sub(start).Hours() / 24),
		Location:          location.Location{Name: name, Population: 1000},
	})
}

func TestManager_Accessors(t *testing.T) {
	open := []*project.Project{projectFinishing("a", today), projectFinishing("b", today)}
	closed := []*project.Project{projectFinishing("c", today)}
	users := []*donor.User{{Nickname: "Ana1970"}, {Nickname: "Juan2001"}}
	locations := []*location.Location{{Name: "Santa Rita"}, {Name: "Cruz Azul"}}

	m := manager.New(open, closed, users, locations)

	assert.Equal(t, open, m.OpenProjects())
	assert.Equal(t, closed, m.ClosedProjects())
	assert.Equal(t, users, m.Users())
	assert.Equal(t, locations, m.Locations())
}

func TestManager_OpenProjectsEndingThisMonth(t *testing.T) {
	thisMonth := projectFinishing("this month", today)
	earlier := projectFinishing("three months ago", today.AddDate(0, -3, 0))
	later := projectFinishing("in five months", today.AddDate(0, 5, 0))

	m := manager.New([]*project.Project{thisMonth, earlier, later}, nil, nil, nil)

	got := m.OpenProjectsEndingThisMonth(today)

	assert.Equal(t, []*project.Project{thisMonth}, got)
}

func TestManager_CloseFinishedProjects_MovesOnlyFinished(t *testing.T) {
	p1 := projectFinishing("p1", today)
	p2 := projectFinishing("p2", today)
	p3 := projectFinishing("p3", today.AddDate(0, 0, 5))

	m := manager.New([]*project.Project{p1, p2, p3}, nil, nil, nil)

	res, err := m.CloseFinishedProjects(today)
	require.NoError(t, err)

	assert.Equal(t, []*project.Project{p3}, m.OpenProjects())
	assert.Equal(t, []*project.Project{p1, p2}, m.ClosedProjects())
	assert.Equal(t, []*project.Project{p1, p2}, res.Closed)
	assert.True(t, p1.Closed)
	assert.False(t, p3.Closed)
}

func TestManager_CloseFinishedProjects_RefundsIncomplete(t *testing.T) {
	ana := &donor.User{Nickname: "Ana1970", Money: dec(1500)}
	juan := &donor.User{Nickname: "Juan2001", Money: dec(1500)}
	complete := projectFinishing("complete", today)
	incomplete := projectFinishing("incomplete", today)

	m := manager.New([]*project.Project{complete, incomplete}, nil, []*donor.User{ana, juan}, nil)

	_, err := ana.Donate(dec(500), "Donation", complete, today)
	require.NoError(t, err)
	_, err = juan.Donate(dec(500), "Donation", complete, today)
	require.NoError(t, err)
	refunded, err := juan.Donate(dec(500), "Donation", incomplete, today)
	require.NoError(t, err)

	require.True(t, complete.HasReachedGoal())
	require.False(t, incomplete.HasReachedGoal())
	assert.True(t, dec(1000).Equal(ana.Money))
	assert.True(t, dec(500).Equal(juan.Money))
	assert.Len(t, juan.Donations, 2)

	res, err := m.CloseFinishedProjects(today)
	require.NoError(t, err)

	assert.Empty(t, m.OpenProjects())
	assert.Len(t, m.ClosedProjects(), 2)

	assert.True(t, dec(1000).Equal(ana.Money))
	assert.Len(t, ana.Donations, 1)
	assert.True(t, dec(1000).Equal(juan.Money))
	assert.Len(t, juan.Donations, 1)

	assert.Len(t, complete.Donations, 2, "completed projects keep their donations")
	assert.Empty(t, incomplete.Donations)

	assert.Equal(t, []*project.Project{incomplete}, res.Refunded)
	assert.Equal(t, []donation.Donation{refunded}, res.RefundedDonations)
	assert.Equal(t, []*donor.User{juan}, res.Donors)
}

func TestManager_CloseFinishedProjects_MissingDonor(t *testing.T) {
	ana := &donor.User{Nickname: "Ana1970", Money: dec(1500)}
	first := projectFinishing("first", today)
	broken := projectFinishing("broken", today)

	_, err := ana.Donate(dec(100), "", broken, today)
	require.NoError(t, err)

	m := manager.New([]*project.Project{first, broken}, nil, nil, nil)

	_, err = m.CloseFinishedProjects(today)

	require.Error(t, err)
	assert.True(t, errors.Is(err, donor.ErrNotFound))
	assert.Equal(t, []*project.Project{first}, m.ClosedProjects())
	assert.Equal(t, []*project.Project{broken}, m.OpenProjects())
	assert.Len(t, broken.Donations, 1)
}

func TestManager_TopTenBiggestDonations(t *testing.T) {
	user := func(name string, amounts ...int64) *donor.User {
		u := &donor.User{Nickname: name}
		for _, a := range amounts {
			u.Donations = append(u.Donations, donation.Donation{DonorNickname: name, Amount: dec(a)})
		}

		return u
	}

	m := manager.New(nil, nil, []*donor.User{
		user("u1", 1200, 700, 870, 3000),
		user("u2", 450, 2100, 4200, 120),
		user("u3", 1750, 1000, 200, 3290),
	}, nil)

	top := m.TopTenBiggestDonations()

	require.Len(t, top, 10)

	want := []int64{4200, 3290, 3000, 2100, 1750, 1200, 1000, 870, 700, 450}
	for i, w := range want {
		assert.True(t, dec(w).Equal(top[i].Amount), "position %d: got %s", i, top[i].Amount)
	}
}

func TestManager_TopTenBiggestDonations_FewerThanTen(t *testing.T) {
	m := manager.New(nil, nil, []*donor.User{
		{Nickname: "u1", Donations: []donation.Donation{{Amount: dec(5)}, {Amount: dec(50)}}},
	}, nil)

	top := m.TopTenBiggestDonations()

	require.Len(t, top, 2)
	assert.True(t, dec(50).Equal(top[0].Amount))
}
