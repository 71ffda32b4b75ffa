// Package manager reconciles the project portfolio: it closes projects whose donation window is
// over, refunds the ones that missed their goal and answers cross-user rankings.
package manager

import (
	"cmp"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

const topDonations = 10

// Manager is a transient view over the portfolio. It is built per request or per sweep and never
// persisted itself.
type Manager struct {
	openProjects   []*project.Project
	closedProjects []*project.Project
	users          []*donor.User
	locations      []*location.Location
}

func New(open, closed []*project.Project, users []*donor.User, locations []*location.Location) *Manager {
	return &Manager{
		openProjects:   open,
		closedProjects: closed,
		users:          users,
		locations:      locations,
	}
}

func (m *Manager) OpenProjects() []*project.Project   { return m.openProjects }
func (m *Manager) ClosedProjects() []*project.Project { return m.closedProjects }
func (m *Manager) Users() []*donor.User               { return m.users }
func (m *Manager) Locations() []*location.Location    { return m.locations }

// CloseResult describes what a sweep changed, so callers can persist exactly that.
type CloseResult struct {
	Closed            []*project.Project
	Refunded          []*project.Project
	RefundedDonations []donation.Donation
	Donors            []*donor.User
}

// CloseFinishedProjects moves every open project whose finish date is on or before today to the
// closed set. Projects that did not complete are refunded to their donors. A project whose donors
// cannot all be found stops the sweep with donor.ErrNotFound; projects handled before it stay closed.
func (m *Manager) CloseFinishedProjects(today time.Time) (CloseResult, error) {
	var res CloseResult

	var stillOn []*project.Project

	touched := make(map[string]*donor.User)

	for i, p := range m.openProjects {
		if !p.HasFinished(today) {
			stillOn = append(stillOn, p)
			continue
		}

		if p.Status != project.StatusComplete {
			donations := p.Donations

			refunded, err := donor.Refund(p, m.users)
			if err != nil {
				m.openProjects = append(stillOn, m.openProjects[i:]...)
				return res, err
			}

			for _, u := range refunded {
				touched[u.Nickname] = u
			}

			res.Refunded = append(res.Refunded, p)
			res.RefundedDonations = append(res.RefundedDonations, donations...)
		}

		p.Closed = true
		m.closedProjects = append(m.closedProjects, p)
		res.Closed = append(res.Closed, p)
	}

	m.openProjects = stillOn

	for _, u := range m.users {
		if _, ok := touched[u.Nickname]; ok {
			res.Donors = append(res.Donors, u)
		}
	}

	return res, nil
}

// OpenProjectsEndingThisMonth returns the open projects finishing in today's calendar month.
func (m *Manager) OpenProjectsEndingThisMonth(today time.Time) []*project.Project {
	var out []*project.Project

	for _, p := range m.openProjects {
		if p.EndsInMonthOf(today) {
			out = append(out, p)
		}
	}

	return out
}

// TopTenBiggestDonations ranks every donation made by the managed users by amount, largest first.
func (m *Manager) TopTenBiggestDonations() []donation.Donation {
	var all []donation.Donation
	for _, u := range m.users {
		all = append(all, u.Donations...)
	}

	slices.SortStableFunc(all, func(a, b donation.Donation) int {
		return cmp.Compare(0, a.Amount.Cmp(b.Amount))
	})

	if len(all) > topDonations {
		all = all[:topDonations]
	}

	return all
}
