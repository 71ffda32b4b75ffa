// Package seed loads the demo portfolio into an empty installation.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/admin"
	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/funding"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

type Locations interface {
	Create(ctx context.Context, params location.CreateParams) (*location.Location, error)
}

type Donors interface {
	Create(ctx context.Context, params donor.CreateParams) (*donor.User, error)
}

type Projects interface {
	CreateProject(ctx context.Context, params admin.CreateParams) (*project.Project, error)
}

type Donations interface {
	Donate(ctx context.Context, params funding.DonateParams) (donation.Donation, error)
}

type Seeder struct {
	locations Locations
	donors    Donors
	projects  Projects
	donations Donations
}

func New(locations Locations, donors Donors, projects Projects, donations Donations) *Seeder {
	return &Seeder{locations: locations, donors: donors, projects: projects, donations: donations}
}

var locations = []location.CreateParams{
	{Name: "Santa Rita", Population: 1000},
	{Name: "Rio Tercero", Population: 46800},
	{Name: "Puerto Iguazu", Population: 82227},
	{Name: "Cruz Azul", Population: 900},
}

var donors = []donor.CreateParams{
	{Nickname: "juan123", Money: decimal.NewFromInt(9000)},
	{Nickname: "maria456", Money: decimal.NewFromInt(8000)},
	{Nickname: "nick000", Money: decimal.NewFromInt(7500)},
}

type seedProject struct {
	name     string
	location string
	factor   int
}

var projects = []seedProject{
	{"Conectando Santa Rita", "Santa Rita", 5},
	{"Conectando Rio Tercero", "Rio Tercero", 1},
	{"Conectando Puerto Iguazu", "Puerto Iguazu", 1},
}

var donations = []funding.DonateParams{
	{Nickname: "juan123", ProjectName: "Conectando Santa Rita", Amount: decimal.NewFromInt(1200), Comment: "This is my first donation!"},
	{Nickname: "juan123", ProjectName: "Conectando Santa Rita", Amount: decimal.NewFromInt(123), Comment: "This is my third donation!"},
	{Nickname: "nick000", ProjectName: "Conectando Puerto Iguazu", Amount: decimal.NewFromInt(666), Comment: "Whatever"},
	{Nickname: "juan123", ProjectName: "Conectando Rio Tercero", Amount: decimal.NewFromInt(300), Comment: "This is my fourth donation!"},
	{Nickname: "juan123", ProjectName: "Conectando Rio Tercero", Amount: decimal.NewFromInt(400), Comment: "This is my fifth donation!"},
	{Nickname: "maria456", ProjectName: "Conectando Santa Rita", Amount: decimal.NewFromInt(500), Comment: "Cool!"},
	{Nickname: "maria456", ProjectName: "Conectando Santa Rita", Amount: decimal.NewFromInt(2000), Comment: "Awesome!"},
	{Nickname: "juan123", ProjectName: "Conectando Santa Rita", Amount: decimal.NewFromInt(200), Comment: "This is my second donation!"},
}

// Run creates the demo data. Failures are logged and skipped. Sample donations only go to projects
// created by this run, so running it against a seeded database changes no balances. It returns
// how many items failed.
func (s *Seeder) Run(ctx context.Context, today time.Time) int {
	failed := 0
	created := make(map[string]bool, len(projects))

	for _, l := range locations {
		if _, err := s.locations.Create(ctx, l); err != nil {
			slog.Warn("seed location failed", "location", l.Name, "error", err)
			failed++
		}
	}

	for _, d := range donors {
		if _, err := s.donors.Create(ctx, d); err != nil {
			slog.Warn("seed donor failed", "donor", d.Nickname, "error", err)
			failed++
		}
	}

	for _, p := range projects {
		_, err := s.projects.CreateProject(ctx, admin.CreateParams{
			Name:              p.name,
			Factor:            p.factor,
			ClosurePercentage: 100,
			StartDate:         today,
			DurationInDays:    60,
			LocationName:      p.location,
		})
		if err != nil {
			slog.Warn("seed project failed", "project", p.name, "error", err)
			failed++

			continue
		}

		created[p.name] = true
	}

	for _, d := range donations {
		if !created[d.ProjectName] {
			slog.Debug("seed donation skipped", "donor", d.Nickname, "project", d.ProjectName)
			continue
		}

		if _, err := s.donations.Donate(ctx, d); err != nil {
			slog.Warn("seed donation failed", "donor", d.Nickname, "project", d.ProjectName, "error", err)
			failed++
		}
	}

	slog.Info("seed finished", "failed", failed)

	return failed
}
