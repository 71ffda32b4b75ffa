package admin

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/conectando/internal/calendar"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

// User is a platform administrator: the only role allowed to open and cancel projects.
type User struct {
	Name string
	Mail string
}

type ProjectParams struct {
	Name              string
	Factor            int
	ClosurePercentage int
	StartDate         time.Time
	DurationInDays    int
	Location          location.Location
}

// CreateProject opens a new active project. The start date may be today but not earlier.
func (a User) CreateProject(params ProjectParams, today time.Time) (*project.Project, error) {
	start := calendar.Date(params.StartDate)

	switch {
	case params.Name == "":
		return nil, fmt.Errorf("%w: project name is required", project.ErrInvalidOperation)
	case start.Before(calendar.Date(today)):
		return nil, fmt.Errorf("%w: start day of %s for project %s is not valid",
			project.ErrInvalidOperation, start.Format(time.DateOnly), params.Name)
	case params.Factor <= 0:
		return nil, fmt.Errorf("%w: factor of project %s must be positive", project.ErrInvalidOperation, params.Name)
	case params.DurationInDays < 0:
		return nil, fmt.Errorf("%w: duration of project %s must not be negative", project.ErrInvalidOperation, params.Name)
	case params.ClosurePercentage < 1 || params.ClosurePercentage > 100:
		return nil, fmt.Errorf("%w: closure percentage of project %s must be between 1 and 100",
			project.ErrInvalidOperation, params.Name)
	}

	return project.New(project.Params{
		Name:              params.Name,
		Factor:            params.Factor,
		ClosurePercentage: params.ClosurePercentage,
		StartDate:         start,
		DurationInDays:    params.DurationInDays,
		Location:          params.Location,
	}), nil
}

// CancelProject cancels p and returns every donation to its donor. donors must contain the owner
// of each donation on p; otherwise nothing is changed and donor.ErrNotFound is returned.
func (a User) CancelProject(p *project.Project, donors []*donor.User) error {
	if _, err := donor.Refund(p, donors); err != nil {
		return err
	}

	p.Cancel()

	return nil
}
