package project

import (
	"time"

	"github.com/MrJamesThe3rd/conectando/internal/project"
)

type projectResponse struct {
	Name               string         `json:"name"`
	Location           string         `json:"location"`
	Population         int            `json:"population"`
	Factor             int            `json:"factor"`
	ClosurePercentage  int            `json:"closure_percentage"`
	StartDate          string         `json:"start_date"`
	FinishDate         string         `json:"finish_date"`
	Status             project.Status `json:"status"`
	Closed             bool           `json:"closed"`
	MoneyRequired      int            `json:"money_required"`
	TotalDonated       string         `json:"total_donated"`
	PercentageAchieved float64        `json:"percentage_achieved"`
	NumberOfDonors     int            `json:"number_of_donors"`
	Donors             []string       `json:"donors"`
	LastDonation       *string        `json:"last_donation,omitempty"`
}

func toResponse(p *project.Project) projectResponse {
	resp := projectResponse{
		Name:               p.Name,
		Location:           p.Location.Name,
		Population:         p.LocationPopulation(),
		Factor:             p.Factor,
		ClosurePercentage:  p.ClosurePercentage,
		StartDate:          p.StartDate.Format(time.DateOnly),
		FinishDate:         p.FinishDate.Format(time.DateOnly),
		Status:             p.Status,
		Closed:             p.Closed,
		MoneyRequired:      p.MoneyRequired(),
		TotalDonated:       p.TotalAmountDonations().StringFixed(2),
		PercentageAchieved: p.PercentageAchieved(),
		NumberOfDonors:     p.NumberOfDonors(),
		Donors:             p.Donors(),
	}

	if resp.Donors == nil {
		resp.Donors = []string{}
	}

	if d, ok := p.LastDonation(); ok {
		resp.LastDonation = new(d.Date.Format(time.DateOnly))
	}

	return resp
}

func toResponseList(ps []*project.Project) []projectResponse {
	resp := make([]projectResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}
