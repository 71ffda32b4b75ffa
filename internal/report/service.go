// Package report builds the monthly digest: open projects closing this month with their progress
// and the ten biggest donations on record.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
)

// Source is satisfied by *manager.Service.
type Source interface {
	Portfolio(ctx context.Context) (*manager.Manager, error)
	Today() time.Time
}

// ProjectLine is one project in the digest.
type ProjectLine struct {
	Name       string
	Location   string
	FinishDate time.Time
	Percentage float64
	Collected  string
	Required   int
	Donors     int
}

type Report struct {
	Month  time.Time
	Ending []ProjectLine
	Top    []donation.Donation
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Build assembles the report for the current month.
func (s *Service) Build(ctx context.Context) (Report, error) {
	m, err := s.source.Portfolio(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("loading portfolio: %w", err)
	}

	return FromPortfolio(m, s.source.Today()), nil
}

// FromPortfolio computes the report over m as of today.
func FromPortfolio(m *manager.Manager, today time.Time) Report {
	r := Report{
		Month: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		Top:   m.TopTenBiggestDonations(),
	}

	for _, p := range m.OpenProjectsEndingThisMonth(today) {
		r.Ending = append(r.Ending, ProjectLine{
			Name:       p.Name,
			Location:   p.Location.Name,
			FinishDate: p.FinishDate,
			Percentage: p.PercentageAchieved(),
			Collected:  p.TotalAmountDonations().StringFixed(2),
			Required:   p.MoneyRequired(),
			Donors:     p.NumberOfDonors(),
		})
	}

	return r
}

// Export writes the report as digest.txt, ending.csv and top.csv under outputDir and returns the
// written paths.
func (s *Service) Export(ctx context.Context, outputDir string) ([]string, error) {
	r, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	prefix := r.Month.Format("200601")

	files := []struct {
		name  string
		write func(io.Writer, Report) error
	}{
		{prefix + "_digest.txt", func(w io.Writer, r Report) error {
			_, err := io.WriteString(w, Text(r))
			return err
		}},
		{prefix + "_ending.csv", WriteEndingCSV},
		{prefix + "_top.csv", WriteTopCSV},
	}

	paths := make([]string, 0, len(files))

	for _, f := range files {
		path := filepath.Join(outputDir, f.name)
		if err := writeFile(path, r, f.write); err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func writeFile(path string, r Report, write func(io.Writer, Report) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := write(f, r); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Text renders the plain-text digest.
func Text(r Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Conectando digest for %s\n\n", r.Month.Format("January 2006"))

	sb.WriteString("Projects closing this month:\n")

	if len(r.Ending) == 0 {
		sb.WriteString("  none\n")
	}

	for _, p := range r.Ending {
		fmt.Fprintf(&sb, "* %s | %s | %s | %.2f%% | %s of %d | %d donors\n",
			p.FinishDate.Format(time.DateOnly), p.Name, p.Location, p.Percentage, p.Collected, p.Required, p.Donors)
	}

	sb.WriteString("\nTop donations:\n")

	if len(r.Top) == 0 {
		sb.WriteString("  none\n")
	}

	for i, d := range r.Top {
		fmt.Fprintf(&sb, "%2d. %s | %s -> %s | %s\n",
			i+1, d.Amount.StringFixed(2), d.DonorNickname, d.ProjectName, d.Date.Format(time.DateOnly))
	}

	return sb.String()
}

func WriteEndingCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"project", "location", "finish_date", "percentage", "collected", "required", "donors"}); err != nil {
		return err
	}

	for _, p := range r.Ending {
		record := []string{
			p.Name,
			p.Location,
			p.FinishDate.Format(time.DateOnly),
			strconv.FormatFloat(p.Percentage, 'f', 2, 64),
			p.Collected,
			strconv.Itoa(p.Required),
			strconv.Itoa(p.Donors),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func WriteTopCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"rank", "amount", "donor", "project", "date", "comment"}); err != nil {
		return err
	}

	for i, d := range r.Top {
		record := []string{
			strconv.Itoa(i + 1),
			d.Amount.StringFixed(2),
			d.DonorNickname,
			d.ProjectName,
			d.Date.Format(time.DateOnly),
			d.Comment,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
