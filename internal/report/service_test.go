package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

var today = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

// Mock source
type fakeSource struct {
	m   *manager.Manager
	err error
}

func (f *fakeSource) Portfolio(context.Context) (*manager.Manager, error) { return f.m, f.err }
func (f *fakeSource) Today() time.Time                                   { return today }

func portfolio(t *testing.T) *manager.Manager {
	t.Helper()

	ending := project.New(project.Params{
		Name:              "Conectando Santa Rita",
		Factor:            2,
		ClosurePercentage: 100,
		StartDate:         today,
		DurationInDays:    5,
		Location:          location.Location{Name: "Santa Rita", Population: 1000},
	})
	later := project.New(project.Params{
		Name:              "Conectando Cruz Azul",
		Factor:            1,
		ClosurePercentage: 100,
		StartDate:         today,
		DurationInDays:    60,
		Location:          location.Location{Name: "Cruz Azul", Population: 3000},
	})

	juan := &donor.User{Nickname: "juan123", Money: decimal.NewFromInt(5000)}
	maria := &donor.User{Nickname: "maria456", Money: decimal.NewFromInt(5000)}

	for _, d := range []struct {
		u      *donor.User
		p      *project.Project
		amount int64
	}{
		{juan, ending, 500},
		{maria, ending, 300},
		{maria, later, 1200},
	} {
		if _, err := d.u.Donate(decimal.NewFromInt(d.amount), "gracias", d.p, today); err != nil {
			t.Fatalf("donate: %v", err)
		}
	}

	return manager.New([]*project.Project{ending, later}, nil, []*donor.User{juan, maria}, nil)
}

func TestFromPortfolio(t *testing.T) {
	r := FromPortfolio(portfolio(t), today)

	if !r.Month.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected month %s", r.Month)
	}

	if len(r.Ending) != 1 {
		t.Fatalf("expected 1 project ending this month, got %d", len(r.Ending))
	}

	line := r.Ending[0]
	if line.Name != "Conectando Santa Rita" || line.Required != 2000 || line.Donors != 2 {
		t.Errorf("unexpected line %+v", line)
	}

	if line.Percentage != 40 {
		t.Errorf("expected 40%%, got %.2f", line.Percentage)
	}

	if line.Collected != "800.00" {
		t.Errorf("expected 800.00 collected, got %s", line.Collected)
	}

	if len(r.Top) != 3 || !r.Top[0].Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("unexpected top donations %+v", r.Top)
	}
}

func TestText(t *testing.T) {
	body := Text(FromPortfolio(portfolio(t), today))

	expected := []string{
		"Conectando digest for October 2026",
		"* 2026-10-24 | Conectando Santa Rita | Santa Rita | 40.00% | 800.00 of 2000 | 2 donors",
		" 1. 1200.00 | maria456 -> Conectando Cruz Azul | 2026-10-19",
		" 3. 300.00 | maria456 -> Conectando Santa Rita | 2026-10-19",
	}

	for _, e := range expected {
		if !strings.Contains(body, e) {
			t.Errorf("expected digest to contain %q, got:\n%s", e, body)
		}
	}
}

func TestText_Empty(t *testing.T) {
	body := Text(Report{Month: today})

	if strings.Count(body, "  none") != 2 {
		t.Errorf("expected both sections to be empty, got:\n%s", body)
	}
}

func TestWriteCSV(t *testing.T) {
	r := FromPortfolio(portfolio(t), today)

	var ending bytes.Buffer
	if err := WriteEndingCSV(&ending, r); err != nil {
		t.Fatalf("WriteEndingCSV: %v", err)
	}

	wantEnding := "project,location,finish_date,percentage,collected,required,donors\n" +
		"Conectando Santa Rita,Santa Rita,2026-10-24,40.00,800.00,2000,2\n"
	if ending.String() != wantEnding {
		t.Errorf("unexpected ending csv:\n%s", ending.String())
	}

	var top bytes.Buffer
	if err := WriteTopCSV(&top, r); err != nil {
		t.Fatalf("WriteTopCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(top.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(lines))
	}

	if lines[1] != "1,1200.00,maria456,Conectando Cruz Azul,2026-10-19,gracias" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestService_Export(t *testing.T) {
	tmpDir := t.TempDir()

	svc := NewService(&fakeSource{m: portfolio(t)})

	paths, err := svc.Export(context.Background(), filepath.Join(tmpDir, "out"))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if len(paths) != 3 {
		t.Fatalf("expected 3 files, got %d", len(paths))
	}

	if filepath.Base(paths[0]) != "202610_digest.txt" {
		t.Errorf("unexpected digest file name %s", paths[0])
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
			continue
		}

		if info.Size() == 0 {
			t.Errorf("expected %s to be non-empty", p)
		}
	}
}

func TestService_Build_SourceError(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewService(&fakeSource{err: boom}).Build(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}
