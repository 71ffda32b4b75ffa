package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/conectando/internal/manager"
)

const sweepTimeout = time.Minute

type sweepState int

const (
	sweepStateConfirm sweepState = iota
	sweepStateRunning
	sweepStateResult
)

// SweepModel closes finished projects on demand, the same run the scheduler performs nightly.
type SweepModel struct {
	CommonModel
	managerService *manager.Service

	state   sweepState
	form    *huh.Form
	confirm *bool
	spinner spinner.Model
	result  manager.SweepResult
	err     error
}

func NewSweepModel(svc *manager.Service) SweepModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := SweepModel{
		managerService: svc,
		confirm:        new(bool),
		spinner:        s,
	}
	m.form = m.buildConfirmForm()

	return m
}

func (m SweepModel) Title() string { return "Close Finished Projects" }

func (m SweepModel) ShortHelp() string {
	if m.state == sweepStateRunning {
		return "Sweeping..."
	}

	return "Esc: back"
}

func (m SweepModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SweepModel) buildConfirmForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Close projects finished by %s?", FormatDate(m.managerService.Today()))).
				Description("Incomplete projects refund every donation.").
				Value(m.confirm),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m SweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.state != sweepStateRunning {
		return m, Back
	}

	switch m.state {
	case sweepStateConfirm:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		if !*m.confirm {
			return m, Back
		}

		m.state = sweepStateRunning

		return m, tea.Batch(m.spinner.Tick, m.sweepCmd())

	case sweepStateRunning:
		if res, ok := msg.(sweepResultMsg); ok {
			m.state = sweepStateResult
			m.result = res.result
			m.err = res.err

			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m SweepModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case sweepStateConfirm:
		return style.Render(m.form.View())
	case sweepStateRunning:
		return style.Render(fmt.Sprintf("%s Closing finished projects...", m.spinner.View()))
	}

	if m.err != nil {
		return style.Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(successStyle("Sweep complete")),
		"",
		fmt.Sprintf("Closed:   %s", listOrNone(m.result.Closed)),
		fmt.Sprintf("Refunded: %s", listOrNone(m.result.Refunded)),
		fmt.Sprintf("Donations returned: %d", m.result.RefundedDonations),
	))
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ", ")
}

type sweepResultMsg struct {
	result manager.SweepResult
	err    error
}

func (m SweepModel) sweepCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		res, err := m.managerService.Sweep(ctx)
		return sweepResultMsg{result: res, err: err}
	}
}
