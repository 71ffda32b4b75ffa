package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
)

// TopModel shows the ten biggest donations on record.
type TopModel struct {
	CommonModel
	managerService *manager.Service

	table   table.Model
	loading bool
	err     error
}

func NewTopModel(svc *manager.Service) TopModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Donor", Width: 16},
		{Title: "Project", Width: 26},
		{Title: "Amount", Width: 12},
		{Title: "Date", Width: 11},
		{Title: "Comment", Width: 30},
	}

	return TopModel{
		managerService: svc,
		table:          newTable(columns, 11),
		loading:        true,
	}
}

func (m TopModel) Title() string     { return "Top Donations" }
func (m TopModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m TopModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTopMsg:
		m.loading = false
		m.err = msg.err
		m.table.SetRows(topRows(msg.donations))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TopModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading donations...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	return lipgloss.NewStyle().Padding(1).Render(boxed(m.table.View()))
}

func topRows(donations []donation.Donation) []table.Row {
	rows := make([]table.Row, 0, len(donations))
	for i, d := range donations {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			d.DonorNickname,
			d.ProjectName,
			FormatAmount(d.Amount),
			FormatDate(d.Date),
			d.Comment,
		})
	}

	return rows
}

type loadTopMsg struct {
	donations []donation.Donation
	err       error
}

func (m TopModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		donations, err := m.managerService.TopTen(ctx)
		return loadTopMsg{donations: donations, err: err}
	}
}
