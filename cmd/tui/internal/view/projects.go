package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/admin"
	"github.com/MrJamesThe3rd/conectando/internal/calendar"
	"github.com/MrJamesThe3rd/conectando/internal/funding"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

type projectsState int

const (
	projectsStateBrowse projectsState = iota
	projectsStateDonate
	projectsStateCancel
)

type ProjectsModel struct {
	CommonModel
	projectService *project.Service
	fundingService *funding.Service
	adminService   *admin.Service

	state    projectsState
	table    table.Model
	projects []*project.Project
	form     *huh.Form

	statusFilterIdx int
	closedFilterIdx int
	endingThisMonth bool

	filter  project.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings live behind a pointer so they survive model copies.
	input *projectInput
}

type projectInput struct {
	Nickname string
	Amount   string
	Comment  string
	Confirm  bool
}

func NewProjectsModel(projectSvc *project.Service, fundingSvc *funding.Service, adminSvc *admin.Service) ProjectsModel {
	columns := []table.Column{
		{Title: "Name", Width: 26},
		{Title: "Location", Width: 16},
		{Title: "Status", Width: 10},
		{Title: "Progress", Width: 9},
		{Title: "Collected", Width: 12},
		{Title: "Goal", Width: 10},
		{Title: "Donors", Width: 6},
		{Title: "Finish", Width: 11},
	}

	return ProjectsModel{
		projectService: projectSvc,
		fundingService: fundingSvc,
		adminService:   adminSvc,
		table:          newTable(columns, 15),
		loading:        true,
		input:          &projectInput{},
	}
}

func (m ProjectsModel) Title() string { return "Projects" }

func (m ProjectsModel) ShortHelp() string {
	if m.state != projectsStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | Enter: donate | x: cancel project | s: status | o: open/closed | m: this month | r: refresh"
}

func (m ProjectsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProjectsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.projects = msg.projects
		m.refreshTable()

		return m, nil

	case projectActionMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
		}

		m.state = projectsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case projectsStateBrowse:
		return m.updateBrowse(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m ProjectsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "enter":
			return m.enterDonateMode()
		case "x":
			return m.enterCancelMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()

			return m, m.loadCmd()
		case "o":
			m.closedFilterIdx = (m.closedFilterIdx + 1) % 3
			m.applyFilter()

			return m, m.loadCmd()
		case "m":
			m.endingThisMonth = !m.endingThisMonth
			m.applyFilter()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ProjectsModel) selected() *project.Project {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.projects) {
		return nil
	}

	return m.projects[idx]
}

func (m ProjectsModel) enterDonateMode() (tea.Model, tea.Cmd) {
	if m.selected() == nil {
		return m, nil
	}

	*m.input = projectInput{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("nickname").
				Title("Donor").
				Value(&m.input.Nickname).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("nickname cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("1500").
				Value(&m.input.Amount).
				Validate(func(s string) error {
					_, err := parseAmount(s)
					return err
				}),

			huh.NewInput().
				Key("comment").
				Title("Comment").
				Value(&m.input.Comment),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = projectsStateDonate
	m.table.Blur()

	return m, m.form.Init()
}

func (m ProjectsModel) enterCancelMode() (tea.Model, tea.Cmd) {
	p := m.selected()
	if p == nil {
		return m, nil
	}

	*m.input = projectInput{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Cancel %s?", p.Name)).
				Description(fmt.Sprintf("%d donations will be refunded.", len(p.Donations))).
				Affirmative("Cancel project").
				Negative("Keep").
				Value(&m.input.Confirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = projectsStateCancel
	m.table.Blur()

	return m, m.form.Init()
}

func (m ProjectsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = projectsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == projectsStateCancel {
		if !m.input.Confirm {
			m.state = projectsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}

		return m, m.cancelCmd()
	}

	return m, m.donateCmd()
}

func (m ProjectsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading projects...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	statusLabels := []string{"All", "Active", "Complete", "Cancelled"}
	closedLabels := []string{"All", "Open", "Closed"}
	monthLabel := "Any"
	if m.endingThisMonth {
		monthLabel = "This Month"
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [o] Portfolio: %s | [m] Ending: %s",
		activeStyle(statusLabels[m.statusFilterIdx]),
		activeStyle(closedLabels[m.closedFilterIdx]),
		activeStyle(monthLabel),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if m.state != projectsStateBrowse && m.form != nil {
		title := "Donate"
		if m.state == projectsStateCancel {
			title = "Cancel Project"
		}

		name := ""
		if p := m.selected(); p != nil {
			name = p.Name
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\nProject: %s\n\n%s", title, name, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ProjectsModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.Status = new(project.StatusActive)
	case 2:
		m.filter.Status = new(project.StatusComplete)
	case 3:
		m.filter.Status = new(project.StatusCancelled)
	default:
		m.filter.Status = nil
	}

	switch m.closedFilterIdx {
	case 1:
		m.filter.Closed = new(false)
	case 2:
		m.filter.Closed = new(true)
	default:
		m.filter.Closed = nil
	}

	if m.endingThisMonth {
		start, end := calendar.MonthRange(calendar.Today())
		m.filter.FinishFrom = &start
		m.filter.FinishTo = &end
	} else {
		m.filter.FinishFrom = nil
		m.filter.FinishTo = nil
	}
}

func (m *ProjectsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.projects))
	for _, p := range m.projects {
		rows = append(rows, table.Row{
			p.Name,
			p.Location.Name,
			string(p.Status),
			FormatPercent(p.PercentageAchieved()),
			FormatAmount(p.TotalAmountDonations()),
			strconv.Itoa(p.MoneyRequired()),
			strconv.Itoa(p.NumberOfDonors()),
			FormatDate(p.FinishDate),
		})
	}

	m.table.SetRows(rows)
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount must be a number")
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be positive")
	}

	return amount, nil
}

// Messages

type loadProjectsMsg struct {
	projects []*project.Project
	err      error
}

func (m ProjectsModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		projects, err := m.projectService.List(ctx, filter)
		return loadProjectsMsg{projects: projects, err: err}
	}
}

type projectActionMsg struct {
	status string
	err    error
}

func (m ProjectsModel) donateCmd() tea.Cmd {
	p := m.selected()
	if p == nil {
		return nil
	}

	params := funding.DonateParams{
		Nickname:    strings.TrimSpace(m.input.Nickname),
		ProjectName: p.Name,
		Comment:     m.input.Comment,
	}
	raw := m.input.Amount

	return func() tea.Msg {
		amount, err := parseAmount(raw)
		if err != nil {
			return projectActionMsg{err: err}
		}
		params.Amount = amount

		ctx, cancel := DbCtx()
		defer cancel()

		d, err := m.fundingService.Donate(ctx, params)
		if err != nil {
			return projectActionMsg{err: err}
		}

		return projectActionMsg{
			status: fmt.Sprintf("%s donated %s to %s", d.DonorNickname, FormatAmount(d.Amount), d.ProjectName),
		}
	}
}

func (m ProjectsModel) cancelCmd() tea.Cmd {
	p := m.selected()
	if p == nil {
		return nil
	}

	name := p.Name

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.adminService.CancelProject(ctx, name); err != nil {
			return projectActionMsg{err: err}
		}

		return projectActionMsg{status: fmt.Sprintf("%s cancelled and refunded", name)}
	}
}
