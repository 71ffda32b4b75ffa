package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/conectando/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/conectando/internal/admin"
	"github.com/MrJamesThe3rd/conectando/internal/config"
	"github.com/MrJamesThe3rd/conectando/internal/database"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	donorStore "github.com/MrJamesThe3rd/conectando/internal/donor/store"
	"github.com/MrJamesThe3rd/conectando/internal/funding"
	"github.com/MrJamesThe3rd/conectando/internal/importer"
	ledgerStore "github.com/MrJamesThe3rd/conectando/internal/ledger/store"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	locationStore "github.com/MrJamesThe3rd/conectando/internal/location/store"
	"github.com/MrJamesThe3rd/conectando/internal/logging"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
	"github.com/MrJamesThe3rd/conectando/internal/project"
	projectStore "github.com/MrJamesThe3rd/conectando/internal/project/store"
	"github.com/MrJamesThe3rd/conectando/internal/report"
)

type model struct {
	locationService *location.Service
	projectService  *project.Service
	fundingService  *funding.Service
	adminService    *admin.Service
	managerService  *manager.Service
	importService   *importer.Service
	reportService   *report.Service

	currentView View

	projectsView view.ProjectsModel
	topView      view.TopModel
	sweepView    view.SweepModel
	importView   view.ImportModel
	exportView   view.ExportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewProjects View = 1
	ViewTop      View = 2
	ViewSweep    View = 3
	ViewImport   View = 4
	ViewExport   View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they stay out of the rendered view.
	logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpen:     cfg.DB.MaxOpenConns,
		MaxIdle:     cfg.DB.MaxIdleConns,
		MaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ledgerRepo := ledgerStore.New(db)
	locSvc := location.NewService(locationStore.New(db))
	projSvc := project.NewService(projectStore.New(db))
	donorSvc := donor.NewService(donorStore.New(db))
	fundSvc := funding.NewService(ledgerRepo)
	adminSvc := admin.NewService(ledgerRepo, admin.User{Name: cfg.Admin.Name, Mail: cfg.Admin.Mail})
	mgrSvc := manager.NewService(ledgerRepo, projSvc, donorSvc, locSvc)
	impSvc := importer.NewService()
	repSvc := report.NewService(mgrSvc)

	return model{
		locationService: locSvc,
		projectService:  projSvc,
		fundingService:  fundSvc,
		adminService:    adminSvc,
		managerService:  mgrSvc,
		importService:   impSvc,
		reportService:   repSvc,
		currentView:     ViewMenu,
		projectsView:    view.NewProjectsModel(projSvc, fundSvc, adminSvc),
		topView:         view.NewTopModel(mgrSvc),
		sweepView:       view.NewSweepModel(mgrSvc),
		importView:      view.NewImportModel(locSvc, impSvc),
		exportView:      view.NewExportModel(repSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewProjects
				m.projectsView = view.NewProjectsModel(m.projectService, m.fundingService, m.adminService)

				return m, m.projectsView.Init()
			case "2":
				m.currentView = ViewTop
				m.topView = view.NewTopModel(m.managerService)

				return m, m.topView.Init()
			case "3":
				m.currentView = ViewSweep
				m.sweepView = view.NewSweepModel(m.managerService)

				return m, m.sweepView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.locationService, m.importService)

				return m, m.importView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.reportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewProjects:
		var newModel tea.Model
		newModel, cmd = m.projectsView.Update(msg)
		m.projectsView = newModel.(view.ProjectsModel)
	case ViewTop:
		var newModel tea.Model
		newModel, cmd = m.topView.Update(msg)
		m.topView = newModel.(view.TopModel)
	case ViewSweep:
		var newModel tea.Model
		newModel, cmd = m.sweepView.Update(msg)
		m.sweepView = newModel.(view.SweepModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Conectando\n\n" +
				"1. Projects & Donations\n" +
				"2. Top Donations\n" +
				"3. Close Finished Projects\n" +
				"4. Import Locations\n" +
				"5. Export Monthly Report\n\n" +
				"q. Quit",
		)
	case ViewProjects:
		return m.projectsView.View()
	case ViewTop:
		return m.topView.View()
	case ViewSweep:
		return m.sweepView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
