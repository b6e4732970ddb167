package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jpcarvalho/lexledger/cmd/tui/internal/view"
	"github.com/jpcarvalho/lexledger/internal/config"
	"github.com/jpcarvalho/lexledger/internal/database"
	"github.com/jpcarvalho/lexledger/internal/export"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
	lineitemStore "github.com/jpcarvalho/lexledger/internal/lineitem/store"
	"github.com/jpcarvalho/lexledger/internal/template"
	templateStore "github.com/jpcarvalho/lexledger/internal/template/store"
)

type model struct {
	ledgerService   *lineitem.Service
	templateService *template.Service
	exportService   *export.Service

	currentView View

	ledgerView   view.LedgerModel
	applyView    view.ApplyTemplateModel
	scheduleView view.ScheduleModel
	exportView   view.ExportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewLedger   View = 1
	ViewApply    View = 2
	ViewSchedule View = 3
	ViewExport   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	view.Currency = cfg.Finance.Currency

	ledgerSvc := lineitem.NewService(lineitemStore.New(db), cfg.TaxRate())
	templateSvc := template.NewService(templateStore.New(db), ledgerSvc)
	exportSvc := export.NewService(ledgerSvc)

	return model{
		ledgerService:   ledgerSvc,
		templateService: templateSvc,
		exportService:   exportSvc,
		currentView:     ViewMenu,
		ledgerView:      view.NewLedgerModel(ledgerSvc),
		applyView:       view.NewApplyTemplateModel(templateSvc, ledgerSvc),
		scheduleView:    view.NewScheduleModel(),
		exportView:      view.NewExportModel(exportSvc),
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
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.ledgerService)

				return m, m.ledgerView.Init()
			case "2":
				m.currentView = ViewApply
				m.applyView = view.NewApplyTemplateModel(m.templateService, m.ledgerService)

				return m, m.applyView.Init()
			case "3":
				m.currentView = ViewSchedule
				m.scheduleView = view.NewScheduleModel()

				return m, m.scheduleView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewApply:
		var newModel tea.Model
		newModel, cmd = m.applyView.Update(msg)
		m.applyView = newModel.(view.ApplyTemplateModel)
	case ViewSchedule:
		var newModel tea.Model
		newModel, cmd = m.scheduleView.Update(msg)
		m.scheduleView = newModel.(view.ScheduleModel)
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
			"LexLedger TUI\n\n" +
				"1. Browse Case Ledger\n" +
				"2. Apply Fee Template\n" +
				"3. Payment Schedule Calculator\n" +
				"4. Export Ledger\n\n" +
				"q. Quit",
		)
	case ViewLedger:
		return m.ledgerView.View()
	case ViewApply:
		return m.applyView.View()
	case ViewSchedule:
		return m.scheduleView.View()
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
