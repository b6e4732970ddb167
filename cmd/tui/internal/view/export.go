package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jpcarvalho/lexledger/internal/export"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateDone
)

// ExportModel writes a case's ledger to a CSV or JSON file on disk.
type ExportModel struct {
	CommonModel
	exporter *export.Service

	state exportState
	form  *huh.Form

	caseInput string
	format    string
	path      string

	written string
	err     error
}

func NewExportModel(exporter *export.Service) ExportModel {
	m := ExportModel{
		exporter: exporter,
		format:   string(export.FormatCSV),
	}
	m.form = m.newForm()

	return m
}

func (m ExportModel) Title() string { return "Export Ledger" }
func (m ExportModel) ShortHelp() string {
	if m.state == exportStateDone {
		return "Esc: back"
	}
	return "Navigate form | Esc: back"
}

func (m *ExportModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("case_id").
				Title("Case ID").
				Value(&m.caseInput).
				Validate(func(s string) error {
					if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("invalid case id")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("format").
				Title("Format").
				Options(
					huh.NewOption("CSV", string(export.FormatCSV)),
					huh.NewOption("JSON", string(export.FormatJSON)),
				).
				Value(&m.format),

			huh.NewInput().
				Key("path").
				Title("Output file").
				Placeholder("ledger.csv").
				Value(&m.path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("output file is required")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.err = result.err
		m.written = result.path
		m.state = exportStateDone
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state == exportStateDone {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.exportCmd()
}

func (m ExportModel) View() string {
	if m.state == exportStateForm {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Export Case Ledger\n\n" + m.form.View(),
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Export failed: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(2).Render("Exported ledger to " + m.written)
}

type exportResultMsg struct {
	path string
	err  error
}

func (m ExportModel) exportCmd() tea.Cmd {
	caseID, _ := uuid.Parse(strings.TrimSpace(m.caseInput))
	format := export.Format(m.format)
	path := strings.TrimSpace(m.path)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		data, err := m.exporter.Export(ctx, caseID, format)
		if err != nil {
			return exportResultMsg{err: err}
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{path: path}
	}
}
