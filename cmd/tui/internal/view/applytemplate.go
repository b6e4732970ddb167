package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jpcarvalho/lexledger/internal/calc"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
	"github.com/jpcarvalho/lexledger/internal/template"
)

type applyState int

const (
	applyStateLoading applyState = iota
	applyStateForm
	applyStateDone
)

// ApplyTemplateModel applies a fee template to a case, replacing its
// current ledger.
type ApplyTemplateModel struct {
	CommonModel
	templates *template.Service
	ledger    *lineitem.Service

	state     applyState
	form      *huh.Form
	available []*template.Template

	caseInput  string
	templateID string

	applied []*lineitem.LineItem
	totals  calc.Totals
	err     error
}

func NewApplyTemplateModel(templates *template.Service, ledger *lineitem.Service) ApplyTemplateModel {
	return ApplyTemplateModel{
		templates: templates,
		ledger:    ledger,
		state:     applyStateLoading,
	}
}

func (m ApplyTemplateModel) Title() string { return "Apply Template" }
func (m ApplyTemplateModel) ShortHelp() string {
	switch m.state {
	case applyStateForm:
		return "Navigate form | Esc: back"
	case applyStateDone:
		return "Esc: back"
	}
	return ""
}

func (m ApplyTemplateModel) Init() tea.Cmd {
	return m.loadTemplatesCmd()
}

func (m ApplyTemplateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTemplatesMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = applyStateDone
			return m, nil
		}
		m.available = msg.templates
		m.form = m.newForm()
		m.state = applyStateForm
		return m, m.form.Init()

	case applyResultMsg:
		m.err = msg.err
		m.applied = msg.items
		m.totals = msg.totals
		m.state = applyStateDone
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state != applyStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.applyCmd()
}

func (m *ApplyTemplateModel) newForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(m.available))
	for _, tmpl := range m.available {
		label := tmpl.Name
		if tmpl.IsDefault {
			label += " (default)"
		}
		options = append(options, huh.NewOption(label, tmpl.ID.String()))
	}

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
				Key("template").
				Title("Template").
				Options(options...).
				Value(&m.templateID),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ApplyTemplateModel) View() string {
	switch m.state {
	case applyStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading templates...")
	case applyStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Apply Fee Template\n\n" + m.form.View(),
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Applied %d line items to case %s\n\n", len(m.applied), strings.TrimSpace(m.caseInput))
	for _, item := range m.applied {
		fmt.Fprintf(&b, "  %2d. %-30s %12s\n", item.DisplayOrder, item.Name, FormatAmount(item.Amount))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s   Tax: %s   Total: %s",
		FormatAmount(m.totals.Subtotal),
		FormatAmount(m.totals.TaxAmount),
		FormatAmount(m.totals.Total),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

type loadTemplatesMsg struct {
	templates []*template.Template
	err       error
}

func (m ApplyTemplateModel) loadTemplatesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		templates, err := m.templates.List(ctx, true)
		return loadTemplatesMsg{templates: templates, err: err}
	}
}

type applyResultMsg struct {
	items  []*lineitem.LineItem
	totals calc.Totals
	err    error
}

func (m ApplyTemplateModel) applyCmd() tea.Cmd {
	caseID, _ := uuid.Parse(strings.TrimSpace(m.caseInput))
	templateID, err := uuid.Parse(m.templateID)
	if err != nil {
		return func() tea.Msg { return applyResultMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.templates.ApplyToCase(ctx, caseID, templateID)
		if err != nil {
			return applyResultMsg{err: err}
		}

		totals := calc.ComputeTotals(lineitem.ToCalcItems(items), m.ledger.TaxRate())

		return applyResultMsg{items: items, totals: totals}
	}
}
