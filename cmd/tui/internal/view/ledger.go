package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jpcarvalho/lexledger/internal/calc"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

type ledgerState int

const (
	ledgerStatePickCase ledgerState = iota
	ledgerStateBrowse
)

// LedgerModel shows the line items of one case together with its
// computed totals.
type LedgerModel struct {
	CommonModel
	ledger *lineitem.Service

	state  ledgerState
	form   *huh.Form
	table  table.Model
	items  []*lineitem.LineItem
	totals calc.Totals

	caseID    uuid.UUID
	caseInput string

	loading bool
	err     error
}

func NewLedgerModel(ledger *lineitem.Service) LedgerModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 30},
		{Title: "Category", Width: 12},
		{Title: "Amount", Width: 14},
		{Title: "Taxable", Width: 8},
		{Title: "Description", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := LedgerModel{
		ledger: ledger,
		table:  t,
	}
	m.form = m.newCaseForm()

	return m
}

func (m LedgerModel) Title() string { return "Case Ledger" }
func (m LedgerModel) ShortHelp() string {
	if m.state == ledgerStatePickCase {
		return "Enter: load | Esc: back"
	}
	return "Esc: back | r: refresh | c: change case"
}

func (m *LedgerModel) newCaseForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("case_id").
				Title("Case ID").
				Placeholder("00000000-0000-0000-0000-000000000000").
				Value(&m.caseInput).
				Validate(func(s string) error {
					if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("invalid case id")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m LedgerModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.items = msg.items
		m.totals = msg.totals
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case ledgerStatePickCase:
		return m.updatePickCase(msg)
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m LedgerModel) updatePickCase(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.caseID, _ = uuid.Parse(strings.TrimSpace(m.caseInput))
	m.state = ledgerStateBrowse
	m.loading = true
	m.table.Focus()

	return m, m.loadLedgerCmd()
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadLedgerCmd()
		case "c":
			m.state = ledgerStatePickCase
			m.form = m.newCaseForm()
			m.table.Blur()

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m LedgerModel) View() string {
	if m.state == ledgerStatePickCase {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Open Case Ledger\n\n" + m.form.View(),
		)
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading ledger...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	totals := fmt.Sprintf(
		"Subtotal: %s   Tax: %s   Total: %s",
		FormatAmount(m.totals.Subtotal),
		FormatAmount(m.totals.TaxAmount),
		FormatAmount(m.totals.Total),
	)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render("Case "+m.caseID.String()),
			tableView,
			lipgloss.NewStyle().PaddingTop(1).Bold(true).Render(totals),
		),
	)
}

func (m *LedgerModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		taxable := "No"
		if item.Taxable {
			taxable = "Yes"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", item.DisplayOrder),
			item.Name,
			string(item.Category),
			FormatAmount(item.Amount),
			taxable,
			item.Description,
		})
	}
	m.table.SetRows(rows)
}

type loadLedgerMsg struct {
	items  []*lineitem.LineItem
	totals calc.Totals
	err    error
}

func (m LedgerModel) loadLedgerCmd() tea.Cmd {
	caseID := m.caseID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.ledger.List(ctx, caseID)
		if err != nil {
			return loadLedgerMsg{err: err}
		}

		totals := calc.ComputeTotals(lineitem.ToCalcItems(items), m.ledger.TaxRate())

		return loadLedgerMsg{items: items, totals: totals}
	}
}
