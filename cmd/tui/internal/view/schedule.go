package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/calc"
)

type scheduleState int

const (
	scheduleStateForm scheduleState = iota
	scheduleStateBrowse
)

// ScheduleModel computes an installment plan for a given amount and
// shows it as a table.
type ScheduleModel struct {
	CommonModel

	state scheduleState
	form  *huh.Form
	table table.Model

	totalInput        string
	installmentsInput string
	rateInput         string

	entries []calc.ScheduleEntry
}

func NewScheduleModel() ScheduleModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Due", Width: 12},
		{Title: "Amount", Width: 12},
		{Title: "Interest", Width: 12},
		{Title: "Principal", Width: 12},
		{Title: "Remaining", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
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

	m := ScheduleModel{
		table:             t,
		installmentsInput: "12",
		rateInput:         "0",
	}
	m.form = m.newForm()

	return m
}

func (m ScheduleModel) Title() string { return "Payment Schedule" }
func (m ScheduleModel) ShortHelp() string {
	if m.state == scheduleStateForm {
		return "Navigate form | Esc: back"
	}
	return "Esc: back | n: new schedule"
}

func (m *ScheduleModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("total").
				Title("Total amount").
				Placeholder("513.21").
				Value(&m.totalInput).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("invalid amount")
					}
					if d.IsNegative() {
						return fmt.Errorf("amount must not be negative")
					}
					return nil
				}),

			huh.NewInput().
				Key("installments").
				Title("Installments").
				Value(&m.installmentsInput).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),

			huh.NewInput().
				Key("rate").
				Title("Annual interest rate (%)").
				Value(&m.rateInput).
				Validate(func(s string) error {
					r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || r < 0 {
						return fmt.Errorf("must be a non-negative number")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m ScheduleModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == scheduleStateBrowse && keyMsg.String() == "n" {
			m.state = scheduleStateForm
			m.form = m.newForm()
			m.table.Blur()

			return m, m.form.Init()
		}
	}

	if m.state == scheduleStateBrowse {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	total, _ := decimal.NewFromString(strings.TrimSpace(m.totalInput))
	installments, _ := strconv.Atoi(strings.TrimSpace(m.installmentsInput))
	rate, _ := strconv.ParseFloat(strings.TrimSpace(m.rateInput), 64)

	m.entries = calc.ComputeSchedule(total, installments, rate, time.Now())
	m.refreshTable()
	m.state = scheduleStateBrowse
	m.table.Focus()

	return m, nil
}

func (m ScheduleModel) View() string {
	if m.state == scheduleStateForm {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Payment Schedule Calculator\n\n" + m.form.View(),
		)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	paid := decimal.Zero
	for _, entry := range m.entries {
		paid = paid.Add(entry.Amount)
	}

	summary := fmt.Sprintf("%d installments, %s paid in total", len(m.entries), FormatAmount(paid))

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			tableView,
			lipgloss.NewStyle().PaddingTop(1).Bold(true).Render(summary),
		),
	)
}

func (m *ScheduleModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))
	for _, entry := range m.entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", entry.Installment),
			FormatDate(entry.DueDate),
			FormatAmount(entry.Amount),
			FormatAmount(entry.Interest),
			FormatAmount(entry.Principal),
			FormatAmount(entry.RemainingBalance),
		})
	}
	m.table.SetRows(rows)
}
