package browse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sparqlet/sparqlet/log"
	"github.com/sparqlet/sparqlet/results/tsv"
	"github.com/sparqlet/sparqlet/term"
)

const (
	filterPrompt = "/ "

	// unboundCell marks a variable present in the header but unbound in the
	// selected row, matching the dump command's tree rendering.
	unboundCell = "UNDEF"

	minColWidth = 5
	maxColWidth = 40

	defaultWidth = 80

	// chromeHeight is the number of view lines spent outside the table:
	// header border, filter line, and status line.
	chromeHeight = 4
)

// Styles.
var (
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is the Bubble Tea model for the result browser.
type model struct {
	ctxFunc   func() context.Context
	logger    log.Logger
	table     table.Model
	filter    textinput.Model
	rows      []table.Row // unfiltered rows, header order
	haystack  []string    // tab-joined row text backing fuzzy matching
	shown     int         // rows visible under the active filter
	width     int
	filtering bool
	quitting  bool
}

func newModel(
	ctx context.Context,
	result *tsv.Result,
	height int,
	logger log.Logger,
) model {
	rows := make([]table.Row, len(result.Bindings))
	haystack := make([]string, len(result.Bindings))

	for i, binding := range result.Bindings {
		row := make(table.Row, len(result.Vars))
		for j, v := range result.Vars {
			row[j] = cellText(binding[v])
		}

		rows[i] = row
		haystack[i] = strings.Join(row, "\t")
	}

	t := table.New(
		table.WithColumns(columns(result, rows)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(height, max(len(rows), 1))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderStyle.GetForeground()).
		BorderBottom(true).
		Inherit(headerStyle)
	s.Selected = selectedStyle
	t.SetStyles(s)

	ti := textinput.New()
	ti.Prompt = filterStyle.Render(filterPrompt)
	ti.Placeholder = "filter"
	ti.CharLimit = 256
	ti.Width = defaultWidth - len(filterPrompt) - 2

	return model{
		ctxFunc:  func() context.Context { return ctx },
		logger:   logger,
		table:    t,
		filter:   ti,
		rows:     rows,
		haystack: haystack,
		shown:    len(rows),
		width:    defaultWidth,
	}
}

// cellText renders a bound term for display in a table cell.
func cellText(t term.Term) string {
	if t == nil {
		return unboundCell
	}

	return t.String()
}

// columns sizes each column to its widest cell, clamped so that a single
// long literal cannot crowd out the other variables.
func columns(result *tsv.Result, rows []table.Row) []table.Column {
	cols := make([]table.Column, len(result.Vars))

	for i, v := range result.Vars {
		width := len(v.String())
		for _, row := range rows {
			width = max(width, len(row[i]))
		}

		cols[i] = table.Column{
			Title: v.String(),
			Width: min(max(width, minColWidth), maxColWidth),
		}
	}

	return cols
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-chromeHeight, 1))
		m.filter.Width = msg.Width - len(filterPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")

	return b.String()
}

func (m model) statusView() string {
	status := fmt.Sprintf("%d/%d rows", m.shown, len(m.rows))

	var hint string
	if m.filtering {
		hint = "Enter keep filter · Esc clear"
	} else {
		hint = "/ filter · q quit"
	}

	return hintStyle.Render(status + "  " + hint)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"browse keypress",
		slog.String("key", msg.String()),
		slog.Bool("filtering", m.filtering),
	)

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEsc:
		// Clear a committed filter; quit when none is active.
		if m.filter.Value() != "" {
			m.filter.SetValue("")

			return m.applyFilter(), nil
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyRunes:
		switch msg.String() {
		case "q":
			m.quitting = true

			return m, tea.Quit

		case "/":
			m.filtering = true
			m.table.Blur()

			return m, m.filter.Focus()
		}
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m model) handleFilterKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEsc:
		// Abandon the filter and restore the full document.
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")

		m.table.Focus()

		return m.applyFilter(), nil

	case tea.KeyEnter:
		// Keep the current matches and return focus to the table.
		m.filtering = false
		m.filter.Blur()
		m.table.Focus()

		m.logger.TraceContext(
			m.ctxFunc(),
			"browse filter",
			slog.String("query", m.filter.Value()),
			slog.Int("matched", m.shown),
		)

		return m, nil
	}

	var cmd tea.Cmd

	m.filter, cmd = m.filter.Update(msg)

	return m.applyFilter(), cmd
}

// applyFilter recomputes the visible rows from the filter query. Matches are
// shown in rank order, best first, so the tightest match lands on the cursor.
func (m model) applyFilter() model {
	query := strings.TrimSpace(m.filter.Value())

	if query == "" {
		m.table.SetRows(m.rows)
		m.table.SetCursor(0)
		m.shown = len(m.rows)

		return m
	}

	matches := fuzzy.Find(query, m.haystack)

	rows := make([]table.Row, len(matches))
	for i, match := range matches {
		rows[i] = m.rows[match.Index]
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
	m.shown = len(rows)

	return m
}
