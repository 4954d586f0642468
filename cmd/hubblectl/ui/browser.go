package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minColumnWidth = 8
	maxColumnWidth = 32
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	frameStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// PageLoadedMsg carries a list response tagged with its request sequence number.
type PageLoadedMsg struct {
	Seq    uint64
	Result shareddomain.PageResult
	Err    error
}

// Browser is a bubbletea model over one view session.
type Browser struct {
	ctx     context.Context
	session *usecases.ViewSession
	table   table.Model
	rows    []shareddomain.Record
	loading bool
	err     error
}

func NewBrowser(ctx context.Context, session *usecases.ViewSession) *Browser {
	b := &Browser{
		ctx:     ctx,
		session: session,
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(session.View().RowsPerPage),
		),
	}
	b.table.SetColumns(columns(session.View()))
	return b
}

func (b *Browser) Err() error {
	return b.err
}

// Rows returns the records currently shown, in display order.
func (b *Browser) Rows() []shareddomain.Record {
	return b.rows
}

func (b *Browser) Init() tea.Cmd {
	return b.fetch()
}

func (b *Browser) fetch() tea.Cmd {
	b.loading = true
	return func() tea.Msg {
		seq, result, err := b.session.Fetch(b.ctx)
		return PageLoadedMsg{Seq: seq, Result: result, Err: err}
	}
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		return b, b.loaded(msg)

	case tea.WindowSizeMsg:
		b.table.SetWidth(msg.Width - 2)
		b.table.SetHeight(max(msg.Height-6, 3))
		return b, nil

	case tea.KeyMsg:
		if cmd, handled := b.handleKey(msg.String()); handled {
			return b, cmd
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b *Browser) loaded(msg PageLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		if b.session.IsLatest(msg.Seq) {
			b.loading = false
			b.err = msg.Err
		}
		return nil
	}

	if err := b.session.Apply(msg.Seq, msg.Result); err != nil {
		if errors.Is(err, usecases.ErrStaleResponse) {
			return nil
		}
		b.err = err
		return nil
	}

	b.loading = false
	b.err = nil
	b.syncRows()
	return nil
}

func (b *Browser) handleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit, true
	case "r":
		return b.fetch(), true
	case "n", "right":
		return b.turnPage(1), true
	case "p", "left":
		return b.turnPage(-1), true
	case "s":
		b.session.WithTable(func(t *usecases.Table) {
			t.SetSort(nextHeader(b.session.View(), t.Render().OrderBy), t.Render().Order)
		})
		b.syncRows()
		return nil, true
	case "o":
		b.session.WithTable(func(t *usecases.Table) {
			if orderBy := t.Render().OrderBy; orderBy != "" {
				t.RequestSort(orderBy)
			}
		})
		b.syncRows()
		return nil, true
	case " ":
		if cursor := b.table.Cursor(); cursor >= 0 && cursor < len(b.rows) {
			row := b.rows[cursor]
			b.session.WithTable(func(t *usecases.Table) {
				t.SetSelected(usecases.ToggleSelection(t.Selected(), row.Identifier()))
			})
			b.syncRows()
		}
		return nil, true
	case "a":
		b.session.WithTable(func(t *usecases.Table) {
			t.SetSelected(usecases.SelectAll(t.SortedRows(), t.Selected()))
		})
		b.syncRows()
		return nil, true
	}
	return nil, false
}

func (b *Browser) turnPage(delta int) tea.Cmd {
	moved := false
	b.session.WithTable(func(t *usecases.Table) {
		next := t.Page() + delta
		if next < 0 || (delta > 0 && next >= t.PageCount()) {
			return
		}
		t.SetPage(next)
		moved = true
	})
	if !moved {
		return nil
	}
	return b.fetch()
}

func (b *Browser) syncRows() {
	view := b.session.View()
	rendered := b.session.Render()

	b.rows = b.rows[:0]
	rows := make([]table.Row, 0, len(rendered.Rows))
	for _, row := range rendered.Rows {
		if row.Filler {
			continue
		}
		b.rows = append(b.rows, row.Record)

		cells := make(table.Row, 0, len(view.Headers)+1)
		mark := " "
		if row.Selected {
			mark = "x"
		}
		cells = append(cells, mark)
		for _, header := range view.Headers {
			cells = append(cells, view.FormatCell(row.Record, header.ID))
		}
		rows = append(rows, cells)
	}
	b.table.SetRows(rows)
}

func (b *Browser) View() string {
	view := b.session.View()
	rendered := b.session.Render()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(view.Title))
	sb.WriteString("\n")

	if len(b.rows) == 0 && !b.loading && b.err == nil {
		sb.WriteString(statusStyle.Render(view.EmptyMessage))
	} else {
		sb.WriteString(frameStyle.Render(b.table.View()))
	}
	sb.WriteString("\n")

	status := fmt.Sprintf("page %d/%d  %d records  %d selected",
		rendered.Page+1, max(1, pageCount(rendered)), rendered.TotalRows, len(rendered.Selected))
	if rendered.OrderBy != "" {
		status += fmt.Sprintf("  sorted by %s %s", rendered.OrderBy, rendered.Order)
	}
	if b.loading {
		status += "  loading..."
	}
	sb.WriteString(statusStyle.Render(status))

	if b.err != nil {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(b.err.Error()))
	}
	return sb.String()
}

func pageCount(rendered usecases.TableView) int {
	if rendered.RowsPerPage == 0 {
		return 0
	}
	return (rendered.TotalRows + rendered.RowsPerPage - 1) / rendered.RowsPerPage
}

func columns(view usecases.View) []table.Column {
	cols := make([]table.Column, 0, len(view.Headers)+1)
	cols = append(cols, table.Column{Title: " ", Width: 1})
	for _, header := range view.Headers {
		width := min(max(len(header.Label)+2, minColumnWidth), maxColumnWidth)
		cols = append(cols, table.Column{Title: header.Label, Width: width})
	}
	return cols
}

// nextHeader cycles through the clickable headers, starting over after the last one.
func nextHeader(view usecases.View, current string) string {
	var clickable []string
	for _, header := range view.Headers {
		if header.Clickable {
			clickable = append(clickable, header.ID)
		}
	}
	if len(clickable) == 0 {
		return current
	}

	for i, id := range clickable {
		if id == current {
			return clickable[(i+1)%len(clickable)]
		}
	}
	return clickable[0]
}
