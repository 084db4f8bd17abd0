package components

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn is a column heading and its cell width.
type TableColumn struct {
	Title string
	Width int
}

// Table renders static rows through a bubbles table.
type Table struct {
	BaseComponent
	columns  []TableColumn
	rows     [][]string
	selected int
}

// NewTable creates a table over columns.
func NewTable(columns ...TableColumn) *Table {
	return &Table{BaseComponent: NewBaseComponent(), columns: columns, selected: -1}
}

// View renders with the default context.
func (t *Table) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header and every row.
func (t *Table) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette

	cols := make([]table.Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = table.Column{Title: c.Title, Width: max(c.Width, lipgloss.Width(c.Title))}
	}
	rows := make([]table.Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = table.Row(r)
	}

	styles := table.Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Neutral.Muted).
			Padding(0, 1),
		Cell:     lipgloss.NewStyle().Foreground(p.Surface.OnBase).Padding(0, 1),
		Selected: lipgloss.NewStyle(),
	}
	highlight := t.selected >= 0 && t.selected < len(rows)
	if highlight {
		styles.Selected = lipgloss.NewStyle().Background(p.Primary.Muted).Foreground(p.Primary.OnBase)
	}

	model := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+lipgloss.Height(styles.Header.Render(" "))),
		table.WithStyles(styles),
	)
	if highlight {
		model.SetCursor(t.selected)
	}

	return t.ComputeStyle(ctx.Theme).Render(model.View())
}

// WithRows replaces the rows. Short rows are padded and long rows truncated
// to the column count.
func (t *Table) WithRows(rows ...[]string) *Table {
	t.rows = make([][]string, len(rows))
	for i, r := range rows {
		row := make([]string, len(t.columns))
		copy(row, r)
		t.rows[i] = row
	}
	return t
}

// WithSelected highlights the row at index. An index outside the rows
// disables the highlight.
func (t *Table) WithSelected(index int) *Table {
	t.selected = index
	return t
}

// WithAppliers adds theme-based style modifiers.
func (t *Table) WithAppliers(appliers ...StyleFunc) *Table {
	t.AddAppliers(appliers...)
	return t
}

// Rows returns the normalised rows.
func (t *Table) Rows() [][]string {
	return t.rows
}
