package widget

// Range is an inclusive index range. An empty range has Last < First.
type Range struct {
	First, Last int
}

// List is a single/multi selection list of items.
type List struct {
	base
	selectable
	items        []any
	visibleRows  int
	firstVisible int
	repaints     []Range
}

// DefaultVisibleRows is the viewport height of a new list.
const DefaultVisibleRows = 8

// NewList creates a list over items.
func NewList(name string, items []any) *List {
	l := &List{base: newBase("list", name), items: items, visibleRows: DefaultVisibleRows}
	l.sel = newSelectionModel(l)
	return l
}

// Items returns the backing data.
func (l *List) Items() []any { return l.items }

// SetItems replaces the backing data. Callers repaint afterwards.
func (l *List) SetItems(items []any) {
	l.items = items
	if l.firstVisible >= len(items) {
		l.firstVisible = 0
	}
}

// SetVisibleRows sets the viewport height in rows.
func (l *List) SetVisibleRows(n int) {
	if n < 1 {
		n = 1
	}
	l.visibleRows = n
}

// ScrollTo makes row first the top visible row.
func (l *List) ScrollTo(first int) {
	if first < 0 {
		first = 0
	}
	l.firstVisible = first
}

// VisibleRange returns the rows currently inside the viewport.
func (l *List) VisibleRange() Range {
	last := l.firstVisible + l.visibleRows - 1
	if last >= len(l.items) {
		last = len(l.items) - 1
	}
	return Range{First: l.firstVisible, Last: last}
}

// RepaintRange asks the list to re-render rows [first, last].
func (l *List) RepaintRange(first, last int) {
	l.repaints = append(l.repaints, Range{First: first, Last: last})
}

// Repaints returns the repaint requests received so far.
func (l *List) Repaints() []Range { return l.repaints }

// Table is a tabular component with a row selection model.
type Table struct {
	base
	selectable
	columns []string
	rows    [][]any
	redraws int
}

// NewTable creates a table.
func NewTable(name string, columns []string, rows [][]any) *Table {
	t := &Table{base: newBase("table", name), columns: columns, rows: rows}
	t.sel = newSelectionModel(t)
	return t
}

// Columns returns the column headers.
func (t *Table) Columns() []string { return t.columns }

// Rows returns the backing data.
func (t *Table) Rows() [][]any { return t.rows }

// SetRows replaces the backing data. Callers redraw afterwards.
func (t *Table) SetRows(rows [][]any) { t.rows = rows }

// Redraw asks the table to re-render completely.
func (t *Table) Redraw() { t.redraws++ }

// RedrawCount returns the number of full redraws requested.
func (t *Table) RedrawCount() int { return t.redraws }
