package usecases

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func ParseOrder(value string) Order {
	if Order(value) == OrderDesc {
		return OrderDesc
	}
	return OrderAsc
}

var DefaultRowsPerPageOptions = []int{15, 20, 25}

const DefaultRowsPerPage = 15

// Comparator orders two attribute values ascending.
type Comparator func(a, b any) int

type TableConfig struct {
	Headers            []domain.HeaderSpec
	SortKeys           map[string]string
	Comparator         Comparator
	RowsPerPageOptions []int
	RowsPerPage        int

	OnSelected          func(selected []shareddomain.ID)
	OnClick             func(row shareddomain.Record)
	OnPageChange        func(page int)
	OnRowsPerPageChange func(rowsPerPage int)
}

// Table holds only view local state. Rows and selection are owned by the
// caller and reported back through the callbacks.
type Table struct {
	config TableConfig

	order       Order
	orderBy     string
	page        int
	rowsPerPage int

	rows      []shareddomain.Record
	totalRows int
	remote    bool
	selected  []shareddomain.ID
}

func NewTable(config TableConfig) *Table {
	if len(config.RowsPerPageOptions) == 0 {
		config.RowsPerPageOptions = DefaultRowsPerPageOptions
	}
	if config.RowsPerPage == 0 {
		config.RowsPerPage = DefaultRowsPerPage
	}
	if config.Comparator == nil {
		config.Comparator = CompareValues
	}

	return &Table{
		config:      config,
		order:       OrderAsc,
		rowsPerPage: config.RowsPerPage,
	}
}

// SetRows hands the table the full row set; pages are sliced locally.
func (t *Table) SetRows(rows []shareddomain.Record) {
	t.rows = rows
	t.totalRows = len(rows)
	t.remote = false
}

// SetPageRows hands the table one page already sliced by the record service.
func (t *Table) SetPageRows(result shareddomain.PageResult) {
	t.rows = result.Records
	t.totalRows = result.TotalRecords
	t.remote = true
}

func (t *Table) SetSelected(selected []shareddomain.ID) {
	t.selected = selected
}

func (t *Table) Selected() []shareddomain.ID {
	return t.selected
}

// SetSort restores a sort without toggling, e.g. from URL parameters.
func (t *Table) SetSort(orderBy string, order Order) {
	t.orderBy = orderBy
	t.order = order
}

// RequestSort toggles the direction on the active column and resets it to
// ascending on any other column.
func (t *Table) RequestSort(headerID string) {
	isAsc := t.orderBy == headerID && t.order == OrderAsc
	if isAsc {
		t.order = OrderDesc
	} else {
		t.order = OrderAsc
	}
	t.orderBy = headerID
}

func (t *Table) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	t.page = page
	if t.config.OnPageChange != nil {
		t.config.OnPageChange(page)
	}
}

// SetRowsPerPage returns false when the value is not one of the options.
func (t *Table) SetRowsPerPage(rowsPerPage int) bool {
	if !slices.Contains(t.config.RowsPerPageOptions, rowsPerPage) {
		return false
	}
	t.rowsPerPage = rowsPerPage
	t.page = 0
	if t.config.OnRowsPerPageChange != nil {
		t.config.OnRowsPerPageChange(rowsPerPage)
	}
	return true
}

// restorePage sets the page without notifying, used when state comes from a URL.
func (t *Table) restorePage(page, rowsPerPage int) {
	t.page = page
	if slices.Contains(t.config.RowsPerPageOptions, rowsPerPage) {
		t.rowsPerPage = rowsPerPage
	}
}

func (t *Table) Page() int {
	return t.page
}

func (t *Table) RowsPerPage() int {
	return t.rowsPerPage
}

func (t *Table) PageCount() int {
	if t.rowsPerPage == 0 {
		return 0
	}
	return (t.totalRows + t.rowsPerPage - 1) / t.rowsPerPage
}

func (t *Table) ClickSelectAll() {
	t.emitSelected(SelectAll(t.SortedRows(), t.selected))
}

func (t *Table) ClickCheckbox(row shareddomain.Record) {
	t.emitSelected(ToggleSelection(t.selected, row.Identifier()))
}

func (t *Table) ClickRow(row shareddomain.Record) {
	if t.config.OnClick != nil {
		t.config.OnClick(row)
	}
}

func (t *Table) emitSelected(selected []shareddomain.ID) {
	if t.config.OnSelected != nil {
		t.config.OnSelected(selected)
	}
}

func (t *Table) sortKey() string {
	if key, ok := t.config.SortKeys[t.orderBy]; ok {
		return key
	}
	return t.orderBy
}

// SortedRows returns a sorted copy of the rows. Equal keys keep their
// original relative order in both directions.
func (t *Table) SortedRows() []shareddomain.Record {
	return StableSort(t.rows, t.sortKey(), t.order, t.config.Comparator)
}

// VisibleRows returns the rows on the current page and the number of filler
// rows needed to pad the page to its full height.
func (t *Table) VisibleRows() ([]shareddomain.Record, int) {
	sorted := t.SortedRows()

	start, end := 0, min(len(sorted), t.rowsPerPage)
	if !t.remote {
		start = min(t.page*t.rowsPerPage, len(sorted))
		end = min(start+t.rowsPerPage, len(sorted))
	}

	visible := sorted[start:end]
	return visible, t.rowsPerPage - len(visible)
}

type TableRow struct {
	Record   shareddomain.Record
	Selected bool
	Filler   bool
}

type TableView struct {
	Headers            []domain.HeaderSpec
	Rows               []TableRow
	Order              Order
	OrderBy            string
	Page               int
	RowsPerPage        int
	RowsPerPageOptions []int
	TotalRows          int
	Selected           []shareddomain.ID
	AllSelected        bool
}

func (t *Table) Render() TableView {
	visible, filler := t.VisibleRows()

	rows := make([]TableRow, 0, len(visible)+filler)
	for _, record := range visible {
		rows = append(rows, TableRow{
			Record:   record,
			Selected: slices.Contains(t.selected, record.Identifier()),
		})
	}
	for range filler {
		rows = append(rows, TableRow{Filler: true})
	}

	return TableView{
		Headers:            t.config.Headers,
		Rows:               rows,
		Order:              t.order,
		OrderBy:            t.orderBy,
		Page:               t.page,
		RowsPerPage:        t.rowsPerPage,
		RowsPerPageOptions: t.config.RowsPerPageOptions,
		TotalRows:          t.totalRows,
		Selected:           t.selected,
		AllSelected:        len(t.rows) > 0 && len(t.selected) == len(t.rows),
	}
}

// StableSort sorts by key with the index of each row as the tie breaker.
func StableSort(rows []shareddomain.Record, key string, order Order, compare Comparator) []shareddomain.Record {
	type decorated struct {
		row   shareddomain.Record
		index int
	}

	items := make([]decorated, len(rows))
	for i, row := range rows {
		items[i] = decorated{row: row, index: i}
	}

	slices.SortFunc(items, func(a, b decorated) int {
		result := compare(a.row[key], b.row[key])
		if order == OrderDesc {
			result = -result
		}
		if result != 0 {
			return result
		}
		return cmp.Compare(a.index, b.index)
	})

	sorted := make([]shareddomain.Record, len(items))
	for i, item := range items {
		sorted[i] = item.row
	}
	return sorted
}

// SelectAll toggles between no selection and every row identifier in order.
func SelectAll(rows []shareddomain.Record, selected []shareddomain.ID) []shareddomain.ID {
	if len(rows) > 0 && len(selected) == len(rows) {
		return []shareddomain.ID{}
	}

	all := make([]shareddomain.ID, 0, len(rows))
	for _, row := range rows {
		all = append(all, row.Identifier())
	}
	return all
}

// ToggleSelection appends id or filters it out keeping the order of the rest.
func ToggleSelection(selected []shareddomain.ID, id shareddomain.ID) []shareddomain.ID {
	if !slices.Contains(selected, id) {
		next := make([]shareddomain.ID, 0, len(selected)+1)
		next = append(next, selected...)
		return append(next, id)
	}

	next := make([]shareddomain.ID, 0, len(selected)-1)
	for _, s := range selected {
		if s != id {
			next = append(next, s)
		}
	}
	return next
}

// CompareValues orders numbers numerically, strings case sensitively, times
// chronologically and false before true. Missing values sort first.
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		return compareNil(a, b)
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return compareBool(x, y)
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// CaseInsensitiveComparator lowers strings and compares times by their Unix
// milliseconds before falling back to CompareValues.
func CaseInsensitiveComparator(a, b any) int {
	return CompareValues(normalizeValue(a), normalizeValue(b))
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case string:
		return strings.ToLower(v)
	case time.Time:
		return v.UnixMilli()
	default:
		return value
	}
}

func compareNil(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	default:
		return 1
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
