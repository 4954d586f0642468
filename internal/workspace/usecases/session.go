package usecases

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
)

const (
	OrderByParam  = "order_by"
	OrderParam    = "order"
	SelectedParam = "selected"
)

// ViewSession owns the URL derived state of one list view and keeps its
// table in sync with the latest list response.
type ViewSession struct {
	view      View
	records   RecordService
	sequencer Sequencer

	mu      sync.Mutex
	filters domain.FilterState
	table   *Table
}

func NewViewSession(view View, records RecordService) *ViewSession {
	return &ViewSession{
		view:    view,
		records: records,
		filters: ToFilterState(view.Filters, nil),
		table:   NewTable(view.TableConfig()),
	}
}

func (s *ViewSession) View() View {
	return s.view
}

// Restore loads filters, paging, sorting and selection from URL parameters.
func (s *ViewSession) Restore(raw map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = ToFilterState(s.view.Filters, raw)

	page := ParsePageParams(raw, s.table.config.RowsPerPage, s.table.config.RowsPerPageOptions)
	s.table.restorePage(page.Page, page.Limit)

	if orderBy := raw[OrderByParam]; orderBy != "" {
		s.table.SetSort(orderBy, ParseOrder(raw[OrderParam]))
	}

	s.table.SetSelected(parseSelected(raw[SelectedParam]))
}

// Params returns the URL parameters describing the current state.
func (s *ViewSession) Params() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params()
}

func (s *ViewSession) params() map[string]string {
	params := ToURLParams(s.view.Filters, s.filters)
	return PageParams{Page: s.table.Page(), Limit: s.table.RowsPerPage()}.ToURLParams(params)
}

func (s *ViewSession) Filters() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *ViewSession) SetFilter(identifier string, value domain.FilterValue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.filters)
	next[identifier] = value
	s.filters = next
}

func (s *ViewSession) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = ToFilterState(s.view.Filters, nil)
}

// WithTable runs fn with exclusive access to the table.
func (s *ViewSession) WithTable(fn func(t *Table)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.table)
}

func (s *ViewSession) Render() TableView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Render()
}

// Fetch issues a list request tagged with a new sequence number.
func (s *ViewSession) Fetch(ctx context.Context) (uint64, shareddomain.PageResult, error) {
	seq := s.sequencer.Next()
	params := s.Params()

	result, err := s.records.List(ctx, s.view.Resource, params)
	if err != nil {
		return seq, shareddomain.PageResult{}, fmt.Errorf("listing %s: %w", s.view.Resource, err)
	}
	return seq, result, nil
}

// Apply replaces the rows unless a newer request has been issued since seq.
func (s *ViewSession) Apply(seq uint64, result shareddomain.PageResult) error {
	return s.sequencer.Apply(seq, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.table.SetPageRows(result)
	})
}

// IsLatest reports whether seq belongs to the most recent Fetch.
func (s *ViewSession) IsLatest(seq uint64) bool {
	return s.sequencer.IsLatest(seq)
}

func (s *ViewSession) Refresh(ctx context.Context) error {
	seq, result, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	return s.Apply(seq, result)
}

func parseSelected(value string) []shareddomain.ID {
	if value == "" {
		return nil
	}

	var selected []shareddomain.ID
	for _, part := range strings.Split(value, ",") {
		id := shareddomain.ID(strings.TrimSpace(part))
		if id == "" {
			continue
		}
		if !slices.Contains(selected, id) {
			selected = append(selected, id)
		}
	}
	return selected
}
