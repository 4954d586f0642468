package usecases

import (
	"math"
	"strconv"
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	workspacedomain "hubble-workspace/internal/workspace/domain"
	workspaceusecases "hubble-workspace/internal/workspace/usecases"
)

const (
	DateRangeParam = "date_range"
	StartDateParam = "start_date"
	EndDateParam   = "end_date"
	AllValues      = "all"
	MaxLimit       = 1000
)

var dateRangeFilter = workspacedomain.FilterFieldSpec{
	Identifier:      DateRangeParam,
	Type:            workspacedomain.FieldTypeTimeRange,
	StartIdentifier: StartDateParam,
	EndIdentifier:   EndDateParam,
	DefaultValue:    workspacedomain.TimeRange{Option: workspacedomain.TimeRangeAllTime},
}

// Parameters a list view sends that never name a record attribute.
var reservedParams = map[string]struct{}{
	workspaceusecases.PageParam:  {},
	workspaceusecases.LimitParam: {},
	DateRangeParam:               {},
	StartDateParam:               {},
	EndDateParam:                 {},
	"order_by":                   {},
	"order":                      {},
	"selected":                   {},
}

// RecordQuery selects a page of records created inside Window whose
// attributes equal Attributes. A zero Limit means no paging.
type RecordQuery struct {
	Offset     int
	Limit      int
	Window     shareddomain.Window
	Attributes map[string]string
}

// ParseListQuery reads the flat list parameters. Malformed paging falls back
// to the first unpaged result, pages too far out to address resolve to an
// empty page, and "all" disables an attribute filter.
func ParseListQuery(params map[string]string, now time.Time) RecordQuery {
	query := RecordQuery{Attributes: map[string]string{}}

	limit, err := strconv.Atoi(params[workspaceusecases.LimitParam])
	if err == nil && limit > 0 {
		query.Limit = min(limit, MaxLimit)
		if page, err := strconv.Atoi(params[workspaceusecases.PageParam]); err == nil && page > 0 {
			query.Offset = min(page, math.MaxInt/query.Limit) * query.Limit
		}
	}

	state := workspaceusecases.ToFilterState([]workspacedomain.FilterFieldSpec{dateRangeFilter}, params)
	if timeRange, ok := state.TimeRange(DateRangeParam); ok {
		query.Window = timeRange.Window(now)
	}

	for key, value := range params {
		if _, reserved := reservedParams[key]; reserved || value == "" || value == AllValues {
			continue
		}
		query.Attributes[key] = value
	}

	return query
}

func (q RecordQuery) Matches(record shareddomain.Record) bool {
	if !q.Window.IsUnbounded() {
		createdAt, ok := record.Time(shareddomain.FieldCreatedAt)
		if !ok || !q.Window.Contains(createdAt) {
			return false
		}
	}

	for key, value := range q.Attributes {
		if record.String(key) != value {
			return false
		}
	}
	return true
}

// Page applies the query to records already in storage order.
func (q RecordQuery) Page(records []shareddomain.Record) shareddomain.PageResult {
	matched := make([]shareddomain.Record, 0, len(records))
	for _, record := range records {
		if q.Matches(record) {
			matched = append(matched, record)
		}
	}

	result := shareddomain.PageResult{TotalRecords: len(matched)}
	if q.Limit == 0 {
		result.Records = cloneAll(matched)
		return result
	}

	start := max(0, min(q.Offset, len(matched)))
	end := min(start+q.Limit, len(matched))
	result.Records = cloneAll(matched[start:end])
	return result
}

func cloneAll(records []shareddomain.Record) []shareddomain.Record {
	cloned := make([]shareddomain.Record, len(records))
	for i, record := range records {
		cloned[i] = record.Clone()
	}
	return cloned
}
