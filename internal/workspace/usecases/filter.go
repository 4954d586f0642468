package usecases

import (
	"math"
	"slices"
	"strconv"
	"time"

	"hubble-workspace/internal/workspace/domain"
)

const (
	PageParam  = "page"
	LimitParam = "limit"
)

// ToFilterState reads the flat URL parameters into typed filter values. Keys
// that no field declares are ignored and malformed dates never fail the parse.
func ToFilterState(fields []domain.FilterFieldSpec, raw map[string]string) domain.FilterState {
	state := make(domain.FilterState, len(fields))

	for _, field := range fields {
		value, ok := raw[field.Identifier]
		if !ok {
			state[field.Identifier] = field.DefaultValue
			continue
		}

		if field.Type != domain.FieldTypeTimeRange {
			state[field.Identifier] = domain.Scalar(value)
			continue
		}

		timeRange := domain.TimeRange{Option: value}
		if value == domain.TimeRangeCustom {
			timeRange.StartDate = parseMillis(raw[field.StartIdentifier])
			timeRange.EndDate = parseMillis(raw[field.EndIdentifier])
		} else if def, ok := field.DefaultValue.(domain.TimeRange); ok {
			timeRange.StartDate = def.StartDate
			timeRange.EndDate = def.EndDate
		}
		state[field.Identifier] = timeRange
	}

	return state
}

// ToURLParams is the inverse of ToFilterState.
func ToURLParams(fields []domain.FilterFieldSpec, state domain.FilterState) map[string]string {
	params := make(map[string]string, len(fields))

	for _, field := range fields {
		value, ok := state[field.Identifier]
		if !ok || value == nil {
			value = field.DefaultValue
		}

		switch v := value.(type) {
		case domain.Scalar:
			params[field.Identifier] = string(v)
		case domain.TimeRange:
			params[field.Identifier] = v.Option
			if v.Option != domain.TimeRangeCustom {
				continue
			}
			if !v.StartDate.IsZero() {
				params[field.StartIdentifier] = formatMillis(v.StartDate)
			}
			if !v.EndDate.IsZero() {
				params[field.EndIdentifier] = formatMillis(v.EndDate)
			}
		}
	}

	return params
}

func parseMillis(value string) time.Time {
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(millis).UTC()
}

func formatMillis(value time.Time) string {
	return strconv.FormatInt(value.UnixMilli(), 10)
}

type PageParams struct {
	Page  int
	Limit int
}

// Offset saturates instead of overflowing for pages no list can reach.
func (p PageParams) Offset() int {
	if p.Limit > 0 && p.Page > math.MaxInt/p.Limit {
		return math.MaxInt / p.Limit * p.Limit
	}
	return p.Page * p.Limit
}

// ParsePageParams falls back to page 0 and defaultLimit when the raw values are
// missing, malformed or outside the allowed limits.
func ParsePageParams(raw map[string]string, defaultLimit int, limits []int) PageParams {
	params := PageParams{Page: 0, Limit: defaultLimit}

	if page, err := strconv.Atoi(raw[PageParam]); err == nil && page >= 0 {
		params.Page = page
	}

	if limit, err := strconv.Atoi(raw[LimitParam]); err == nil && slices.Contains(limits, limit) {
		params.Limit = limit
	}

	return params
}

func (p PageParams) ToURLParams(params map[string]string) map[string]string {
	if params == nil {
		params = make(map[string]string, 2)
	}
	params[PageParam] = strconv.Itoa(p.Page)
	params[LimitParam] = strconv.Itoa(p.Limit)
	return params
}
