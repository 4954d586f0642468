package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

const (
	TimeRangeCustom  = "custom"
	TimeRangeAllTime = "all_time"
)

var lastMonthsPattern = regexp.MustCompile(`^last_(\d+)_months$`)

// FilterValue is either a Scalar or a TimeRange.
type FilterValue interface {
	Equal(other FilterValue) bool
	isFilterValue()
}

type Scalar string

func (Scalar) isFilterValue() {}

func (s Scalar) Equal(other FilterValue) bool {
	o, ok := other.(Scalar)
	return ok && o == s
}

type TimeRange struct {
	Option    string
	StartDate time.Time
	EndDate   time.Time
}

func (TimeRange) isFilterValue() {}

func (r TimeRange) Equal(other FilterValue) bool {
	o, ok := other.(TimeRange)
	return ok && o.Option == r.Option && o.StartDate.Equal(r.StartDate) && o.EndDate.Equal(r.EndDate)
}

// Valid reports whether a custom range carries both dates.
func (r TimeRange) Valid() bool {
	if r.Option != TimeRangeCustom {
		return true
	}
	return !r.StartDate.IsZero() && !r.EndDate.IsZero()
}

// Window resolves the range against now. Unknown options and invalid dates
// leave the affected bound open.
func (r TimeRange) Window(now time.Time) shareddomain.Window {
	switch r.Option {
	case TimeRangeCustom:
		return shareddomain.Window{From: r.StartDate, To: r.EndDate}
	case TimeRangeAllTime:
		return shareddomain.Window{}
	}

	match := lastMonthsPattern.FindStringSubmatch(r.Option)
	if match == nil {
		return shareddomain.Window{}
	}
	months, err := strconv.Atoi(match[1])
	if err != nil {
		return shareddomain.Window{}
	}

	return shareddomain.Window{From: now.AddDate(0, -months, 0), To: now}
}

type FilterFieldSpec struct {
	Identifier      string
	Type            FieldType
	Title           string
	Options         []Option
	DefaultValue    FilterValue
	StartTitle      string
	StartIdentifier string
	EndTitle        string
	EndIdentifier   string
}

func (f FilterFieldSpec) Validate() error {
	if f.Identifier == "" {
		return ErrIdentifierRequired
	}
	if !f.Type.Valid() {
		return fmt.Errorf("filter %s: %w", f.Identifier, ErrUnknownFieldType)
	}

	if f.Type == FieldTypeTimeRange {
		if f.StartIdentifier == "" || f.EndIdentifier == "" {
			return fmt.Errorf("filter %s: %w", f.Identifier, ErrTimeRangeKeysRequired)
		}
		if _, ok := f.DefaultValue.(TimeRange); !ok {
			return fmt.Errorf("filter %s: %w", f.Identifier, ErrInvalidFilterDefault)
		}
		return nil
	}

	if _, ok := f.DefaultValue.(Scalar); !ok {
		return fmt.Errorf("filter %s: %w", f.Identifier, ErrInvalidFilterDefault)
	}
	return nil
}

type FilterState map[string]FilterValue

func (s FilterState) Equal(other FilterState) bool {
	if len(s) != len(other) {
		return false
	}
	for key, value := range s {
		o, ok := other[key]
		if !ok || !value.Equal(o) {
			return false
		}
	}
	return true
}

// TimeRange returns the value under identifier when it holds a time range.
func (s FilterState) TimeRange(identifier string) (TimeRange, bool) {
	value, ok := s[identifier].(TimeRange)
	return value, ok
}
