package catalog

import (
	"fmt"
	"strings"
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/catalog/internal"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/shopspring/decimal"
)

const (
	FormatText     = ""
	FormatCurrency = "currency"
	FormatPeriod   = "period"
	FormatDate     = "date"

	Currency = "INR"
)

type cellFormat func(row shareddomain.Record, header internal.Header) string

var cellFormats = map[string]cellFormat{
	FormatText:     formatText,
	FormatCurrency: formatCurrency,
	FormatPeriod:   formatPeriod,
	FormatDate:     formatDate,
}

func newCellFormatter(headers []internal.Header) (usecases.CellFormatter, error) {
	byID := make(map[string]internal.Header, len(headers))
	for _, h := range headers {
		if _, ok := cellFormats[h.Format]; !ok {
			return nil, fmt.Errorf("header %s: unknown format %q", h.ID, h.Format)
		}
		byID[h.ID] = h
	}

	return func(row shareddomain.Record, headerID string) string {
		h, ok := byID[headerID]
		if !ok {
			return row.String(headerID)
		}
		return cellFormats[h.Format](row, h)
	}, nil
}

// Lookup resolves a dotted attribute path such as plan.name.
func Lookup(row shareddomain.Record, path string) any {
	var current any = map[string]any(row)
	for _, part := range strings.Split(path, ".") {
		switch m := current.(type) {
		case map[string]any:
			current = m[part]
		case shareddomain.Record:
			current = m[part]
		default:
			return nil
		}
	}
	return current
}

func formatText(row shareddomain.Record, header internal.Header) string {
	switch v := Lookup(row, header.Key()).(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}

func formatCurrency(row shareddomain.Record, header internal.Header) string {
	amount, ok := toDecimal(Lookup(row, header.Key()))
	if !ok {
		return ""
	}
	return amount.String() + " " + Currency
}

func formatPeriod(row shareddomain.Record, header internal.Header) string {
	value := formatText(row, header)
	if value == "" {
		return ""
	}
	unit := formatText(row, internal.Header{ID: header.ID, Attribute: header.Unit})
	return strings.TrimSpace(value + " " + unit)
}

func formatDate(row shareddomain.Record, header internal.Header) string {
	switch v := Lookup(row, header.Key()).(type) {
	case time.Time:
		return v.Format(time.DateOnly)
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return v
		}
		return t.Format(time.DateOnly)
	default:
		return ""
	}
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}
