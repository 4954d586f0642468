package domain

import (
	"errors"
	"fmt"
	"maps"
	"time"
)

const (
	FieldIdentifier = "identifier"
	FieldID         = "id"
	FieldCreatedAt  = "createdAt"
)

var ErrUnknownResource = errors.New("unknown resource")

type Resource string

const (
	ResourceAccounts      Resource = "accounts"
	ResourcePlans         Resource = "plans"
	ResourceSubscriptions Resource = "subscriptions"
	ResourceTransactions  Resource = "transactions"
	ResourceInvoices      Resource = "invoices"
)

var Resources = []Resource{
	ResourceAccounts,
	ResourcePlans,
	ResourceSubscriptions,
	ResourceTransactions,
	ResourceInvoices,
}

func ParseResource(value string) (Resource, error) {
	for _, r := range Resources {
		if string(r) == value {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, value)
}

func (r Resource) String() string {
	return string(r)
}

// Singular returns the resource name used in user facing messages.
func (r Resource) Singular() string {
	switch r {
	case ResourceAccounts:
		return "account"
	case ResourcePlans:
		return "plan"
	case ResourceSubscriptions:
		return "subscription"
	case ResourceTransactions:
		return "transaction"
	case ResourceInvoices:
		return "invoice"
	default:
		return string(r)
	}
}

// Record is one persisted entity. Attributes are opaque to everything but the
// views that render them.
type Record map[string]any

func (r Record) Identifier() ID {
	value, _ := r[FieldIdentifier].(string)
	return ID(value)
}

func (r Record) String(key string) string {
	switch value := r[key].(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// Time reads a time attribute stored either as time.Time or as an RFC 3339 string.
func (r Record) Time(key string) (time.Time, bool) {
	switch value := r[key].(type) {
	case time.Time:
		return value, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

func (r Record) Clone() Record {
	return maps.Clone(r)
}

type PageResult struct {
	Records      []Record `json:"records"`
	TotalRecords int      `json:"totalRecords"`
}
