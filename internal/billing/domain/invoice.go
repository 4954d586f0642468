package domain

import (
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

const (
	MinInvoiceNumber = 1000
	MaxInvoiceItems  = 10
)

type Invoice struct {
	Identifier         shareddomain.ID
	InvoiceNumber      int
	PostedOn           time.Time
	DueOn              time.Time
	Account            AccountRef
	Status             InvoiceStatus
	Total              decimal.Decimal
	Subtotal           decimal.Decimal
	Paid               decimal.Decimal
	AmountDue          decimal.Decimal
	Origin             InvoiceOrigin
	Subscription       SubscriptionRef
	Notes              string
	TermsAndConditions string
	Items              []InvoiceItem
	CreatedAt          time.Time
}

type InvoiceItem struct {
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Quantity    int
	Price       decimal.Decimal
	Subtotal    decimal.Decimal
	AmountDue   decimal.Decimal
}

func (i InvoiceItem) Record() map[string]any {
	return map[string]any{
		"startDate":   i.StartDate,
		"endDate":     i.EndDate,
		"description": i.Description,
		"quantity":    i.Quantity,
		"price":       i.Price.InexactFloat64(),
		"subtotal":    i.Subtotal.InexactFloat64(),
		"amountDue":   i.AmountDue.InexactFloat64(),
	}
}

func (i Invoice) Record() shareddomain.Record {
	items := make([]any, 0, len(i.Items))
	for _, item := range i.Items {
		items = append(items, item.Record())
	}

	return shareddomain.Record{
		shareddomain.FieldIdentifier: i.Identifier.String(),
		"invoiceNumber":              i.InvoiceNumber,
		"postedOn":                   i.PostedOn,
		"dueOn":                      i.DueOn,
		"account":                    i.Account.Record(),
		"status":                     string(i.Status),
		"total":                      i.Total.InexactFloat64(),
		"subtotal":                   i.Subtotal.InexactFloat64(),
		"paid":                       i.Paid.InexactFloat64(),
		"amountDue":                  i.AmountDue.InexactFloat64(),
		"origin":                     string(i.Origin),
		"subscription":               i.Subscription.Record(),
		"notes":                      i.Notes,
		"termsAndConditions":         i.TermsAndConditions,
		"items":                      items,
		shareddomain.FieldCreatedAt:  i.CreatedAt,
	}
}
