package domain

import (
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	Identifier    shareddomain.ID
	ReferenceID   string
	Subscription  SubscriptionRef
	Comments      string
	Amount        decimal.Decimal
	Tax           decimal.Decimal
	Action        TransactionAction
	PaymentMethod PaymentMethod
	Refundable    bool
	CreatedAt     time.Time
}

func (t Transaction) Record() shareddomain.Record {
	return shareddomain.Record{
		shareddomain.FieldIdentifier: t.Identifier.String(),
		"referenceId":                t.ReferenceID,
		"subscription":               t.Subscription.Record(),
		"comments":                   t.Comments,
		"amount":                     t.Amount.InexactFloat64(),
		"tax":                        t.Tax.InexactFloat64(),
		"action":                     string(t.Action),
		"paymentMethod":              string(t.PaymentMethod),
		"refundable":                 t.Refundable,
		shareddomain.FieldCreatedAt:  t.CreatedAt,
	}
}
