package domain

import (
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

type Plan struct {
	Identifier           shareddomain.ID
	Name                 string
	Code                 string
	Description          string
	BillingPeriod        int
	BillingPeriodUnit    PeriodUnit
	PricePerBillingCycle decimal.Decimal
	SetupFee             decimal.Decimal
	TrialPeriod          int
	TrialPeriodUnit      PeriodUnit
	Starts               time.Time
	Term                 int
	TermUnit             PeriodUnit
	Renews               bool
	CreatedAt            time.Time
}

func (p Plan) Ref() PlanRef {
	return PlanRef{Identifier: p.Identifier, Name: p.Name}
}

func (p Plan) Record() shareddomain.Record {
	return shareddomain.Record{
		shareddomain.FieldIdentifier: p.Identifier.String(),
		"name":                       p.Name,
		"code":                       p.Code,
		"description":                p.Description,
		"billingPeriod":              p.BillingPeriod,
		"billingPeriodUnit":          string(p.BillingPeriodUnit),
		"pricePerBillingCycle":       p.PricePerBillingCycle.InexactFloat64(),
		"setupFee":                   p.SetupFee.InexactFloat64(),
		"trialPeriod":                p.TrialPeriod,
		"trialPeriodUnit":            string(p.TrialPeriodUnit),
		"starts":                     p.Starts,
		"term":                       p.Term,
		"termUnit":                   string(p.TermUnit),
		"renews":                     p.Renews,
		shareddomain.FieldCreatedAt:  p.CreatedAt,
	}
}

// PlanRef is the part of a plan embedded in the records that point at it.
type PlanRef struct {
	Identifier shareddomain.ID
	Name       string
}

func (r PlanRef) Record() map[string]any {
	return map[string]any{shareddomain.FieldIdentifier: r.Identifier.String(), "name": r.Name}
}
