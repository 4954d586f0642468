package domain

import (
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

const QuantityTypeUnits = "units"

// Subscription copies the billing terms of its plan at creation, later plan
// edits do not reach existing subscriptions.
type Subscription struct {
	Identifier             shareddomain.ID
	Plan                   PlanRef
	Account                AccountRef
	Quantity               int
	QuantityType           string
	TotalBillingCycles     int
	RemainingBillingCycles int
	TrialStart             time.Time
	TrialEnd               time.Time
	CollectionMethod       CollectionMethod
	BillingPeriod          int
	BillingPeriodUnit      PeriodUnit
	SetupFee               float64
	TrialPeriod            int
	TrialPeriodUnit        PeriodUnit
	Term                   int
	TermUnit               PeriodUnit
	Renews                 bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func NewSubscription(identifier shareddomain.ID, plan Plan, account Account) Subscription {
	return Subscription{
		Identifier:        identifier,
		Plan:              plan.Ref(),
		Account:           account.Ref(),
		QuantityType:      QuantityTypeUnits,
		CollectionMethod:  CollectionAutomatic,
		BillingPeriod:     plan.BillingPeriod,
		BillingPeriodUnit: plan.BillingPeriodUnit,
		SetupFee:          plan.SetupFee.InexactFloat64(),
		TrialPeriod:       plan.TrialPeriod,
		TrialPeriodUnit:   plan.TrialPeriodUnit,
		Term:              plan.Term,
		TermUnit:          plan.TermUnit,
		Renews:            plan.Renews,
	}
}

func (s Subscription) Ref() SubscriptionRef {
	return SubscriptionRef{Identifier: s.Identifier, Plan: s.Plan}
}

func (s Subscription) Record() shareddomain.Record {
	return shareddomain.Record{
		shareddomain.FieldIdentifier: s.Identifier.String(),
		"plan":                       s.Plan.Record(),
		"account":                    s.Account.Record(),
		"quantity":                   s.Quantity,
		"quantityType":               s.QuantityType,
		"totalBillingCycles":         s.TotalBillingCycles,
		"remainingBillingCycles":     s.RemainingBillingCycles,
		"trialStart":                 s.TrialStart,
		"trialEnd":                   s.TrialEnd,
		"collectionMethod":           string(s.CollectionMethod),
		"billingPeriod":              s.BillingPeriod,
		"billingPeriodUnit":          string(s.BillingPeriodUnit),
		"setupFee":                   s.SetupFee,
		"trialPeriod":                s.TrialPeriod,
		"trialPeriodUnit":            string(s.TrialPeriodUnit),
		"term":                       s.Term,
		"termUnit":                   string(s.TermUnit),
		"renews":                     s.Renews,
		shareddomain.FieldCreatedAt:  s.CreatedAt,
		"updatedAt":                  s.UpdatedAt,
	}
}

type SubscriptionRef struct {
	Identifier shareddomain.ID
	Plan       PlanRef
}

func (r SubscriptionRef) Record() map[string]any {
	return map[string]any{shareddomain.FieldIdentifier: r.Identifier.String(), "plan": r.Plan.Record()}
}
