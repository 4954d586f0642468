package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const TopPlans = 4

var Months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Analytics aggregates one calendar year, indexed by month.
type Analytics struct {
	Year           int
	SubscriberData [12]int
	RevenueData    [12]RevenuePoint
	PlanData       [12]PlanPoint
	GeneratedAt    time.Time
}

type RevenuePoint struct {
	Month          string
	BilledRevenue  decimal.Decimal
	RevenuePastDue decimal.Decimal
}

type PlanPoint struct {
	Month string
	Plans map[string]int
}

func NewAnalytics(year int, generatedAt time.Time) Analytics {
	analytics := Analytics{Year: year, GeneratedAt: generatedAt}
	for i, month := range Months {
		analytics.RevenueData[i] = RevenuePoint{Month: month, BilledRevenue: decimal.Zero, RevenuePastDue: decimal.Zero}
		analytics.PlanData[i] = PlanPoint{Month: month, Plans: map[string]int{}}
	}
	return analytics
}
