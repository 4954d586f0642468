package internal

import (
	"time"

	"hubble-workspace/internal/billing/domain"
)

type AnalyticsResponse struct {
	Year           int            `json:"year"`
	SubscriberData []int          `json:"subscriberData"`
	RevenueData    []RevenuePoint `json:"revenueData"`
	PlanData       []PlanPoint    `json:"planData"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}

type RevenuePoint struct {
	Month          string  `json:"month"`
	BilledRevenue  float64 `json:"billedRevenue"`
	RevenuePastDue float64 `json:"revenuePastDue"`
}

type PlanPoint struct {
	Month string         `json:"month"`
	Plans map[string]int `json:"plans"`
}

func ToAnalyticsResponse(analytics domain.Analytics) AnalyticsResponse {
	response := AnalyticsResponse{
		Year:           analytics.Year,
		SubscriberData: analytics.SubscriberData[:],
		RevenueData:    make([]RevenuePoint, len(analytics.RevenueData)),
		PlanData:       make([]PlanPoint, len(analytics.PlanData)),
		GeneratedAt:    analytics.GeneratedAt,
	}

	for i, point := range analytics.RevenueData {
		response.RevenueData[i] = RevenuePoint{
			Month:          point.Month,
			BilledRevenue:  point.BilledRevenue.InexactFloat64(),
			RevenuePastDue: point.RevenuePastDue.InexactFloat64(),
		}
	}
	for i, point := range analytics.PlanData {
		response.PlanData[i] = PlanPoint{Month: point.Month, Plans: point.Plans}
	}

	return response
}
