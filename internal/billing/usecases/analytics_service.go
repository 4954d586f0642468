package usecases

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"hubble-workspace/internal/billing/domain"
	"hubble-workspace/internal/infra/cache"
	"hubble-workspace/internal/infra/pubsub"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	"github.com/shopspring/decimal"
)

const analyticsKeyPrefix = "analytics:"

func NewAnalyticsService(repository RecordRepository, c cache.Cache, ttl time.Duration) *SimpleAnalyticsService {
	return &SimpleAnalyticsService{
		repository: repository,
		cache:      c,
		ttl:        ttl,
		now:        time.Now,
	}
}

var _ AnalyticsService = &SimpleAnalyticsService{}

type SimpleAnalyticsService struct {
	repository RecordRepository
	cache      cache.Cache
	ttl        time.Duration
	now        func() time.Time
}

// GetAnalytics returns the current year's figures, computing them at most
// once per TTL.
func (s *SimpleAnalyticsService) GetAnalytics(ctx context.Context) (domain.Analytics, error) {
	year := s.now().UTC().Year()
	analytics, err := cache.Load(ctx, s.cache, analyticsKey(year), s.ttl, func() (domain.Analytics, error) {
		return s.compute(ctx, year)
	})
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("getting analytics: %w", err)
	}
	return analytics, nil
}

func (s *SimpleAnalyticsService) Refresh(ctx context.Context) (domain.Analytics, error) {
	year := s.now().UTC().Year()
	analytics, err := s.compute(ctx, year)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("refreshing analytics: %w", err)
	}

	s.cache.Set(ctx, analyticsKey(year), analytics, s.ttl)
	slog.Debug("analytics refreshed", slog.Int("year", year))
	return analytics, nil
}

// HandleRecordEvent drops the cached figures when a record they are built
// from changes.
func (s *SimpleAnalyticsService) HandleRecordEvent(ctx context.Context, _ pubsub.Key, message pubsub.Message) error {
	event, ok := message.(shareddomain.RecordEvent)
	if !ok {
		return fmt.Errorf("unexpected record event %T", message)
	}

	switch event.Resource {
	case shareddomain.ResourceSubscriptions, shareddomain.ResourceInvoices, shareddomain.ResourcePlans:
		s.cache.Delete(ctx, analyticsKey(s.now().UTC().Year()))
		slog.Debug("analytics invalidated",
			slog.String("resource", event.Resource.String()),
			slog.String("identifier", event.Identifier.String()))
	}
	return nil
}

func (s *SimpleAnalyticsService) compute(ctx context.Context, year int) (domain.Analytics, error) {
	subscriptions, err := s.repository.All(ctx, shareddomain.ResourceSubscriptions)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("reading subscriptions: %w", err)
	}
	invoices, err := s.repository.All(ctx, shareddomain.ResourceInvoices)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("reading invoices: %w", err)
	}

	analytics := domain.NewAnalytics(year, s.now().UTC())
	perPlan := map[string][12]int{}
	totals := map[string]int{}

	for _, subscription := range subscriptions {
		month, ok := monthIn(subscription, shareddomain.FieldCreatedAt, year)
		if !ok {
			continue
		}
		analytics.SubscriberData[month]++

		plan, _ := subscription["plan"].(map[string]any)
		name, _ := plan["name"].(string)
		if name == "" {
			continue
		}
		counts := perPlan[name]
		counts[month]++
		perPlan[name] = counts
		totals[name]++
	}

	for _, invoice := range invoices {
		month, ok := monthIn(invoice, "postedOn", year)
		if !ok {
			continue
		}
		point := &analytics.RevenueData[month]
		point.BilledRevenue = point.BilledRevenue.Add(decimalOf(invoice["total"]))
		if invoice.String("status") == string(domain.InvoicePastDue) {
			point.RevenuePastDue = point.RevenuePastDue.Add(decimalOf(invoice["amountDue"]))
		}
	}

	for _, name := range topPlans(totals, domain.TopPlans) {
		for month, count := range perPlan[name] {
			analytics.PlanData[month].Plans[name] = count
		}
	}

	return analytics, nil
}

func analyticsKey(year int) string {
	return analyticsKeyPrefix + strconv.Itoa(year)
}

func monthIn(record shareddomain.Record, key string, year int) (int, bool) {
	at, ok := record.Time(key)
	if !ok || at.UTC().Year() != year {
		return 0, false
	}
	return int(at.UTC().Month()) - 1, true
}

// topPlans orders by subscription count, then by name.
func topPlans(totals map[string]int, n int) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(totals[b], totals[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return names[:min(n, len(names))]
}

func decimalOf(value any) decimal.Decimal {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		d, _ := decimal.NewFromString(v.String())
		return d
	case string:
		d, _ := decimal.NewFromString(v)
		return d
	default:
		return decimal.Zero
	}
}
