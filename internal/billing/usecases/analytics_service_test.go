package usecases_test

import (
	"context"
	"fmt"
	"time"

	"hubble-workspace/internal/billing/persistence"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/cache"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AnalyticsService", func() {
	var (
		repository *persistence.MemoryRecordRepository
		store      *cache.RistrettoCache
		service    *usecases.SimpleAnalyticsService
		ctx        context.Context
		now        time.Time
		seq        int
	)

	subscribe := func(plan string, createdAt time.Time) {
		seq++
		Expect(repository.Insert(ctx, shareddomain.ResourceSubscriptions, shareddomain.Record{
			"identifier": fmt.Sprintf("sub-%d", seq),
			"plan":       map[string]any{"identifier": plan, "name": plan},
			"createdAt":  createdAt,
		})).To(Succeed())
	}

	invoice := func(status string, total, due float64, postedOn time.Time) {
		seq++
		Expect(repository.Insert(ctx, shareddomain.ResourceInvoices, shareddomain.Record{
			"identifier": fmt.Sprintf("inv-%d", seq),
			"status":     status,
			"total":      total,
			"amountDue":  due,
			"postedOn":   postedOn.Format(time.RFC3339),
		})).To(Succeed())
	}

	month := func(m time.Month) time.Time {
		return time.Date(2024, m, 10, 0, 0, 0, 0, time.UTC)
	}

	BeforeEach(func() {
		var err error
		store, err = cache.New(cache.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(store.Close)

		repository = persistence.NewMemoryRecordRepository()
		service = usecases.NewAnalyticsService(repository, store, time.Hour)
		now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		usecases.SetAnalyticsClock(service, func() time.Time { return now })
		ctx = context.Background()
		seq = 0

		for _, plan := range []string{"Gold", "Gold", "Gold", "Silver", "Silver", "Bronze", "Bronze", "Platinum", "Basic"} {
			subscribe(plan, month(time.March))
		}
		subscribe("Gold", month(time.May))
		subscribe("Basic", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))

		invoice("paid", 100.10, 0, month(time.January))
		invoice("pastDue", 50, 20.05, month(time.January))
		invoice("pastDue", 10, 10, month(time.April))
		invoice("paid", 999, 0, time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC))
	})

	It("counts subscribers per month of the current year", func() {
		analytics, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(analytics.Year).To(Equal(2024))
		Expect(analytics.SubscriberData[time.March-1]).To(Equal(9))
		Expect(analytics.SubscriberData[time.May-1]).To(Equal(1))
		Expect(analytics.SubscriberData[time.December-1]).To(BeZero())
	})

	It("sums billed and past due revenue per posting month", func() {
		analytics, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())

		january := analytics.RevenueData[0]
		Expect(january.Month).To(Equal("Jan"))
		Expect(january.BilledRevenue.String()).To(Equal("150.1"))
		Expect(january.RevenuePastDue.String()).To(Equal("20.05"))
		Expect(analytics.RevenueData[3].BilledRevenue.String()).To(Equal("10"))
		Expect(analytics.RevenueData[3].RevenuePastDue.String()).To(Equal("10"))
	})

	It("tracks the four most subscribed plans", func() {
		analytics, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())

		march := analytics.PlanData[time.March-1]
		Expect(march.Month).To(Equal("Mar"))
		Expect(march.Plans).To(Equal(map[string]int{"Gold": 3, "Silver": 2, "Bronze": 2, "Basic": 1}))
		Expect(analytics.PlanData[time.May-1].Plans).To(Equal(map[string]int{"Gold": 1, "Silver": 0, "Bronze": 0, "Basic": 0}))
	})

	It("serves cached figures until a relevant record changes", func() {
		first, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())

		subscribe("Gold", month(time.June))
		cached, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(cached.SubscriberData).To(Equal(first.SubscriberData))

		event := shareddomain.RecordEvent{Resource: shareddomain.ResourceAccounts, Identifier: "acc-1", Action: shareddomain.RecordCreated}
		Expect(service.HandleRecordEvent(ctx, "acc-1", event)).To(Succeed())
		stillCached, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(stillCached.SubscriberData[time.June-1]).To(BeZero())

		event = shareddomain.RecordEvent{Resource: shareddomain.ResourceSubscriptions, Identifier: "sub-x", Action: shareddomain.RecordCreated}
		Expect(service.HandleRecordEvent(ctx, "sub-x", event)).To(Succeed())
		fresh, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(fresh.SubscriberData[time.June-1]).To(Equal(1))
	})

	It("replaces the cached figures on refresh", func() {
		_, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())

		invoice("paid", 5, 0, month(time.June))
		refreshed, err := service.Refresh(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(refreshed.RevenueData[time.June-1].BilledRevenue.String()).To(Equal("5"))

		analytics, err := service.GetAnalytics(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(analytics.RevenueData[time.June-1].BilledRevenue.String()).To(Equal("5"))
	})

	It("rejects messages that are not record events", func() {
		Expect(service.HandleRecordEvent(ctx, "key", "garbage")).NotTo(Succeed())
	})
})
