package usecases_test

import (
	"math"
	"time"

	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Filter engine", func() {
	var (
		defaultStart time.Time
		defaultEnd   time.Time
		fields       []domain.FilterFieldSpec
	)

	BeforeEach(func() {
		defaultStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		defaultEnd = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
		fields = []domain.FilterFieldSpec{
			{
				Identifier:      "date_range",
				Type:            domain.FieldTypeTimeRange,
				Title:           "Time Range",
				StartTitle:      "Start Date",
				StartIdentifier: "start_date",
				EndTitle:        "End Date",
				EndIdentifier:   "end_date",
				Options: []domain.Option{
					{Value: "all_time", Title: "All Time"},
					{Value: "last_3_months", Title: "Last 3 Months"},
					{Value: "custom", Title: "Custom"},
				},
				DefaultValue: domain.TimeRange{Option: "all_time", StartDate: defaultStart, EndDate: defaultEnd},
			},
			{
				Identifier:   "status",
				Type:         domain.FieldTypeSelect,
				Title:        "Status",
				Options:      []domain.Option{{Value: "paid", Title: "Paid"}, {Value: "pending", Title: "Pending"}},
				DefaultValue: domain.Scalar("paid"),
			},
		}
	})

	Context("ToFilterState", func() {
		It("uses the defaults when the parameters are absent", func() {
			state := usecases.ToFilterState(fields, map[string]string{})

			Expect(state["date_range"]).To(Equal(fields[0].DefaultValue))
			Expect(state["status"]).To(Equal(domain.Scalar("paid")))
		})

		It("ignores unknown keys", func() {
			state := usecases.ToFilterState(fields, map[string]string{"color": "red"})

			Expect(state).To(HaveLen(2))
			Expect(state).NotTo(HaveKey("color"))
		})

		It("rebuilds custom ranges from epoch milliseconds", func() {
			state := usecases.ToFilterState(fields, map[string]string{
				"date_range": "custom",
				"start_date": "1704067200000",
				"end_date":   "1719705600000",
			})

			timeRange, ok := state.TimeRange("date_range")
			Expect(ok).To(BeTrue())
			Expect(timeRange.Option).To(Equal("custom"))
			Expect(timeRange.StartDate.Equal(time.UnixMilli(1704067200000))).To(BeTrue())
			Expect(timeRange.EndDate.Equal(time.UnixMilli(1719705600000))).To(BeTrue())
			Expect(timeRange.Valid()).To(BeTrue())
		})

		It("fails soft on malformed dates", func() {
			state := usecases.ToFilterState(fields, map[string]string{
				"date_range": "custom",
				"start_date": "yesterday",
			})

			timeRange, _ := state.TimeRange("date_range")
			Expect(timeRange.StartDate.IsZero()).To(BeTrue())
			Expect(timeRange.EndDate.IsZero()).To(BeTrue())
			Expect(timeRange.Valid()).To(BeFalse())
		})

		It("keeps the default dates for relative options", func() {
			state := usecases.ToFilterState(fields, map[string]string{"date_range": "last_3_months"})

			timeRange, _ := state.TimeRange("date_range")
			Expect(timeRange).To(Equal(domain.TimeRange{Option: "last_3_months", StartDate: defaultStart, EndDate: defaultEnd}))
		})
	})

	Context("ToURLParams", func() {
		It("emits only the option for non custom ranges", func() {
			params := usecases.ToURLParams(fields, usecases.ToFilterState(fields, nil))

			Expect(params).To(Equal(map[string]string{"date_range": "all_time", "status": "paid"}))
		})

		It("emits the range bounds for custom ranges", func() {
			state := domain.FilterState{
				"date_range": domain.TimeRange{Option: "custom", StartDate: defaultStart, EndDate: defaultEnd},
				"status":     domain.Scalar("pending"),
			}

			params := usecases.ToURLParams(fields, state)

			Expect(params).To(Equal(map[string]string{
				"date_range": "custom",
				"start_date": "1704067200000",
				"end_date":   "1719705600000",
				"status":     "pending",
			}))
		})
	})

	DescribeTable("round trip",
		func(build func() domain.FilterState) {
			state := build()
			Expect(usecases.ToFilterState(fields, usecases.ToURLParams(fields, state)).Equal(state)).To(BeTrue())
		},
		Entry("defaults", func() domain.FilterState {
			return usecases.ToFilterState(fields, nil)
		}),
		Entry("relative option", func() domain.FilterState {
			state := usecases.ToFilterState(fields, nil)
			state["date_range"] = domain.TimeRange{Option: "last_3_months", StartDate: defaultStart, EndDate: defaultEnd}
			return state
		}),
		Entry("custom range truncated to milliseconds", func() domain.FilterState {
			state := usecases.ToFilterState(fields, nil)
			start := time.Now().Add(-48 * time.Hour).Truncate(time.Millisecond)
			state["date_range"] = domain.TimeRange{Option: "custom", StartDate: start, EndDate: start.Add(24 * time.Hour)}
			state["status"] = domain.Scalar("pending")
			return state
		}),
	)

	DescribeTable("ParsePageParams",
		func(raw map[string]string, expected usecases.PageParams) {
			Expect(usecases.ParsePageParams(raw, 20, []int{15, 20, 25})).To(Equal(expected))
		},
		Entry("defaults", map[string]string{}, usecases.PageParams{Page: 0, Limit: 20}),
		Entry("valid values", map[string]string{"page": "3", "limit": "25"}, usecases.PageParams{Page: 3, Limit: 25}),
		Entry("limit outside the options", map[string]string{"limit": "30"}, usecases.PageParams{Page: 0, Limit: 20}),
		Entry("negative page", map[string]string{"page": "-2"}, usecases.PageParams{Page: 0, Limit: 20}),
		Entry("garbage", map[string]string{"page": "two", "limit": "many"}, usecases.PageParams{Page: 0, Limit: 20}),
	)

	It("saturates the offset of an unreachable page", func() {
		params := usecases.ParsePageParams(map[string]string{"page": "4611686018427387904", "limit": "25"}, 20, []int{15, 20, 25})
		Expect(params.Offset()).To(Equal(math.MaxInt / 25 * 25))
		Expect(usecases.PageParams{Page: 3, Limit: 25}.Offset()).To(Equal(75))
	})
})
