package domain_test

import (
	"time"

	"hubble-workspace/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resource", func() {
	It("parses every known resource", func() {
		for _, resource := range domain.Resources {
			parsed, err := domain.ParseResource(resource.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(resource))
		}
	})

	It("rejects unknown resources", func() {
		_, err := domain.ParseResource("coupons")
		Expect(err).To(MatchError(domain.ErrUnknownResource))
	})

	It("names resources in the singular", func() {
		Expect(domain.ResourceInvoices.Singular()).To(Equal("invoice"))
		Expect(domain.ResourceAccounts.Singular()).To(Equal("account"))
	})
})

var _ = Describe("Record", func() {
	created := time.Date(2024, time.March, 9, 8, 30, 0, 0, time.UTC)

	It("reads the identifier", func() {
		Expect(domain.Record{"identifier": "gold"}.Identifier()).To(Equal(domain.ID("gold")))
		Expect(domain.Record{"identifier": 7}.Identifier()).To(BeEmpty())
	})

	It("reads times stored as values or RFC 3339 strings", func() {
		value, ok := domain.Record{"createdAt": created}.Time("createdAt")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(created))

		value, ok = domain.Record{"createdAt": "2024-03-09T08:30:00Z"}.Time("createdAt")
		Expect(ok).To(BeTrue())
		Expect(value.Equal(created)).To(BeTrue())

		_, ok = domain.Record{"createdAt": "yesterday"}.Time("createdAt")
		Expect(ok).To(BeFalse())
	})

	It("renders attributes as strings", func() {
		record := domain.Record{"name": "Gold", "price": 120, "note": nil}
		Expect(record.String("name")).To(Equal("Gold"))
		Expect(record.String("price")).To(Equal("120"))
		Expect(record.String("note")).To(BeEmpty())
		Expect(record.String("missing")).To(BeEmpty())
	})

	It("clones without sharing the top level map", func() {
		record := domain.Record{"name": "Gold"}
		clone := record.Clone()
		clone["name"] = "Silver"
		Expect(record["name"]).To(Equal("Gold"))
	})
})

var _ = Describe("Window", func() {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	It("contains times between its bounds inclusively", func() {
		window := domain.Window{From: from, To: to}
		Expect(window.Contains(from)).To(BeTrue())
		Expect(window.Contains(to)).To(BeTrue())
		Expect(window.Contains(from.AddDate(0, 1, 0))).To(BeTrue())
		Expect(window.Contains(to.Add(time.Second))).To(BeFalse())
		Expect(window.IsUnbounded()).To(BeFalse())
	})

	It("treats zero bounds as open", func() {
		Expect(domain.Window{}.IsUnbounded()).To(BeTrue())
		Expect(domain.Window{From: from}.Contains(to.AddDate(10, 0, 0))).To(BeTrue())
	})
})
