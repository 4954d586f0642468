package persistence_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hubble-workspace/internal/billing/persistence"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/sql"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func invoiceRecord(i int, status string) shareddomain.Record {
	return shareddomain.Record{
		shareddomain.FieldID:         fmt.Sprintf("id-%02d", i),
		shareddomain.FieldIdentifier: fmt.Sprintf("inv-%02d", i),
		"status":                     status,
		"total":                      float64(100 * i),
		"account":                    map[string]any{"identifier": "acc-1", "userName": "jdoe"},
		shareddomain.FieldCreatedAt:  base.AddDate(0, i, 0),
	}
}

func describeRecordRepository(name string, newRepository func() usecases.RecordRepository) bool {
	return ginkgo.Describe(name, func() {
		var (
			repository usecases.RecordRepository
			ctx        context.Context
		)

		ginkgo.BeforeEach(func() {
			repository = newRepository()
			ctx = context.Background()

			for i := 0; i < 6; i++ {
				status := "paid"
				if i%2 == 1 {
					status = "pastDue"
				}
				gomega.Expect(repository.Insert(ctx, shareddomain.ResourceInvoices, invoiceRecord(i, status))).To(gomega.Succeed())
			}
		})

		identifiers := func(result shareddomain.PageResult) []string {
			ids := make([]string, 0, len(result.Records))
			for _, record := range result.Records {
				ids = append(ids, record.Identifier().String())
			}
			return ids
		}

		ginkgo.It("pages in insertion order", func() {
			result, err := repository.Find(ctx, shareddomain.ResourceInvoices, usecases.RecordQuery{Offset: 2, Limit: 2})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.TotalRecords).To(gomega.Equal(6))
			gomega.Expect(identifiers(result)).To(gomega.Equal([]string{"inv-02", "inv-03"}))
		})

		ginkgo.It("returns everything without a limit", func() {
			result, err := repository.Find(ctx, shareddomain.ResourceInvoices, usecases.RecordQuery{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.Records).To(gomega.HaveLen(6))
		})

		ginkgo.It("filters by creation window", func() {
			query := usecases.RecordQuery{
				Limit:  10,
				Window: shareddomain.Window{From: base.AddDate(0, 2, 0), To: base.AddDate(0, 4, 0)},
			}
			result, err := repository.Find(ctx, shareddomain.ResourceInvoices, query)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.TotalRecords).To(gomega.Equal(3))
			gomega.Expect(identifiers(result)).To(gomega.Equal([]string{"inv-02", "inv-03", "inv-04"}))
		})

		ginkgo.It("filters by attribute before paging", func() {
			query := usecases.RecordQuery{Limit: 2, Offset: 2, Attributes: map[string]string{"status": "pastDue"}}
			result, err := repository.Find(ctx, shareddomain.ResourceInvoices, query)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.TotalRecords).To(gomega.Equal(3))
			gomega.Expect(identifiers(result)).To(gomega.Equal([]string{"inv-05"}))
		})

		ginkgo.It("keeps resources apart", func() {
			result, err := repository.Find(ctx, shareddomain.ResourcePlans, usecases.RecordQuery{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.TotalRecords).To(gomega.BeZero())
			gomega.Expect(result.Records).To(gomega.BeEmpty())
		})

		ginkgo.It("gets a record with its nested attributes", func() {
			record, err := repository.Get(ctx, shareddomain.ResourceInvoices, "inv-03")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.String(shareddomain.FieldID)).To(gomega.Equal("id-03"))
			gomega.Expect(record.String("status")).To(gomega.Equal("pastDue"))
			gomega.Expect(record["account"]).To(gomega.HaveKeyWithValue("userName", "jdoe"))

			createdAt, ok := record.Time(shareddomain.FieldCreatedAt)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(createdAt.Equal(base.AddDate(0, 3, 0))).To(gomega.BeTrue())
		})

		ginkgo.It("reports missing records", func() {
			_, err := repository.Get(ctx, shareddomain.ResourceInvoices, "inv-99")
			gomega.Expect(errors.Is(err, usecases.ErrRecordNotFound)).To(gomega.BeTrue())

			err = repository.Replace(ctx, shareddomain.ResourceInvoices, shareddomain.Record{"identifier": "inv-99"})
			gomega.Expect(errors.Is(err, usecases.ErrRecordNotFound)).To(gomega.BeTrue())
		})

		ginkgo.It("rejects a duplicate identifier", func() {
			duplicate := invoiceRecord(1, "paid")
			duplicate[shareddomain.FieldID] = "id-new"
			err := repository.Insert(ctx, shareddomain.ResourceInvoices, duplicate)
			gomega.Expect(errors.Is(err, usecases.ErrIdentifierTaken)).To(gomega.BeTrue())
		})

		ginkgo.It("replaces a record in place", func() {
			replacement := invoiceRecord(2, "voided")
			replacement["notes"] = "customer left"
			gomega.Expect(repository.Replace(ctx, shareddomain.ResourceInvoices, replacement)).To(gomega.Succeed())

			record, err := repository.Get(ctx, shareddomain.ResourceInvoices, "inv-02")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.String("status")).To(gomega.Equal("voided"))
			gomega.Expect(record.String("notes")).To(gomega.Equal("customer left"))

			all, err := repository.All(ctx, shareddomain.ResourceInvoices)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(6))
			gomega.Expect(all[2].Identifier()).To(gomega.Equal(shareddomain.ID("inv-02")))
		})

		ginkgo.It("hands out copies", func() {
			record, err := repository.Get(ctx, shareddomain.ResourceInvoices, "inv-00")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			record["status"] = "tampered"

			again, err := repository.Get(ctx, shareddomain.ResourceInvoices, "inv-00")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(again.String("status")).To(gomega.Equal("paid"))
		})
	})
}

var _ = describeRecordRepository("MemoryRecordRepository", func() usecases.RecordRepository {
	return persistence.NewMemoryRecordRepository()
})

var _ = describeRecordRepository("ORMRecordRepository", func() usecases.RecordRepository {
	orm, err := sql.NewMemoryORM()
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	ginkgo.DeferCleanup(orm.Close)

	repository, err := persistence.NewORMRecordRepository(orm)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return repository
})
