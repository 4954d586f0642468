package usecases_test

import (
	"context"
	"errors"
	"time"

	"hubble-workspace/internal/billing/persistence"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/pubsub"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	mockusecases "hubble-workspace/test/unit/doubles/billing/usecases"
	mockpubsub "hubble-workspace/test/unit/doubles/infra/pubsub"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

func recordEvent(resource shareddomain.Resource, identifier shareddomain.ID, action shareddomain.RecordAction) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		event, ok := x.(shareddomain.RecordEvent)
		return ok &&
			event.ID != "" &&
			event.Resource == resource &&
			event.Identifier == identifier &&
			event.Action == action
	})
}

var _ = Describe("RecordService", func() {
	var (
		ctrl       *gomock.Controller
		publisher  *mockpubsub.MockPublisher
		repository *persistence.MemoryRecordRepository
		service    *usecases.SimpleRecordService
		ctx        context.Context
		now        time.Time
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		publisher = mockpubsub.NewMockPublisher(ctrl)
		repository = persistence.NewMemoryRecordRepository()
		service = usecases.NewRecordService(repository, publisher)
		now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		usecases.SetRecordServiceClock(service, func() time.Time { return now })
		ctx = context.Background()

		Expect(repository.Insert(ctx, shareddomain.ResourcePlans, shareddomain.Record{
			"id": "p-id", "identifier": "gold", "name": "Gold", "createdAt": now.AddDate(0, -1, 0),
		})).To(Succeed())
		Expect(repository.Insert(ctx, shareddomain.ResourceAccounts, shareddomain.Record{
			"id": "a-id", "identifier": "acc-1", "userName": "jdoe", "createdAt": now.AddDate(0, -1, 0),
		})).To(Succeed())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Create", func() {
		It("assigns an id, an identifier and a creation time", func() {
			publisher.EXPECT().
				Publish(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key pubsub.Key, message pubsub.Message) error {
					event := message.(shareddomain.RecordEvent)
					Expect(key).To(Equal(pubsub.Key(event.Identifier)))
					Expect(event.Action).To(Equal(shareddomain.RecordCreated))
					Expect(event.OccurredAt).To(Equal(now))
					return nil
				})

			created, err := service.Create(ctx, shareddomain.ResourceTransactions, shareddomain.Record{
				"referenceId": "REF-1",
				"amount":      12.5,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.String(shareddomain.FieldID)).NotTo(BeEmpty())
			Expect(created.Identifier()).NotTo(BeEmpty())
			Expect(created.String(shareddomain.FieldID)).NotTo(Equal(created.Identifier().String()))
			Expect(created["createdAt"]).To(Equal(now))

			stored, err := service.Get(ctx, shareddomain.ResourceTransactions, created.Identifier())
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(Equal(created))
		})

		It("keeps a provided identifier and rejects reusing it", func() {
			publisher.EXPECT().Publish(gomock.Any(), pubsub.Key("REF-1"), recordEvent(shareddomain.ResourceTransactions, "REF-1", shareddomain.RecordCreated))

			created, err := service.Create(ctx, shareddomain.ResourceTransactions, shareddomain.Record{"identifier": "REF-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Identifier()).To(Equal(shareddomain.ID("REF-1")))

			_, err = service.Create(ctx, shareddomain.ResourceTransactions, shareddomain.Record{"identifier": "REF-1"})
			Expect(errors.Is(err, usecases.ErrIdentifierTaken)).To(BeTrue())
		})

		It("appends invoices to the invoice collection", func() {
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

			for _, number := range []int{1001, 1002} {
				_, err := service.Create(ctx, shareddomain.ResourceInvoices, shareddomain.Record{"invoiceNumber": number})
				Expect(err).NotTo(HaveOccurred())
			}

			result, err := service.List(ctx, shareddomain.ResourceInvoices, usecases.RecordQuery{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.TotalRecords).To(Equal(2))
			Expect(result.Records[0]["invoiceNumber"]).To(Equal(1001))
			Expect(result.Records[1]["invoiceNumber"]).To(Equal(1002))
		})

		It("resolves references to their current names", func() {
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any())

			created, err := service.Create(ctx, shareddomain.ResourceSubscriptions, shareddomain.Record{
				"plan":     "gold",
				"account":  map[string]any{"identifier": "acc-1", "userName": "stale"},
				"quantity": 2,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created["plan"]).To(Equal(map[string]any{"identifier": "gold", "name": "Gold"}))
			Expect(created["account"]).To(Equal(map[string]any{"identifier": "acc-1", "userName": "jdoe"}))
		})

		It("rejects references to missing records", func() {
			_, err := service.Create(ctx, shareddomain.ResourceSubscriptions, shareddomain.Record{"plan": "platinum"})
			Expect(errors.Is(err, usecases.ErrInvalidReference)).To(BeTrue())

			result, err := service.List(ctx, shareddomain.ResourceSubscriptions, usecases.RecordQuery{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.TotalRecords).To(BeZero())
		})

		It("keeps the record when the event cannot be published", func() {
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

			created, err := service.Create(ctx, shareddomain.ResourceAccounts, shareddomain.Record{"identifier": "acc-2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Identifier()).To(Equal(shareddomain.ID("acc-2")))
		})
	})

	Context("Update", func() {
		var original shareddomain.Record

		BeforeEach(func() {
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), recordEvent(shareddomain.ResourceTransactions, "REF-1", shareddomain.RecordCreated))
			var err error
			original, err = service.Create(ctx, shareddomain.ResourceTransactions, shareddomain.Record{
				"identifier": "REF-1",
				"comments":   "first",
				"amount":     10.0,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("replaces the record wholesale", func() {
			publisher.EXPECT().Publish(gomock.Any(), pubsub.Key("REF-1"), recordEvent(shareddomain.ResourceTransactions, "REF-1", shareddomain.RecordUpdated))

			updated, err := service.Update(ctx, shareddomain.ResourceTransactions, "REF-1", shareddomain.Record{"amount": 20.0})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated).NotTo(HaveKey("comments"))
			Expect(updated["amount"]).To(Equal(20.0))
			Expect(updated[shareddomain.FieldID]).To(Equal(original[shareddomain.FieldID]))
			Expect(updated["createdAt"]).To(Equal(original["createdAt"]))

			stored, err := service.Get(ctx, shareddomain.ResourceTransactions, "REF-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(Equal(updated))
		})

		It("rejects a changed identifier", func() {
			_, err := service.Update(ctx, shareddomain.ResourceTransactions, "REF-1", shareddomain.Record{"identifier": "REF-2"})
			Expect(errors.Is(err, usecases.ErrIdentifierImmutable)).To(BeTrue())

			stored, err := service.Get(ctx, shareddomain.ResourceTransactions, "REF-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.String("comments")).To(Equal("first"))
		})

		It("reports missing records", func() {
			_, err := service.Update(ctx, shareddomain.ResourceTransactions, "REF-9", shareddomain.Record{})
			Expect(errors.Is(err, usecases.ErrRecordNotFound)).To(BeTrue())
		})
	})

	Context("List", func() {
		It("wraps repository failures", func() {
			failing := mockusecases.NewMockRecordRepository(ctrl)
			failing.EXPECT().Find(gomock.Any(), shareddomain.ResourcePlans, gomock.Any()).Return(shareddomain.PageResult{}, errors.New("disk full"))

			_, err := usecases.NewRecordService(failing, publisher).List(ctx, shareddomain.ResourcePlans, usecases.RecordQuery{})
			Expect(err).To(MatchError(ContainSubstring("listing plans")))
		})
	})
})
