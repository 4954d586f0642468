package usecases_test

import (
	"context"
	"errors"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	mockusecases "hubble-workspace/test/unit/doubles/workspace/usecases"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FormService", func() {
	var (
		ctrl     *gomock.Controller
		catalog  *mockusecases.MockCatalog
		records  *mockusecases.MockRecordService
		notifier *mockusecases.MockNotifier
		service  usecases.FormService
		spec     usecases.FormSpec
		ctx      context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		catalog = mockusecases.NewMockCatalog(ctrl)
		records = mockusecases.NewMockRecordService(ctrl)
		notifier = mockusecases.NewMockNotifier(ctrl)
		service = usecases.NewFormService(catalog, records, notifier)
		ctx = context.Background()

		spec = usecases.FormSpec{
			Name:     "transaction",
			Title:    "New Transaction",
			Resource: shareddomain.ResourceTransactions,
			Groups:   transactionGroups(),
		}
		catalog.EXPECT().Form("transaction").Return(spec, nil).AnyTimes()
	})

	Context("SubmitForm", func() {
		When("the values are valid", func() {
			It("creates the record and reports progress", func() {
				created := shareddomain.Record{"identifier": "tx-1", "referenceId": "TX-100"}

				gomock.InOrder(
					notifier.EXPECT().Show(ctx, "Saving transaction...", domain.CategoryLoading),
					records.EXPECT().
						Create(ctx, shareddomain.ResourceTransactions, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ shareddomain.Resource, body shareddomain.Record) (shareddomain.Record, error) {
							Expect(body).To(HaveKeyWithValue("referenceId", "TX-100"))
							Expect(body).To(HaveKeyWithValue("action", "purchase"))
							return created, nil
						}),
					notifier.EXPECT().Show(ctx, "Successfully created a transaction", domain.CategorySuccess),
				)

				record, err := service.SubmitForm(ctx, "transaction", map[string]any{"referenceId": "TX-100"})

				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(created))
			})
		})

		When("validation fails", func() {
			It("never reaches the record service", func() {
				_, err := service.SubmitForm(ctx, "transaction", map[string]any{"amount": "lots"})

				var failure usecases.ValidationFailure
				Expect(errors.As(err, &failure)).To(BeTrue())
				Expect(failure.Fields).To(HaveKey("referenceId"))
				Expect(failure.Fields).To(HaveKey("amount"))
			})
		})

		When("the record service fails", func() {
			It("reports the error on the notification channel", func() {
				notifier.EXPECT().Show(ctx, "Saving transaction...", domain.CategoryLoading)
				records.EXPECT().Create(ctx, shareddomain.ResourceTransactions, gomock.Any()).Return(nil, errors.New("connection refused"))
				notifier.EXPECT().Show(ctx, "connection refused", domain.CategoryError)

				_, err := service.SubmitForm(ctx, "transaction", map[string]any{"referenceId": "TX-100"})

				Expect(err).To(MatchError(ContainSubstring("creating transaction")))
			})
		})
	})

	Context("SubmitEdit", func() {
		It("updates the stored record keeping its identifier", func() {
			stored := shareddomain.Record{"identifier": "tx-1", "referenceId": "TX-1", "amount": 10.0, "action": "purchase"}
			records.EXPECT().Get(ctx, shareddomain.ResourceTransactions, shareddomain.ID("tx-1")).Return(stored, nil)
			notifier.EXPECT().Show(ctx, "Saving transaction...", domain.CategoryLoading)
			records.EXPECT().
				Update(ctx, shareddomain.ResourceTransactions, shareddomain.ID("tx-1"), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ shareddomain.Resource, _ shareddomain.ID, body shareddomain.Record) (shareddomain.Record, error) {
					Expect(body).To(HaveKeyWithValue("identifier", "tx-1"))
					Expect(body).To(HaveKeyWithValue("action", "refund"))
					return body, nil
				})
			notifier.EXPECT().Show(ctx, "Successfully updated a transaction", domain.CategorySuccess)

			record, err := service.SubmitEdit(ctx, "transaction", "tx-1", map[string]any{"action": "refund"})

			Expect(err).NotTo(HaveOccurred())
			Expect(record.Identifier()).To(Equal(shareddomain.ID("tx-1")))
		})

		It("surfaces missing records", func() {
			records.EXPECT().Get(ctx, shareddomain.ResourceTransactions, shareddomain.ID("missing")).Return(nil, usecases.ErrRecordNotFound)

			_, err := service.SubmitEdit(ctx, "transaction", "missing", map[string]any{})

			Expect(err).To(MatchError(usecases.ErrRecordNotFound))
		})
	})

	Context("OpenForm", func() {
		It("opens a quick add creation form", func() {
			_, form, err := service.OpenForm(ctx, "transaction", "", true)

			Expect(err).NotTo(HaveOccurred())
			Expect(form.QuickAdd()).To(BeTrue())
			Expect(form.Values()).To(HaveKeyWithValue("action", "purchase"))
		})

		It("rejects unknown forms", func() {
			catalog.EXPECT().Form("coupon").Return(usecases.FormSpec{}, usecases.ErrUnknownForm)

			_, _, err := service.OpenForm(ctx, "coupon", "", false)

			Expect(err).To(MatchError(usecases.ErrUnknownForm))
		})
	})
})
