package usecases_test

import (
	"context"
	"errors"
	"strings"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func transactionGroups() []domain.FieldGroup {
	must := func(field domain.FieldSpec, err error) domain.FieldSpec {
		Expect(err).NotTo(HaveOccurred())
		return field
	}

	return []domain.FieldGroup{
		{
			Label: "Basic",
			Children: []domain.FieldSpec{
				must(domain.NewFieldSpecBuilder().
					WithIdentifier("referenceId").
					WithLabel("Reference ID").
					WithRequired(true).
					WithQuickAdd(true).
					WithDefaultValue("").
					Build()),
				must(domain.NewFieldSpecBuilder().
					WithIdentifier("comments").
					WithType(domain.FieldTypeLargeText).
					WithRows(4).
					WithDefaultValue("").
					WithValidations("maxLength:200").
					WithValidationError("maxLength", "The comment must be 0-200 characters long.").
					Build()),
				must(domain.NewFieldSpecBuilder().
					WithIdentifier("amount").
					WithType(domain.FieldTypeNumber).
					WithQuickAdd(true).
					WithDefaultValue(0).
					WithValidations("isNumeric").
					WithValidationError("isNumeric", "Please enter a valid number.").
					Build()),
				must(domain.NewFieldSpecBuilder().
					WithIdentifier("action").
					WithType(domain.FieldTypeSelect).
					WithQuickAdd(true).
					WithDefaultValue("purchase").
					WithOptions(
						domain.Option{Value: "purchase", Title: "Purchase"},
						domain.Option{Value: "verify", Title: "Verify"},
						domain.Option{Value: "refund", Title: "Refund"},
					).
					Build()),
			},
		},
		{
			Label: "Internal",
			Children: []domain.FieldSpec{
				must(domain.NewFieldSpecBuilder().
					WithIdentifier("source").
					WithHidden(true).
					WithDefaultValue("workspace").
					Build()),
				must(domain.NewFieldSpecBuilder().
					WithIdentifier("refundable").
					WithType(domain.FieldTypeBoolean).
					WithDefaultValue(false).
					Build()),
			},
		},
	}
}

var _ = Describe("Form engine", func() {
	var (
		groups []domain.FieldGroup
		ctx    context.Context
	)

	BeforeEach(func() {
		groups = transactionGroups()
		ctx = context.Background()
	})

	Context("ExtractValues", func() {
		It("returns the default of every field", func() {
			values := usecases.ExtractValues([]domain.FieldGroup{{
				Label: "Basic",
				Children: []domain.FieldSpec{
					{Identifier: "amount", Type: domain.FieldTypeNumber, DefaultValue: 0},
					{Identifier: "action", Type: domain.FieldTypeText, DefaultValue: "purchase"},
				},
			}})

			Expect(values).To(Equal(map[string]any{"amount": 0, "action": "purchase"}))
		})

		It("includes hidden fields", func() {
			Expect(usecases.ExtractValues(groups)).To(HaveKeyWithValue("source", "workspace"))
		})
	})

	Context("Save", func() {
		var (
			form   *usecases.Form
			saved  map[string]any
			calls  int
			saveFn func(context.Context, map[string]any) error
		)

		BeforeEach(func() {
			form = usecases.NewCreateForm(groups, false)
			saved, calls = nil, 0
			saveFn = func(_ context.Context, values map[string]any) error {
				calls++
				saved = values
				return nil
			}
		})

		It("rejects an empty required field", func() {
			err := form.Save(ctx, saveFn)

			var failure usecases.ValidationFailure
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Fields).To(Equal(map[string]string{"referenceId": "This field is required."}))
			Expect(calls).To(BeZero())
			Expect(form.Errors()).To(HaveKey("referenceId"))
		})

		It("saves once the required field is filled", func() {
			Expect(form.SetValue("referenceId", "TX-100")).To(Succeed())

			Expect(form.Save(ctx, saveFn)).To(Succeed())
			Expect(calls).To(Equal(1))
			Expect(saved).To(HaveKeyWithValue("referenceId", "TX-100"))
			Expect(saved).To(HaveKeyWithValue("source", "workspace"))
			Expect(form.Errors()).To(BeEmpty())
		})

		It("accepts a 200 character comment", func() {
			Expect(form.SetValue("referenceId", "TX-100")).To(Succeed())
			Expect(form.SetValue("comments", strings.Repeat("x", 200))).To(Succeed())

			Expect(form.Save(ctx, saveFn)).To(Succeed())
		})

		It("rejects a 201 character comment with the configured message", func() {
			Expect(form.SetValue("referenceId", "TX-100")).To(Succeed())
			Expect(form.SetValue("comments", strings.Repeat("x", 201))).To(Succeed())

			err := form.Save(ctx, saveFn)

			Expect(err).To(MatchError(usecases.ValidationFailure{Fields: map[string]string{
				"comments": "The comment must be 0-200 characters long.",
			}}))
			Expect(calls).To(BeZero())
		})

		It("reports every failing field at once", func() {
			Expect(form.SetValue("comments", strings.Repeat("x", 201))).To(Succeed())
			Expect(form.SetValue("amount", "twelve")).To(Succeed())
			Expect(form.SetValue("action", "steal")).To(Succeed())

			err := form.Save(ctx, saveFn)

			var failure usecases.ValidationFailure
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Fields).To(Equal(map[string]string{
				"referenceId": "This field is required.",
				"comments":    "The comment must be 0-200 characters long.",
				"amount":      "Please enter a valid number.",
				"action":      "Please choose one of the available options.",
			}))
		})

		It("coerces numbers and booleans", func() {
			Expect(form.SetValue("referenceId", "TX-100")).To(Succeed())
			Expect(form.SetValue("amount", "12.5")).To(Succeed())
			Expect(form.SetValue("refundable", "true")).To(Succeed())

			Expect(form.Save(ctx, saveFn)).To(Succeed())
			Expect(saved).To(HaveKeyWithValue("amount", 12.5))
			Expect(saved).To(HaveKeyWithValue("refundable", true))
		})

		It("skips rules for optional empty fields", func() {
			Expect(form.SetValue("referenceId", "TX-100")).To(Succeed())
			Expect(form.SetValue("amount", "")).To(Succeed())

			Expect(form.Save(ctx, saveFn)).To(Succeed())
		})

		It("passes save errors through", func() {
			Expect(form.SetValue("referenceId", "TX-100")).To(Succeed())

			err := form.Save(ctx, func(context.Context, map[string]any) error { return errors.New("offline") })
			Expect(err).To(MatchError("offline"))
		})
	})

	Context("quick add", func() {
		It("shows only quick add fields until show more is toggled", func() {
			form := usecases.NewCreateForm(groups, true)

			visible := form.VisibleGroups()
			Expect(visible).To(HaveLen(1))
			Expect(visible[0].Children).To(HaveLen(3))

			form.ToggleShowMore()

			visible = form.VisibleGroups()
			Expect(visible).To(HaveLen(2))
			Expect(visible[0].Children).To(HaveLen(4))
			Expect(visible[1].Children).To(HaveLen(1))
		})

		It("keeps values of fields it is not showing", func() {
			form := usecases.NewCreateForm(groups, false)
			Expect(form.SetValue("comments", "late delivery")).To(Succeed())

			form.ToggleShowMore()
			form.ToggleShowMore()

			Expect(form.Value("comments")).To(Equal("late delivery"))
		})

		It("never renders hidden fields but keeps their values", func() {
			form := usecases.NewCreateForm(groups, false)

			for _, group := range form.VisibleGroups() {
				for _, field := range group.Children {
					Expect(field.Identifier).NotTo(Equal("source"))
				}
			}
			Expect(form.Values()).To(HaveKeyWithValue("source", "workspace"))
		})
	})

	Context("editing", func() {
		It("overlays the record on the defaults", func() {
			record := shareddomain.Record{"identifier": "tx-1", "referenceId": "TX-1", "amount": 40.0}

			form := usecases.NewEditForm(groups, record)

			Expect(form.Value("identifier")).To(Equal("tx-1"))
			Expect(form.Value("amount")).To(Equal(40.0))
			Expect(form.Value("action")).To(Equal("purchase"))
		})

		It("refuses values for unknown or read only fields", func() {
			readOnly := []domain.FieldGroup{{
				Label:    "Basic",
				Children: []domain.FieldSpec{{Identifier: "code", Type: domain.FieldTypeText, ReadOnly: true}},
			}}
			form := usecases.NewCreateForm(readOnly, false)

			Expect(form.SetValue("code", "X")).To(MatchError(usecases.ErrReadOnlyField))
			Expect(form.SetValue("identifier", "X")).To(MatchError(usecases.ErrUnknownField))
			Expect(form.ApplyValues(map[string]any{"code": "X", "identifier": "Y"})).To(Equal([]string{"code", "identifier"}))
		})
	})
})
