package domain_test

import (
	"hubble-workspace/internal/workspace/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldType", func() {
	It("parses every declared type back to itself", func() {
		for _, t := range domain.FieldTypes() {
			parsed, err := domain.ParseFieldType(t.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(t))
		}
	})

	It("covers the closed set of field types", func() {
		Expect(domain.FieldTypes()).To(HaveLen(8))
	})

	It("rejects unknown types", func() {
		_, err := domain.ParseFieldType("color")
		Expect(err).To(MatchError(domain.ErrUnknownFieldType))
	})

	It("unmarshals from text", func() {
		var t domain.FieldType
		Expect(t.UnmarshalText([]byte("large_text"))).To(Succeed())
		Expect(t).To(Equal(domain.FieldTypeLargeText))
	})
})

var _ = Describe("FieldSpec builder", func() {
	It("builds a select field with options", func() {
		field, err := domain.NewFieldSpecBuilder().
			WithIdentifier("action").
			WithLabel("Action").
			WithType(domain.FieldTypeSelect).
			WithDefaultValue("purchase").
			WithOptions(
				domain.Option{Value: "purchase", Title: "Purchase"},
				domain.Option{Value: "refund", Title: "Refund"},
			).
			Build()

		Expect(err).NotTo(HaveOccurred())
		Expect(field.HasOption("refund")).To(BeTrue())
		Expect(field.HasOption("verify")).To(BeFalse())
	})

	It("rejects a select field without options", func() {
		_, err := domain.NewFieldSpecBuilder().
			WithIdentifier("action").
			WithType(domain.FieldTypeSelect).
			Build()

		Expect(err).To(MatchError(domain.ErrOptionsMismatch))
	})

	It("rejects options on a non select field", func() {
		_, err := domain.NewFieldSpecBuilder().
			WithIdentifier("comments").
			WithType(domain.FieldTypeLargeText).
			WithOptions(domain.Option{Value: "x", Title: "X"}).
			Build()

		Expect(err).To(MatchError(domain.ErrOptionsMismatch))
	})

	It("parses the validations chain", func() {
		field, err := domain.NewFieldSpecBuilder().
			WithIdentifier("comments").
			WithValidations("maxLength:200").
			WithValidationError("maxLength", "The comment must be 0-200 characters long.").
			Build()

		Expect(err).NotTo(HaveOccurred())
		Expect(field.Validations).To(Equal(domain.RuleChain{{Name: domain.RuleMaxLength, Length: 200}}))
		Expect(field.Message("maxLength", "fallback")).To(Equal("The comment must be 0-200 characters long."))
		Expect(field.Message("required", "fallback")).To(Equal("fallback"))
	})

	It("requires an identifier", func() {
		_, err := domain.NewFieldSpecBuilder().Build()
		Expect(err).To(MatchError(domain.ErrIdentifierRequired))
	})
})

var _ = Describe("FieldGroup", func() {
	It("rejects duplicate identifiers", func() {
		group := domain.FieldGroup{
			Label: "Basic",
			Children: []domain.FieldSpec{
				{Identifier: "amount", Type: domain.FieldTypeNumber},
				{Identifier: "amount", Type: domain.FieldTypeNumber},
			},
		}

		Expect(group.Validate()).To(MatchError(domain.ErrDuplicateIdentifier))
	})

	It("accepts distinct identifiers", func() {
		group := domain.FieldGroup{
			Label: "Basic",
			Children: []domain.FieldSpec{
				{Identifier: "amount", Type: domain.FieldTypeNumber},
				{Identifier: "tax", Type: domain.FieldTypeNumber},
			},
		}

		Expect(group.Validate()).To(Succeed())
	})
})
