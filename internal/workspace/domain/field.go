package domain

import (
	"fmt"
)

type Option struct {
	Value string
	Title string
}

// FieldSpec describes one editable attribute of a record.
type FieldSpec struct {
	Identifier       string
	Label            string
	Tooltip          string
	Type             FieldType
	Required         bool
	ReadOnly         bool
	Unique           bool
	Hidden           bool
	QuickAdd         bool
	DefaultValue     any
	Options          []Option
	Rows             int
	Validations      RuleChain
	ValidationErrors map[string]string
}

func (f FieldSpec) Validate() error {
	if f.Identifier == "" {
		return ErrIdentifierRequired
	}
	if !f.Type.Valid() {
		return fmt.Errorf("field %s: %w", f.Identifier, ErrUnknownFieldType)
	}
	if (f.Type == FieldTypeSelect) != (len(f.Options) > 0) {
		return fmt.Errorf("field %s: %w", f.Identifier, ErrOptionsMismatch)
	}
	return nil
}

func (f FieldSpec) HasOption(value string) bool {
	for _, option := range f.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// Message returns the configured message for key, or fallback when none is set.
func (f FieldSpec) Message(key, fallback string) string {
	if msg, ok := f.ValidationErrors[key]; ok && msg != "" {
		return msg
	}
	return fallback
}

type FieldGroup struct {
	Label    string
	Children []FieldSpec
}

func (g FieldGroup) Validate() error {
	seen := make(map[string]struct{}, len(g.Children))
	for _, field := range g.Children {
		if err := field.Validate(); err != nil {
			return fmt.Errorf("group %q: %w", g.Label, err)
		}
		if _, ok := seen[field.Identifier]; ok {
			return fmt.Errorf("group %q: %w: %s", g.Label, ErrDuplicateIdentifier, field.Identifier)
		}
		seen[field.Identifier] = struct{}{}
	}
	return nil
}

func NewFieldSpecBuilder() *fieldSpecBuilder {
	return &fieldSpecBuilder{}
}

type fieldSpecBuilder struct {
	actions []fieldSpecHandler
}

type fieldSpecHandler func(v *FieldSpec) error

func (b *fieldSpecBuilder) WithIdentifier(value string) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Identifier = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithLabel(value string) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Label = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithTooltip(value string) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Tooltip = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithType(value FieldType) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Type = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithRequired(value bool) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Required = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithReadOnly(value bool) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.ReadOnly = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithUnique(value bool) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Unique = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithHidden(value bool) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Hidden = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithQuickAdd(value bool) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.QuickAdd = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithDefaultValue(value any) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.DefaultValue = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithOptions(value ...Option) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Options = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithRows(value int) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		d.Rows = value
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithValidations(value string) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		chain, err := ParseRuleChain(value)
		if err != nil {
			return err
		}
		d.Validations = chain
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) WithValidationError(rule, message string) *fieldSpecBuilder {
	b.actions = append(b.actions, func(d *FieldSpec) error {
		if d.ValidationErrors == nil {
			d.ValidationErrors = make(map[string]string)
		}
		d.ValidationErrors[rule] = message
		return nil
	})
	return b
}

func (b *fieldSpecBuilder) Build() (FieldSpec, error) {
	result := FieldSpec{
		Type: FieldTypeText,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldSpec{}, err
		}
	}

	if err := result.Validate(); err != nil {
		return FieldSpec{}, err
	}

	return result, nil
}
