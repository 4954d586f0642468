package usecases

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrReadOnlyField = errors.New("field is read only")
)

// ValidationFailure carries every failing field with its message.
type ValidationFailure struct {
	Fields map[string]string
}

func (e ValidationFailure) Error() string {
	identifiers := slices.Sorted(maps.Keys(e.Fields))
	return fmt.Sprintf("validation failed for %s", strings.Join(identifiers, ", "))
}

// ExtractValues builds the initial values of a new record. Hidden fields are
// included.
func ExtractValues(groups []domain.FieldGroup) map[string]any {
	values := make(map[string]any)
	for _, group := range groups {
		for _, field := range group.Children {
			values[field.Identifier] = field.DefaultValue
		}
	}
	return values
}

// ValidateValues checks every field and returns the coerced values. Attributes
// that no field declares are carried through untouched.
func ValidateValues(groups []domain.FieldGroup, values map[string]any) (map[string]any, error) {
	result := maps.Clone(values)
	if result == nil {
		result = make(map[string]any)
	}
	failures := make(map[string]string)

	for _, group := range groups {
		for _, field := range group.Children {
			value := values[field.Identifier]

			if isEmpty(value) {
				if field.Required {
					failures[field.Identifier] = field.Message(requiredMessageKey, defaultRequiredMessage)
				}
				continue
			}

			if msg := checkRules(field, value); msg != "" {
				failures[field.Identifier] = msg
				continue
			}

			coerced, msg := coerceField(field, value)
			if msg != "" {
				failures[field.Identifier] = msg
				continue
			}
			result[field.Identifier] = coerced
		}
	}

	if len(failures) > 0 {
		return nil, ValidationFailure{Fields: failures}
	}
	return result, nil
}

func checkRules(field domain.FieldSpec, value any) string {
	s := stringValue(value)
	for _, rule := range field.Validations {
		if msg := checkRule(field, rule, s); msg != "" {
			return msg
		}
	}
	return ""
}

type Form struct {
	groups   []domain.FieldGroup
	fields   map[string]domain.FieldSpec
	values   map[string]any
	quickAdd bool
	errors   map[string]string
}

// NewCreateForm starts from the schema defaults. With quickAdd set only the
// fields flagged for quick add are shown until ToggleShowMore.
func NewCreateForm(groups []domain.FieldGroup, quickAdd bool) *Form {
	return newForm(groups, ExtractValues(groups), quickAdd)
}

// NewEditForm overlays the record on the schema defaults so attributes outside
// the schema, such as the identifier, survive the edit.
func NewEditForm(groups []domain.FieldGroup, record shareddomain.Record) *Form {
	values := ExtractValues(groups)
	maps.Copy(values, record)
	return newForm(groups, values, false)
}

func newForm(groups []domain.FieldGroup, values map[string]any, quickAdd bool) *Form {
	fields := make(map[string]domain.FieldSpec)
	for _, group := range groups {
		for _, field := range group.Children {
			fields[field.Identifier] = field
		}
	}

	return &Form{
		groups:   groups,
		fields:   fields,
		values:   values,
		quickAdd: quickAdd,
		errors:   map[string]string{},
	}
}

func (f *Form) SetValue(identifier string, value any) error {
	field, ok := f.fields[identifier]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, identifier)
	}
	if field.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnlyField, identifier)
	}

	f.values[identifier] = value
	delete(f.errors, identifier)
	return nil
}

// ApplyValues sets every writable schema field present in values and returns
// the identifiers it skipped.
func (f *Form) ApplyValues(values map[string]any) []string {
	var skipped []string
	for identifier, value := range values {
		if err := f.SetValue(identifier, value); err != nil {
			skipped = append(skipped, identifier)
		}
	}
	slices.Sort(skipped)
	return skipped
}

func (f *Form) Value(identifier string) any {
	return f.values[identifier]
}

// Values returns a copy of the current values, hidden fields included.
func (f *Form) Values() map[string]any {
	return maps.Clone(f.values)
}

func (f *Form) Errors() map[string]string {
	return maps.Clone(f.errors)
}

func (f *Form) QuickAdd() bool {
	return f.quickAdd
}

// ToggleShowMore switches between the quick add subset and the full form.
// Entered values are kept either way.
func (f *Form) ToggleShowMore() {
	f.quickAdd = !f.quickAdd
}

// VisibleGroups returns the groups as rendered: hidden fields are dropped and,
// in quick add mode, so is every field not flagged for it. Empty groups are
// omitted.
func (f *Form) VisibleGroups() []domain.FieldGroup {
	visible := make([]domain.FieldGroup, 0, len(f.groups))
	for _, group := range f.groups {
		children := make([]domain.FieldSpec, 0, len(group.Children))
		for _, field := range group.Children {
			if field.Hidden || (f.quickAdd && !field.QuickAdd) {
				continue
			}
			children = append(children, field)
		}
		if len(children) > 0 {
			visible = append(visible, domain.FieldGroup{Label: group.Label, Children: children})
		}
	}
	return visible
}

// Save validates every field and calls save only when all of them pass.
func (f *Form) Save(ctx context.Context, save func(ctx context.Context, values map[string]any) error) error {
	values, err := ValidateValues(f.groups, f.values)
	if err != nil {
		var failure ValidationFailure
		if errors.As(err, &failure) {
			f.errors = failure.Fields
		}
		return err
	}

	f.errors = map[string]string{}
	return save(ctx, values)
}
