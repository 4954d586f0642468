package internal

import (
	"fmt"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"
)

type Option struct {
	Value string `yaml:"value"`
	Title string `yaml:"title"`
}

func ToOptions(options []Option) []domain.Option {
	if len(options) == 0 {
		return nil
	}
	result := make([]domain.Option, len(options))
	for i, o := range options {
		result[i] = domain.Option{Value: o.Value, Title: o.Title}
	}
	return result
}

type Field struct {
	Identifier       string            `yaml:"identifier"`
	Label            string            `yaml:"label"`
	Tooltip          string            `yaml:"tooltip"`
	Type             string            `yaml:"type"`
	Required         bool              `yaml:"required"`
	ReadOnly         bool              `yaml:"read_only"`
	Unique           bool              `yaml:"unique"`
	Hidden           bool              `yaml:"hidden"`
	QuickAdd         bool              `yaml:"quick_add"`
	Default          any               `yaml:"default"`
	Options          []Option          `yaml:"options"`
	Rows             int               `yaml:"rows"`
	Validations      string            `yaml:"validations"`
	ValidationErrors map[string]string `yaml:"validation_errors"`
}

func (f Field) ToDomain() (domain.FieldSpec, error) {
	fieldType, err := domain.ParseFieldType(f.Type)
	if err != nil {
		return domain.FieldSpec{}, fmt.Errorf("field %s: %w", f.Identifier, err)
	}

	builder := domain.NewFieldSpecBuilder().
		WithIdentifier(f.Identifier).
		WithLabel(f.Label).
		WithTooltip(f.Tooltip).
		WithType(fieldType).
		WithRequired(f.Required).
		WithReadOnly(f.ReadOnly).
		WithUnique(f.Unique).
		WithHidden(f.Hidden).
		WithQuickAdd(f.QuickAdd).
		WithDefaultValue(f.Default).
		WithOptions(ToOptions(f.Options)...).
		WithRows(f.Rows).
		WithValidations(f.Validations)

	for rule, message := range f.ValidationErrors {
		builder = builder.WithValidationError(rule, message)
	}

	spec, err := builder.Build()
	if err != nil {
		return domain.FieldSpec{}, fmt.Errorf("field %s: %w", f.Identifier, err)
	}
	return spec, nil
}

type Group struct {
	Label    string  `yaml:"label"`
	Children []Field `yaml:"children"`
}

type Form struct {
	Name     string  `yaml:"name"`
	Title    string  `yaml:"title"`
	Resource string  `yaml:"resource"`
	Groups   []Group `yaml:"groups"`
}

func (f Form) ToDomain() (usecases.FormSpec, error) {
	resource, err := shareddomain.ParseResource(f.Resource)
	if err != nil {
		return usecases.FormSpec{}, fmt.Errorf("form %s: %w", f.Name, err)
	}

	groups := make([]domain.FieldGroup, 0, len(f.Groups))
	for _, g := range f.Groups {
		group := domain.FieldGroup{Label: g.Label, Children: make([]domain.FieldSpec, 0, len(g.Children))}
		for _, child := range g.Children {
			spec, err := child.ToDomain()
			if err != nil {
				return usecases.FormSpec{}, fmt.Errorf("form %s: %w", f.Name, err)
			}
			group.Children = append(group.Children, spec)
		}
		if err := group.Validate(); err != nil {
			return usecases.FormSpec{}, fmt.Errorf("form %s: %w", f.Name, err)
		}
		groups = append(groups, group)
	}

	return usecases.FormSpec{
		Name:     f.Name,
		Title:    f.Title,
		Resource: resource,
		Groups:   groups,
	}, nil
}

type AddDialogLink struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

type AddDialogGroup struct {
	Title string          `yaml:"title"`
	Links []AddDialogLink `yaml:"links"`
}

func ToAddDialog(groups []AddDialogGroup) []usecases.AddDialogGroup {
	result := make([]usecases.AddDialogGroup, len(groups))
	for i, g := range groups {
		links := make([]usecases.AddDialogItem, len(g.Links))
		for j, l := range g.Links {
			links[j] = usecases.AddDialogItem{ID: l.ID, Title: l.Title, Icon: l.Icon}
		}
		result[i] = usecases.AddDialogGroup{Title: g.Title, Links: links}
	}
	return result
}
