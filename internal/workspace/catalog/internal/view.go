package internal

import (
	"fmt"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"
)

const ComparatorCaseInsensitive = "case_insensitive"

type Header struct {
	ID             string `yaml:"id"`
	Label          string `yaml:"label"`
	Numeric        bool   `yaml:"numeric"`
	DisablePadding bool   `yaml:"disable_padding"`
	Clickable      bool   `yaml:"clickable"`
	Attribute      string `yaml:"attribute"`
	Unit           string `yaml:"unit"`
	Format         string `yaml:"format"`
}

// Key returns the record attribute shown in the column.
func (h Header) Key() string {
	if h.Attribute != "" {
		return h.Attribute
	}
	return h.ID
}

func (h Header) ToDomain() domain.HeaderSpec {
	return domain.HeaderSpec{
		ID:             h.ID,
		Label:          h.Label,
		Numeric:        h.Numeric,
		DisablePadding: h.DisablePadding,
		Clickable:      h.Clickable,
	}
}

type FilterField struct {
	Identifier      string   `yaml:"identifier"`
	Type            string   `yaml:"type"`
	Title           string   `yaml:"title"`
	Options         []Option `yaml:"options"`
	Default         string   `yaml:"default"`
	StartTitle      string   `yaml:"start_title"`
	StartIdentifier string   `yaml:"start_identifier"`
	EndTitle        string   `yaml:"end_title"`
	EndIdentifier   string   `yaml:"end_identifier"`
}

func (f FilterField) ToDomain() (domain.FilterFieldSpec, error) {
	fieldType, err := domain.ParseFieldType(f.Type)
	if err != nil {
		return domain.FilterFieldSpec{}, fmt.Errorf("filter %s: %w", f.Identifier, err)
	}

	var defaultValue domain.FilterValue = domain.Scalar(f.Default)
	if fieldType == domain.FieldTypeTimeRange {
		defaultValue = domain.TimeRange{Option: f.Default}
	}

	spec := domain.FilterFieldSpec{
		Identifier:      f.Identifier,
		Type:            fieldType,
		Title:           f.Title,
		Options:         ToOptions(f.Options),
		DefaultValue:    defaultValue,
		StartTitle:      f.StartTitle,
		StartIdentifier: f.StartIdentifier,
		EndTitle:        f.EndTitle,
		EndIdentifier:   f.EndIdentifier,
	}
	if err := spec.Validate(); err != nil {
		return domain.FilterFieldSpec{}, err
	}
	return spec, nil
}

type View struct {
	Name               string   `yaml:"name"`
	Title              string   `yaml:"title"`
	Resource           string   `yaml:"resource"`
	Form               string   `yaml:"form"`
	RowsPerPage        int      `yaml:"rows_per_page"`
	RowsPerPageOptions []int    `yaml:"rows_per_page_options"`
	Comparator         string   `yaml:"comparator"`
	EmptyMessage       string   `yaml:"empty_message"`
	Filters            []string `yaml:"filters"`
	Headers            []Header `yaml:"headers"`
}

// ToDomain resolves the filter references against filters. The cell
// formatter is left for the caller.
func (v View) ToDomain(filters map[string]domain.FilterFieldSpec) (usecases.View, error) {
	resource, err := shareddomain.ParseResource(v.Resource)
	if err != nil {
		return usecases.View{}, fmt.Errorf("view %s: %w", v.Name, err)
	}

	headers := make([]domain.HeaderSpec, len(v.Headers))
	sortKeys := make(map[string]string)
	for i, h := range v.Headers {
		headers[i] = h.ToDomain()
		if h.Attribute != "" {
			sortKeys[h.ID] = h.Attribute
		}
	}

	specs := make([]domain.FilterFieldSpec, 0, len(v.Filters))
	for _, identifier := range v.Filters {
		spec, ok := filters[identifier]
		if !ok {
			return usecases.View{}, fmt.Errorf("view %s: unknown filter %q", v.Name, identifier)
		}
		specs = append(specs, spec)
	}

	view := usecases.View{
		Name:               v.Name,
		Title:              v.Title,
		Resource:           resource,
		Headers:            headers,
		SortKeys:           sortKeys,
		Filters:            specs,
		RowsPerPage:        v.RowsPerPage,
		RowsPerPageOptions: v.RowsPerPageOptions,
		EmptyMessage:       v.EmptyMessage,
		Form:               v.Form,
	}

	switch v.Comparator {
	case "":
	case ComparatorCaseInsensitive:
		view.Comparator = usecases.CaseInsensitiveComparator
	default:
		return usecases.View{}, fmt.Errorf("view %s: unknown comparator %q", v.Name, v.Comparator)
	}

	return view, nil
}
