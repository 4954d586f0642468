package internal

import (
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"
)

type FieldResponse struct {
	Identifier       string            `json:"identifier"`
	Label            string            `json:"label"`
	Tooltip          string            `json:"tooltip,omitempty"`
	Type             string            `json:"type"`
	Required         bool              `json:"required"`
	ReadOnly         bool              `json:"readOnly"`
	Unique           bool              `json:"unique"`
	QuickAdd         bool              `json:"quickAdd"`
	DefaultValue     any               `json:"defaultValue,omitempty"`
	Options          []OptionResponse  `json:"options,omitempty"`
	Rows             int               `json:"rows,omitempty"`
	Validations      string            `json:"validations,omitempty"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

type GroupResponse struct {
	Label  string          `json:"label"`
	Fields []FieldResponse `json:"fields"`
}

type FormSummary struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Resource string `json:"resource"`
}

type FormResponse struct {
	FormSummary
	QuickAdd bool            `json:"quickAdd"`
	Groups   []GroupResponse `json:"groups"`
	Values   map[string]any  `json:"values"`
}

type AddDialogLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

type AddDialogGroup struct {
	Title string          `json:"title"`
	Links []AddDialogLink `json:"links"`
}

func ToFormSummaries(specs []usecases.FormSpec) []FormSummary {
	summaries := make([]FormSummary, len(specs))
	for i, spec := range specs {
		summaries[i] = toFormSummary(spec)
	}
	return summaries
}

// ToFormResponse lists the visible groups only. Hidden fields never leave the
// server but their values do.
func ToFormResponse(spec usecases.FormSpec, form *usecases.Form) FormResponse {
	visible := form.VisibleGroups()
	groups := make([]GroupResponse, len(visible))
	for i, group := range visible {
		fields := make([]FieldResponse, len(group.Children))
		for j, field := range group.Children {
			fields[j] = toField(field)
		}
		groups[i] = GroupResponse{Label: group.Label, Fields: fields}
	}

	return FormResponse{
		FormSummary: toFormSummary(spec),
		QuickAdd:    form.QuickAdd(),
		Groups:      groups,
		Values:      form.Values(),
	}
}

func ToAddDialog(groups []usecases.AddDialogGroup) []AddDialogGroup {
	responses := make([]AddDialogGroup, len(groups))
	for i, group := range groups {
		links := make([]AddDialogLink, len(group.Links))
		for j, link := range group.Links {
			links[j] = AddDialogLink(link)
		}
		responses[i] = AddDialogGroup{Title: group.Title, Links: links}
	}
	return responses
}

func toFormSummary(spec usecases.FormSpec) FormSummary {
	return FormSummary{
		Name:     spec.Name,
		Title:    spec.Title,
		Resource: spec.Resource.String(),
	}
}

func toField(field domain.FieldSpec) FieldResponse {
	return FieldResponse{
		Identifier:       field.Identifier,
		Label:            field.Label,
		Tooltip:          field.Tooltip,
		Type:             field.Type.String(),
		Required:         field.Required,
		ReadOnly:         field.ReadOnly,
		Unique:           field.Unique,
		QuickAdd:         field.QuickAdd,
		DefaultValue:     field.DefaultValue,
		Options:          toOptions(field.Options),
		Rows:             field.Rows,
		Validations:      field.Validations.String(),
		ValidationErrors: field.ValidationErrors,
	}
}
