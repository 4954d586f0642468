package internal

import (
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/usecases"
)

type ViewSummary struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Resource string `json:"resource"`
	Form     string `json:"form,omitempty"`
}

type HeaderResponse struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	Numeric        bool   `json:"numeric"`
	DisablePadding bool   `json:"disablePadding"`
	Clickable      bool   `json:"clickable"`
}

type OptionResponse struct {
	Value string `json:"value"`
	Title string `json:"title"`
}

type FilterFieldResponse struct {
	Identifier      string           `json:"identifier"`
	Type            string           `json:"type"`
	Title           string           `json:"title,omitempty"`
	Options         []OptionResponse `json:"options,omitempty"`
	StartTitle      string           `json:"startTitle,omitempty"`
	StartIdentifier string           `json:"startIdentifier,omitempty"`
	EndTitle        string           `json:"endTitle,omitempty"`
	EndIdentifier   string           `json:"endIdentifier,omitempty"`
}

// FilterValueResponse is a scalar value or a time range option with its
// dates in epoch milliseconds.
type FilterValueResponse struct {
	Value     string `json:"value,omitempty"`
	Option    string `json:"option,omitempty"`
	StartDate *int64 `json:"startDate,omitempty"`
	EndDate   *int64 `json:"endDate,omitempty"`
}

type RowResponse struct {
	Identifier string              `json:"identifier,omitempty"`
	Cells      map[string]string   `json:"cells,omitempty"`
	Record     shareddomain.Record `json:"record,omitempty"`
	Selected   bool                `json:"selected"`
	Filler     bool                `json:"filler"`
}

type TableResponse struct {
	Headers            []HeaderResponse `json:"headers"`
	Rows               []RowResponse    `json:"rows"`
	Order              string           `json:"order"`
	OrderBy            string           `json:"orderBy"`
	Page               int              `json:"page"`
	RowsPerPage        int              `json:"rowsPerPage"`
	RowsPerPageOptions []int            `json:"rowsPerPageOptions"`
	TotalRows          int              `json:"totalRows"`
	Selected           []string         `json:"selected"`
	AllSelected        bool             `json:"allSelected"`
}

type ViewPageResponse struct {
	View         ViewSummary                    `json:"view"`
	Filters      []FilterFieldResponse          `json:"filters"`
	FilterState  map[string]FilterValueResponse `json:"filterState"`
	Params       map[string]string              `json:"params"`
	EmptyMessage string                         `json:"emptyMessage,omitempty"`
	Table        TableResponse                  `json:"table"`
}

func ToViewSummary(view usecases.View) ViewSummary {
	return ViewSummary{
		Name:     view.Name,
		Title:    view.Title,
		Resource: view.Resource.String(),
		Form:     view.Form,
	}
}

func ToViewSummaries(views []usecases.View) []ViewSummary {
	summaries := make([]ViewSummary, len(views))
	for i, view := range views {
		summaries[i] = ToViewSummary(view)
	}
	return summaries
}

func ToViewPageResponse(page usecases.ViewPage) ViewPageResponse {
	filters := make([]FilterFieldResponse, len(page.View.Filters))
	for i, filter := range page.View.Filters {
		filters[i] = FilterFieldResponse{
			Identifier:      filter.Identifier,
			Type:            filter.Type.String(),
			Title:           filter.Title,
			Options:         toOptions(filter.Options),
			StartTitle:      filter.StartTitle,
			StartIdentifier: filter.StartIdentifier,
			EndTitle:        filter.EndTitle,
			EndIdentifier:   filter.EndIdentifier,
		}
	}

	state := make(map[string]FilterValueResponse, len(page.Filters))
	for identifier, value := range page.Filters {
		state[identifier] = toFilterValue(value)
	}

	return ViewPageResponse{
		View:         ToViewSummary(page.View),
		Filters:      filters,
		FilterState:  state,
		Params:       page.Params,
		EmptyMessage: page.View.EmptyMessage,
		Table:        toTable(page.View, page.Table),
	}
}

func toTable(view usecases.View, table usecases.TableView) TableResponse {
	headers := make([]HeaderResponse, len(table.Headers))
	for i, header := range table.Headers {
		headers[i] = HeaderResponse(header)
	}

	rows := make([]RowResponse, len(table.Rows))
	for i, row := range table.Rows {
		if row.Filler {
			rows[i] = RowResponse{Filler: true}
			continue
		}

		cells := make(map[string]string, len(table.Headers))
		for _, header := range table.Headers {
			cells[header.ID] = view.FormatCell(row.Record, header.ID)
		}
		rows[i] = RowResponse{
			Identifier: row.Record.Identifier().String(),
			Cells:      cells,
			Record:     row.Record,
			Selected:   row.Selected,
		}
	}

	selected := make([]string, len(table.Selected))
	for i, identifier := range table.Selected {
		selected[i] = identifier.String()
	}

	return TableResponse{
		Headers:            headers,
		Rows:               rows,
		Order:              string(table.Order),
		OrderBy:            table.OrderBy,
		Page:               table.Page,
		RowsPerPage:        table.RowsPerPage,
		RowsPerPageOptions: table.RowsPerPageOptions,
		TotalRows:          table.TotalRows,
		Selected:           selected,
		AllSelected:        table.AllSelected,
	}
}

func toFilterValue(value domain.FilterValue) FilterValueResponse {
	switch v := value.(type) {
	case domain.Scalar:
		return FilterValueResponse{Value: string(v)}
	case domain.TimeRange:
		response := FilterValueResponse{Option: v.Option}
		if !v.StartDate.IsZero() {
			start := v.StartDate.UnixMilli()
			response.StartDate = &start
		}
		if !v.EndDate.IsZero() {
			end := v.EndDate.UnixMilli()
			response.EndDate = &end
		}
		return response
	default:
		return FilterValueResponse{}
	}
}

func toOptions(options []domain.Option) []OptionResponse {
	if len(options) == 0 {
		return nil
	}
	responses := make([]OptionResponse, len(options))
	for i, option := range options {
		responses[i] = OptionResponse(option)
	}
	return responses
}
