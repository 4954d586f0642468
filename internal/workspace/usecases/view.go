package usecases

import (
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/domain"
)

// CellFormatter renders the value shown in the column headerID of row.
type CellFormatter func(row shareddomain.Record, headerID string) string

// View pairs a resource with everything needed to list it.
type View struct {
	Name               string
	Title              string
	Resource           shareddomain.Resource
	Headers            []domain.HeaderSpec
	SortKeys           map[string]string
	Comparator         Comparator
	Filters            []domain.FilterFieldSpec
	RowsPerPage        int
	RowsPerPageOptions []int
	EmptyMessage       string
	Formatter          CellFormatter
	Form               string
}

func (v View) TableConfig() TableConfig {
	return TableConfig{
		Headers:            v.Headers,
		SortKeys:           v.SortKeys,
		Comparator:         v.Comparator,
		RowsPerPageOptions: v.RowsPerPageOptions,
		RowsPerPage:        v.RowsPerPage,
	}
}

func (v View) FormatCell(row shareddomain.Record, headerID string) string {
	if v.Formatter != nil {
		return v.Formatter(row, headerID)
	}
	return row.String(headerID)
}

type FormSpec struct {
	Name     string
	Title    string
	Resource shareddomain.Resource
	Groups   []domain.FieldGroup
}

type AddDialogItem struct {
	ID    string
	Title string
	Icon  string
}

type AddDialogGroup struct {
	Title string
	Links []AddDialogItem
}
