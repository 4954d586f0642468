package usecases

//go:generate mockgen -source=./view_service.go -destination=../../../test/unit/doubles/workspace/usecases/view_service_mock.go -package=usecases -mock_names=ViewService=MockViewService

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"hubble-workspace/internal/workspace/domain"
)

type ViewPage struct {
	View    View
	Filters domain.FilterState
	Params  map[string]string
	Table   TableView
}

type ViewService interface {
	ListViews(ctx context.Context) []View
	RenderView(ctx context.Context, name string, params map[string]string) (ViewPage, error)
	ExportView(ctx context.Context, name string, params map[string]string, w io.Writer) error
}

func NewViewService(catalog Catalog, records RecordService) *SimpleViewService {
	return &SimpleViewService{
		catalog: catalog,
		records: records,
	}
}

var _ ViewService = (*SimpleViewService)(nil)

type SimpleViewService struct {
	catalog Catalog
	records RecordService
}

func (s *SimpleViewService) ListViews(ctx context.Context) []View {
	return s.catalog.Views()
}

func (s *SimpleViewService) RenderView(ctx context.Context, name string, params map[string]string) (ViewPage, error) {
	view, err := s.catalog.View(name)
	if err != nil {
		return ViewPage{}, err
	}

	session := NewViewSession(view, s.records)
	session.Restore(params)

	if err := session.Refresh(ctx); err != nil {
		slog.Error("refreshing view", slog.String("view", name), slog.String("error", err.Error()))
		return ViewPage{}, fmt.Errorf("rendering view %s: %w", name, err)
	}

	return ViewPage{
		View:    view,
		Filters: session.Filters(),
		Params:  session.Params(),
		Table:   session.Render(),
	}, nil
}

func (s *SimpleViewService) ExportView(ctx context.Context, name string, params map[string]string, w io.Writer) error {
	page, err := s.RenderView(ctx, name, params)
	if err != nil {
		return err
	}

	if err := ExportXLSX(page.View, page.Table, w); err != nil {
		slog.Error("exporting view", slog.String("view", name), slog.String("error", err.Error()))
		return fmt.Errorf("exporting view %s: %w", name, err)
	}

	return nil
}
