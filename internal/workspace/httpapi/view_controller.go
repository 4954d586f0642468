package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"hubble-workspace/internal/infra/httpserver"
	"hubble-workspace/internal/workspace/httpapi/internal"
	"hubble-workspace/internal/workspace/usecases"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	viewNotFoundErrMessage = "view not found"
	renderViewErrMessage   = "failed to load records for the view"
	exportViewErrMessage   = "failed to export the view"
)

func NewViewController(service usecases.ViewService) *ViewController {
	return &ViewController{
		service: service,
	}
}

var _ httpserver.Controller = &ViewController{}

type ViewController struct {
	service usecases.ViewService
}

func (c *ViewController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/v1/workspace/views", c.listViews())
	router.Handle("GET /api/v1/workspace/views/{view}", c.renderView())
	router.Handle("GET /api/v1/workspace/views/{view}/export", c.exportView())
}

func (c *ViewController) listViews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views := c.service.ListViews(r.Context())
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToViewSummaries(views))
	}
}

func (c *ViewController) renderView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := c.service.RenderView(r.Context(), r.PathValue("view"), httpserver.GetQueryParams(r))
		if errors.Is(err, usecases.ErrUnknownView) {
			httpserver.ReplyWithError(w, http.StatusNotFound, viewNotFoundErrMessage)
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadGateway, renderViewErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToViewPageResponse(page))
	}
}

func (c *ViewController) exportView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("view")

		var buf bytes.Buffer
		err := c.service.ExportView(r.Context(), name, httpserver.GetQueryParams(r), &buf)
		if errors.Is(err, usecases.ErrUnknownView) {
			httpserver.ReplyWithError(w, http.StatusNotFound, viewNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("exporting view", slog.String("view", name), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, exportViewErrMessage)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".xlsx"))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			slog.Warn("writing export", slog.String("view", name), slog.String("error", err.Error()))
		}
	}
}
