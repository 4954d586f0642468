package httpapi

import (
	"log/slog"
	"net/http"

	"hubble-workspace/internal/billing/httpapi/internal"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/httpserver"
)

const getAnalyticsErrMessage = "failed to get analytics"

func NewAnalyticsController(service usecases.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		service: service,
	}
}

var _ httpserver.Controller = &AnalyticsController{}

type AnalyticsController struct {
	service usecases.AnalyticsService
}

func (c *AnalyticsController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/v1/analytics", c.getAnalytics())
}

func (c *AnalyticsController) getAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analytics, err := c.service.GetAnalytics(r.Context())
		if err != nil {
			slog.Error("getting analytics", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getAnalyticsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAnalyticsResponse(analytics))
	}
}
