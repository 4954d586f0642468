package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hubble-workspace/internal/billing/httpapi/internal"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/httpserver"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

const (
	unknownResourceErrMessage     = "unknown resource"
	recordNotFoundErrMessage      = "record not found"
	identifierImmutableErrMessage = "identifier cannot be changed"
	identifierTakenErrMessage     = "identifier already in use"
	invalidReferenceErrMessage    = "record references a missing record"
	invalidBodyErrMessage         = "request body must be a json object"
	listRecordsErrMessage         = "failed to list records"
	getRecordErrMessage           = "failed to get record"
	createRecordErrMessage        = "failed to create record"
	updateRecordErrMessage        = "failed to update record"
)

func NewRecordController(service usecases.RecordService) *RecordController {
	return &RecordController{
		service: service,
		now:     time.Now,
	}
}

var _ httpserver.Controller = &RecordController{}

type RecordController struct {
	service usecases.RecordService
	now     func() time.Time
}

func (c *RecordController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/v1/{resource}", c.listRecords())
	router.Handle("POST /api/v1/{resource}", c.createRecord())
	router.Handle("GET /api/v1/{resource}/{identifier}", c.getRecord())
	router.Handle("PUT /api/v1/{resource}/{identifier}", c.updateRecord())
}

func (c *RecordController) listRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource, ok := resourceFromPath(w, r)
		if !ok {
			return
		}

		query := usecases.ParseListQuery(httpserver.GetQueryParams(r), c.now())
		result, err := c.service.List(r.Context(), resource, query)
		if err != nil {
			slog.Error("listing records", slog.String("resource", resource.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listRecordsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordPageResponse(result))
	}
}

func (c *RecordController) getRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource, ok := resourceFromPath(w, r)
		if !ok {
			return
		}

		record, err := c.service.Get(r.Context(), resource, shareddomain.ID(r.PathValue("identifier")))
		if errors.Is(err, usecases.ErrRecordNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, recordNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting record", slog.String("resource", resource.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, record)
	}
}

func (c *RecordController) createRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource, ok := resourceFromPath(w, r)
		if !ok {
			return
		}

		var body shareddomain.Record
		if err := httpserver.DecodeJSONBody(r, &body); err != nil || body == nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		record, err := c.service.Create(r.Context(), resource, body)
		if err != nil {
			replyWithWriteError(w, resource, err, createRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, record)
	}
}

func (c *RecordController) updateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource, ok := resourceFromPath(w, r)
		if !ok {
			return
		}

		var body shareddomain.Record
		if err := httpserver.DecodeJSONBody(r, &body); err != nil || body == nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		record, err := c.service.Update(r.Context(), resource, shareddomain.ID(r.PathValue("identifier")), body)
		if err != nil {
			replyWithWriteError(w, resource, err, updateRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, record)
	}
}

func resourceFromPath(w http.ResponseWriter, r *http.Request) (shareddomain.Resource, bool) {
	resource, err := shareddomain.ParseResource(r.PathValue("resource"))
	if err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, unknownResourceErrMessage)
		return "", false
	}
	return resource, true
}

func replyWithWriteError(w http.ResponseWriter, resource shareddomain.Resource, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrRecordNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, recordNotFoundErrMessage)
	case errors.Is(err, usecases.ErrIdentifierImmutable):
		httpserver.ReplyWithError(w, http.StatusConflict, identifierImmutableErrMessage)
	case errors.Is(err, usecases.ErrIdentifierTaken):
		httpserver.ReplyWithError(w, http.StatusConflict, identifierTakenErrMessage)
	case errors.Is(err, usecases.ErrInvalidReference):
		httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, invalidReferenceErrMessage)
	default:
		slog.Error("writing record", slog.String("resource", resource.String()), slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, fallback)
	}
}
