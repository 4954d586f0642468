package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"hubble-workspace/internal/infra/httpserver"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/httpapi/internal"
	"hubble-workspace/internal/workspace/usecases"
)

const (
	formNotFoundErrMessage   = "form not found"
	recordNotFoundErrMessage = "record not found"
	invalidValuesErrMessage  = "form values must be a json object"
	validationErrMessage     = "some fields are invalid"
	openFormErrMessage       = "failed to open form"
	submitFormErrMessage     = "failed to save record"
)

func NewFormController(service usecases.FormService) *FormController {
	return &FormController{
		service: service,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service usecases.FormService
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/v1/workspace/forms", c.listForms())
	router.Handle("GET /api/v1/workspace/forms/{form}", c.openForm())
	router.Handle("POST /api/v1/workspace/forms/{form}", c.submitForm())
	router.Handle("GET /api/v1/workspace/forms/{form}/{identifier}", c.openForm())
	router.Handle("PUT /api/v1/workspace/forms/{form}/{identifier}", c.submitEdit())
	router.Handle("GET /api/v1/workspace/add-dialog", c.addDialog())
}

func (c *FormController) listForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormSummaries(c.service.ListForms(r.Context())))
	}
}

func (c *FormController) addDialog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAddDialog(c.service.AddDialog(r.Context())))
	}
}

func (c *FormController) openForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quickAdd := httpserver.GetQueryParam(r, "quick_add") == "true"
		identifier := shareddomain.ID(r.PathValue("identifier"))

		spec, form, err := c.service.OpenForm(r.Context(), r.PathValue("form"), identifier, quickAdd)
		if err != nil {
			replyWithFormError(w, err, openFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponse(spec, form))
	}
}

func (c *FormController) submitForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var values map[string]any
		if err := httpserver.DecodeJSONBody(r, &values); err != nil || values == nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidValuesErrMessage)
			return
		}

		record, err := c.service.SubmitForm(r.Context(), r.PathValue("form"), values)
		if err != nil {
			replyWithFormError(w, err, submitFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, record)
	}
}

func (c *FormController) submitEdit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var values map[string]any
		if err := httpserver.DecodeJSONBody(r, &values); err != nil || values == nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidValuesErrMessage)
			return
		}

		identifier := shareddomain.ID(r.PathValue("identifier"))
		record, err := c.service.SubmitEdit(r.Context(), r.PathValue("form"), identifier, values)
		if err != nil {
			replyWithFormError(w, err, submitFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, record)
	}
}

func replyWithFormError(w http.ResponseWriter, err error, fallback string) {
	var failure usecases.ValidationFailure
	switch {
	case errors.As(err, &failure):
		httpserver.ReplyWithFieldErrors(w, http.StatusUnprocessableEntity, validationErrMessage, failure.Fields)
	case errors.Is(err, usecases.ErrUnknownForm):
		httpserver.ReplyWithError(w, http.StatusNotFound, formNotFoundErrMessage)
	case errors.Is(err, usecases.ErrRecordNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, recordNotFoundErrMessage)
	default:
		slog.Error("handling form", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusBadGateway, fallback)
	}
}
