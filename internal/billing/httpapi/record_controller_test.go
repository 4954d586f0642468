package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"hubble-workspace/internal/billing/httpapi"
	"hubble-workspace/internal/billing/persistence"
	"hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/httpserver"
	"hubble-workspace/internal/infra/pubsub"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	mockusecases "hubble-workspace/test/unit/doubles/billing/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("RecordController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockRecordService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		now         time.Time
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockRecordService(ctrl)
		now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

		controller := httpapi.NewRecordController(mockService)
		httpapi.SetRecordControllerClock(controller, func() time.Time { return now })

		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	serve := func(method, target, body string) {
		var request *http.Request
		if body == "" {
			request = httptest.NewRequest(method, target, nil)
		} else {
			request = httptest.NewRequest(method, target, strings.NewReader(body))
		}
		router.ServeHTTP(recorder, request)
	}

	errorMessage := func() string {
		var response httpserver.ErrorResponse
		Expect(json.NewDecoder(recorder.Body).Decode(&response)).To(Succeed())
		return response.Message
	}

	Context("listRecords", func() {
		It("passes paging and the date range to the service", func() {
			expected := usecases.RecordQuery{
				Offset:     40,
				Limit:      20,
				Window:     shareddomain.Window{From: now.AddDate(0, -3, 0), To: now},
				Attributes: map[string]string{"status": "paid"},
			}
			mockService.EXPECT().
				List(gomock.Any(), shareddomain.ResourceInvoices, expected).
				Return(shareddomain.PageResult{
					Records:      []shareddomain.Record{{"identifier": "inv-1"}},
					TotalRecords: 41,
				}, nil)

			serve(http.MethodGet, "/api/v1/invoices?page=2&limit=20&date_range=last_3_months&status=paid", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response struct {
				Records      []map[string]any `json:"records"`
				TotalRecords int              `json:"totalRecords"`
			}
			Expect(json.NewDecoder(recorder.Body).Decode(&response)).To(Succeed())
			Expect(response.TotalRecords).To(Equal(41))
			Expect(response.Records).To(ConsistOf(HaveKeyWithValue("identifier", "inv-1")))
		})

		It("replies with an empty list rather than null", func() {
			mockService.EXPECT().List(gomock.Any(), shareddomain.ResourcePlans, gomock.Any()).Return(shareddomain.PageResult{}, nil)

			serve(http.MethodGet, "/api/v1/plans", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"records":[]`))
		})

		It("rejects an unknown resource", func() {
			serve(http.MethodGet, "/api/v1/customers", "")

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(errorMessage()).To(Equal("unknown resource"))
		})

		It("hides service failures", func() {
			mockService.EXPECT().List(gomock.Any(), shareddomain.ResourcePlans, gomock.Any()).Return(shareddomain.PageResult{}, errors.New("disk on fire"))

			serve(http.MethodGet, "/api/v1/plans", "")

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(errorMessage()).To(Equal("failed to list records"))
		})
	})

	Context("getRecord", func() {
		It("returns the record", func() {
			mockService.EXPECT().
				Get(gomock.Any(), shareddomain.ResourcePlans, shareddomain.ID("gold")).
				Return(shareddomain.Record{"identifier": "gold", "name": "Gold"}, nil)

			serve(http.MethodGet, "/api/v1/plans/gold", "")

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"name":"Gold"`))
		})

		It("replies 404 for a missing record", func() {
			mockService.EXPECT().
				Get(gomock.Any(), shareddomain.ResourcePlans, shareddomain.ID("gold")).
				Return(nil, fmt.Errorf("getting plan gold: %w", usecases.ErrRecordNotFound))

			serve(http.MethodGet, "/api/v1/plans/gold", "")

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("createRecord", func() {
		It("replies 201 with the stored record", func() {
			mockService.EXPECT().
				Create(gomock.Any(), shareddomain.ResourceTransactions, shareddomain.Record{"referenceId": "REF1", "amount": float64(12)}).
				Return(shareddomain.Record{"id": "uuid", "identifier": "tx-1", "referenceId": "REF1", "amount": float64(12)}, nil)

			serve(http.MethodPost, "/api/v1/transactions", `{"referenceId":"REF1","amount":12}`)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring(`"identifier":"tx-1"`))
		})

		It("rejects a body that is not an object", func() {
			serve(http.MethodPost, "/api/v1/transactions", `[1,2]`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a missing reference to 422", func() {
			mockService.EXPECT().Create(gomock.Any(), shareddomain.ResourceSubscriptions, gomock.Any()).Return(nil, usecases.ErrInvalidReference)

			serve(http.MethodPost, "/api/v1/subscriptions", `{"plan":{"identifier":"nope"}}`)

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("maps a duplicated identifier to 409", func() {
			mockService.EXPECT().Create(gomock.Any(), shareddomain.ResourcePlans, gomock.Any()).Return(nil, usecases.ErrIdentifierTaken)

			serve(http.MethodPost, "/api/v1/plans", `{"identifier":"gold"}`)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
			Expect(errorMessage()).To(Equal("identifier already in use"))
		})
	})

	Context("updateRecord", func() {
		It("replies with the replaced record", func() {
			mockService.EXPECT().
				Update(gomock.Any(), shareddomain.ResourcePlans, shareddomain.ID("gold"), shareddomain.Record{"identifier": "gold", "name": "Gold+"}).
				Return(shareddomain.Record{"identifier": "gold", "name": "Gold+"}, nil)

			serve(http.MethodPut, "/api/v1/plans/gold", `{"identifier":"gold","name":"Gold+"}`)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("maps a changed identifier to 409", func() {
			mockService.EXPECT().Update(gomock.Any(), shareddomain.ResourcePlans, shareddomain.ID("gold"), gomock.Any()).Return(nil, usecases.ErrIdentifierImmutable)

			serve(http.MethodPut, "/api/v1/plans/gold", `{"identifier":"silver"}`)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
			Expect(errorMessage()).To(Equal("identifier cannot be changed"))
		})

		It("maps a missing record to 404", func() {
			mockService.EXPECT().Update(gomock.Any(), shareddomain.ResourcePlans, shareddomain.ID("gold"), gomock.Any()).Return(nil, usecases.ErrRecordNotFound)

			serve(http.MethodPut, "/api/v1/plans/gold", `{"identifier":"gold"}`)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})

var _ = Describe("RecordController with the record service", func() {
	It("appends created invoices to the invoice collection", func() {
		broker := pubsub.NewMemoryBroker()
		publisher, err := pubsub.NewMemoryPublisherFactory(broker).New(pubsub.RecordEventsTopic)
		Expect(err).NotTo(HaveOccurred())

		repository := persistence.NewMemoryRecordRepository()
		service := usecases.NewRecordService(repository, publisher)
		router := http.NewServeMux()
		httpapi.NewRecordController(service).AddRoutes(router)

		for _, body := range []string{`{"identifier":"inv-1"}`, `{"identifier":"inv-2"}`} {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(body)))
			Expect(recorder.Code).To(Equal(http.StatusCreated))
		}

		records, err := repository.All(context.Background(), shareddomain.ResourceInvoices)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(records[1].Identifier()).To(Equal(shareddomain.ID("inv-2")))
	})
})
