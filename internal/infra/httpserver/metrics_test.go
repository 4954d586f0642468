package httpserver

import (
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		ginkgo.When("using metrics middleware", func() {
			ginkgo.It("should collect metrics correctly", func() {
				reader := metric.NewManualReader()
				provider := metric.NewMeterProvider(metric.WithReader(reader))
				otel.SetMeterProvider(provider)

				ResetMetricsForTesting()

				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					w.Write([]byte("test response"))
				})

				handler := MetricsMiddleware()(testHandler)

				req := httptest.NewRequest("GET", "/api/v1/plans", nil)
				w := httptest.NewRecorder()

				handler.ServeHTTP(w, req)

				gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
				gomega.Expect(w.Body.String()).To(gomega.Equal("test response"))
				gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())
			})
		})
	})

	ginkgo.DescribeTable("normalizeRoute",
		func(path, route, resource string) {
			gotRoute, gotResource := normalizeRoute(path)
			gomega.Expect(gotRoute).To(gomega.Equal(route))
			gomega.Expect(gotResource).To(gomega.Equal(resource))
		},
		ginkgo.Entry("root path", "/", "root", ""),
		ginkgo.Entry("empty path", "", "root", ""),
		ginkgo.Entry("collection", "/api/v1/plans", "/api/v1/plans", "plans"),
		ginkgo.Entry("record", "/api/v1/accounts/acme-01", "/api/v1/accounts/{identifier}", "accounts"),
		ginkgo.Entry("record by uuid",
			"/api/v1/invoices/123e4567-e89b-12d3-a456-426614174000",
			"/api/v1/invoices/{identifier}", "invoices"),
		ginkgo.Entry("analytics", "/api/v1/analytics", "/api/v1/analytics", ""),
		ginkgo.Entry("view", "/api/v1/workspace/views/plans", "/api/v1/workspace/views/plans", ""),
		ginkgo.Entry("edit form", "/api/v1/workspace/forms/plan/gold", "/api/v1/workspace/forms/plan/{identifier}", ""),
		ginkgo.Entry("websocket", "/ws/notifications", "/ws/notifications", ""),
		ginkgo.Entry("stray uuid", "/files/123e4567-e89b-12d3-a456-426614174000", "/files/{id}", ""),
	)

	ginkgo.Context("ResponseWriter", func() {
		var (
			recorder      *httptest.ResponseRecorder
			wrappedWriter *responseWriter
		)

		ginkgo.BeforeEach(func() {
			recorder = httptest.NewRecorder()
			wrappedWriter = &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}
		})

		ginkgo.It("should handle WriteHeader correctly", func() {
			wrappedWriter.WriteHeader(http.StatusNotFound)
			gomega.Expect(wrappedWriter.statusCode).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("should handle Write correctly", func() {
			_, err := wrappedWriter.Write([]byte("test"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(recorder.Body.String()).To(gomega.Equal("test"))
		})

		ginkgo.It("should implement http.Hijacker interface", func() {
			_, isHijacker := any(wrappedWriter).(http.Hijacker)
			gomega.Expect(isHijacker).To(gomega.BeTrue())
		})

		ginkgo.It("should return error when hijacking is not supported", func() {
			_, _, err := wrappedWriter.Hijack()
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err).To(gomega.MatchError(errHijackUnsupported))
		})
	})
})
