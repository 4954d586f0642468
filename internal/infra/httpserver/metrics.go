package httpserver

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "hubble-workspace"

var (
	errHijackUnsupported = errors.New("underlying ResponseWriter does not support hijacking")

	uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

	// Collections under /api/v1 that are not record resources.
	fixedCollections = map[string]bool{
		"workspace": true,
		"analytics": true,
	}
)

type httpInstruments struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

var (
	instruments     *httpInstruments
	instrumentsOnce sync.Once
	instrumentsMu   sync.Mutex
)

// ResetMetricsForTesting forces the next middleware to register its
// instruments against the current meter provider.
func ResetMetricsForTesting() {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()
	instruments = nil
	instrumentsOnce = sync.Once{}
}

func IsMetricsInitialized() bool {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()
	return instruments != nil
}

func loadInstruments() *httpInstruments {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()

	instrumentsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter(meterName)

		duration, err := meter.Float64Histogram(
			"hubble_workspace.http.request.duration.seconds",
			metric.WithDescription("Duration of HTTP requests"),
			metric.WithUnit("s"),
			metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
		)
		if err != nil {
			panic(err)
		}

		requests, err := meter.Int64Counter(
			"hubble_workspace.http.requests.total",
			metric.WithDescription("Total number of HTTP requests"),
		)
		if err != nil {
			panic(err)
		}

		inFlight, err := meter.Int64UpDownCounter(
			"hubble_workspace.http.requests.active",
			metric.WithDescription("HTTP requests currently in flight"),
		)
		if err != nil {
			panic(err)
		}

		instruments = &httpInstruments{duration: duration, requests: requests, inFlight: inFlight}
	})
	return instruments
}

// MetricsMiddleware records request duration, count and in-flight requests
// labelled by method, route and record resource.
func MetricsMiddleware() func(http.Handler) http.Handler {
	m := loadInstruments()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route, resource := normalizeRoute(r.URL.Path)

			base := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
			)
			m.inFlight.Add(r.Context(), 1, base)
			defer m.inFlight.Add(r.Context(), -1, base)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("billing.resource", resource),
				attribute.Int("http.status_code", wrapped.statusCode),
			)
			m.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
			m.requests.Add(r.Context(), 1, attrs)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}

// Hijack lets the notification websocket upgrade through the middleware chain.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errHijackUnsupported
}

// normalizeRoute collapses record identifiers so the route label stays
// bounded. It also returns the record resource the path addresses, if any.
func normalizeRoute(path string) (string, string) {
	if path == "" || path == "/" {
		return "root", ""
	}

	path = uuidPattern.ReplaceAllString(path, "{id}")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 3 || segments[0] != "api" || segments[1] != "v1" {
		return path, ""
	}

	collection := segments[2]
	if !fixedCollections[collection] {
		if len(segments) > 3 {
			segments = append(segments[:3], "{identifier}")
		}
		return "/" + strings.Join(segments, "/"), collection
	}

	// /api/v1/workspace/forms/{form}/{identifier}
	if len(segments) == 6 && segments[3] == "forms" {
		segments[5] = "{identifier}"
	}
	return "/" + strings.Join(segments, "/"), ""
}
