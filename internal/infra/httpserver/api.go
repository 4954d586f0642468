package httpserver

import "net/http"

// Controller registers a bounded context's routes on the shared mux.
type Controller interface {
	AddRoutes(router *http.ServeMux)
}
