package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// ChiRoutePattern labels a request by its chi route pattern so that path
// parameters do not explode metric cardinality. Requests that only reached a
// mount's catch-all are labelled "unmatched".
func ChiRoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	switch rp := rctx.RoutePattern(); rp {
	case "", "/*":
		return unmatchedRoute
	default:
		return rp
	}
}
