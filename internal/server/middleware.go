package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	errs "github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/observability"
)

// statusWriter captures the response status for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wrote {
		w.status = status
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.status = http.StatusOK
		w.wrote = true
	}
	return w.ResponseWriter.Write(b)
}

// observe logs each request, feeds the server hooks, and converts
// handler panics into a JSON 500 response.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", "panic", rec, "path", r.URL.Path)
				if !sw.wrote {
					writeJSON(sw, http.StatusInternalServerError, errorResponse{Error: errorBody{
						Code:    string(errs.ErrCodeInternal),
						Message: "internal server error",
					}})
				}
			}

			// Label metrics with the route pattern, not the raw path,
			// to keep cardinality bounded.
			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			duration := time.Since(start)
			observability.Server().OnResponse(r.Context(), r.Method, route, sw.status, duration)
			s.logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", duration,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(sw, r)
	})
}
