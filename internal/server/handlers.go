package server

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sdankbar/jaqumal-graph/pkg/dot"
	errs "github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	gio "github.com/sdankbar/jaqumal-graph/pkg/io"
	"github.com/sdankbar/jaqumal-graph/pkg/layout"
	"github.com/sdankbar/jaqumal-graph/pkg/render"
	"github.com/sdankbar/jaqumal-graph/pkg/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readGraph decodes the request body into a graph. A dpi query parameter
// overrides the dpi declared in the description.
func (s *Server) readGraph(r *http.Request) (*graph.Graph, error) {
	var opts graph.Options
	if raw := r.URL.Query().Get("dpi"); raw != "" {
		dpi, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errs.New(errs.ErrCodeInvalidInput, "invalid dpi %q", raw)
		}
		opts.DPI = dpi
	}
	g, err := gio.ReadGraph(r.Body, opts)
	if err != nil {
		if errs.GetCode(err) == "" {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid graph description")
		}
		return nil, err
	}
	return g, nil
}

// runLayout pushes the graph through the engine and captures the result.
func (s *Server) runLayout(ctx context.Context, g *graph.Graph, name string) (*store.Layout, error) {
	runner, err := layout.NewRunner(g, layout.Options{
		Engine:   layout.EngineOptions{Binary: s.cfg.Engine.Binary},
		Cache:    s.cache,
		Keyer:    s.keyer,
		CacheTTL: s.cfg.Cache.TTL.Duration,
		Logger:   s.logger,
	})
	if err != nil {
		return nil, err
	}
	defer runner.Close()
	if err := runner.Layout(ctx); err != nil {
		return nil, err
	}
	return store.Snapshot(g, name), nil
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	g, err := s.readGraph(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	doc, err := s.runLayout(r.Context(), g, "")
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: doc})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var document string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		g, err := s.readGraph(r)
		if err != nil {
			s.writeError(w, err)
			return
		}
		document = dot.Encode(g)
	} else {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			s.writeError(w, errs.Wrap(errs.ErrCodeInvalidInput, err, "read request body"))
			return
		}
		document = string(raw)
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.cfg.Render.Format
	}
	out, err := render.Preview(r.Context(), document, format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", render.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// requireStore guards the persistence endpoints when the server runs
// without a configured layout store.
func (s *Server) requireStore() (store.Store, error) {
	if s.store == nil {
		return nil, errs.New(errs.ErrCodeStoreUnavailable, "no layout store configured")
	}
	return s.store, nil
}

func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	st, err := s.requireStore()
	if err != nil {
		s.writeError(w, err)
		return
	}
	name := chi.URLParam(r, "name")
	if err := errs.ValidateLayoutName(name); err != nil {
		s.writeError(w, err)
		return
	}
	g, err := s.readGraph(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	doc, err := s.runLayout(r.Context(), g, name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := st.Save(r.Context(), doc); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataResponse{Data: doc})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	st, err := s.requireStore()
	if err != nil {
		s.writeError(w, err)
		return
	}
	doc, err := st.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: doc})
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	st, err := s.requireStore()
	if err != nil {
		s.writeError(w, err)
		return
	}
	names, err := st.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: struct {
		Names []string `json:"names"`
		Total int      `json:"total"`
	}{Names: names, Total: len(names)}})
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	st, err := s.requireStore()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := st.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
