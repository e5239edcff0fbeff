// Package server exposes the schema document over HTTP: GET /schema returns
// the stored text, POST /schema replaces it. The editor front end is the
// only expected client.
package server

import (
	"io"
	"net/http"

	"github.com/schemacanvas/schemacanvas/internal/store"
	"github.com/schemacanvas/schemacanvas/pkg/sdl"
)

// Mux is the minimal interface required to register the handler. It is
// satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts the schema handler on mux.
func RegisterRoutes(mux Mux, s store.Store) {
	mux.Handle("/schema", Handler(s))
}

// Handler builds the /schema handler over the given store.
func Handler(s store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handleGet(w, r, s)
		case http.MethodPost:
			handlePost(w, r, s)
		default:
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})
}

func handleGet(w http.ResponseWriter, r *http.Request, s store.Store) {
	text, err := s.Load(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// format=canonical pushes the stored text through the transform so the
	// client receives the generator's fixed-point rendering.
	if r.URL.Query().Get("format") == "canonical" {
		doc, err := sdl.Parse(text)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		text = sdl.Generate(doc)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

func handlePost(w http.ResponseWriter, r *http.Request, s store.Store) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	// Stored verbatim: the parse core is best-effort by design, so there is
	// nothing to reject here.
	if err := s.Save(r.Context(), string(body)); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
