// Package httpapi exposes the document store over HTTP and provides the
// matching client. The wire format is the document JSON shape; errors come
// back as {"error": "..."} with a meaningful status code.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/invoicekit/invoicekit"
	"github.com/invoicekit/invoicekit/internal/debug"
	"github.com/invoicekit/invoicekit/store"
)

// Server serves the document CRUD API over a store.Store.
type Server struct {
	store  store.Store
	router *mux.Router
}

// NewServer creates a Server over the given store.
func NewServer(st store.Store) *Server {
	s := &Server{store: st, router: mux.NewRouter()}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/documents", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/documents", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/documents/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id}", s.handleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/documents/{id}", s.handleDelete).Methods(http.MethodDelete)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []invoicekit.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var doc invoicekit.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid document body"})
		return
	}
	created, err := s.store.Create(r.Context(), doc)
	if err != nil {
		writeError(w, err)
		return
	}
	debug.Log("httpapi: created document %s", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var doc invoicekit.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid document body"})
		return
	}
	// The path is authoritative for the id.
	doc.ID = mux.Vars(r)["id"]
	updated, err := s.store.Update(r.Context(), doc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		debug.Log("httpapi: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
	}
	debug.Log("httpapi: request failed (%d): %v", status, err)
	writeJSON(w, status, errorBody{Error: err.Error()})
}
