package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetOutline fetches a stored outline from the result store.
func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	store := s.orchestrator.StoreClient()
	if store == nil {
		jsonError(w, "no result store configured", http.StatusNotImplemented)
		return
	}

	docID := chi.URLParam(r, "docID")
	rec, err := store.GetOutline(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to fetch outline: "+err.Error(), http.StatusBadGateway)
		return
	}
	if rec == nil {
		jsonError(w, "outline not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// handleDeleteOutline removes a stored outline from the result store.
func (s *Server) handleDeleteOutline(w http.ResponseWriter, r *http.Request) {
	store := s.orchestrator.StoreClient()
	if store == nil {
		jsonError(w, "no result store configured", http.StatusNotImplemented)
		return
	}

	docID := chi.URLParam(r, "docID")
	if err := store.DeleteOutline(r.Context(), docID); err != nil {
		jsonError(w, "failed to delete outline: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}
