package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/rutvikm/agri-price-be/internal/auth"
	"github.com/rutvikm/agri-price-be/internal/models"
	"github.com/rutvikm/agri-price-be/internal/services"
)

// AdminHandler handles the credential-gated CRUD over price records. All
// operations run behind auth.Middleware, so claims are always present.
type AdminHandler struct {
	service services.PriceServiceProvider
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service services.PriceServiceProvider) *AdminHandler {
	return &AdminHandler{service: service}
}

// List returns the caller's district's records, optionally filtered by the
// market query parameter ("All" means no filter).
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve claims from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve identity")
		return
	}

	records, err := h.service.ListByDistrict(claims.District, r.URL.Query().Get("market"))
	if err != nil {
		log.Error().Err(err).Str("district", claims.District).Msg("Failed to list records")
		respondError(w, http.StatusInternalServerError, "Failed to list records")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// Add creates a record in the caller's district. Any district value in the
// body is overwritten with the authenticated one.
func (h *AdminHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve claims from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve identity")
		return
	}

	var payload models.PriceRecord
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.service.Add(claims.District, payload)
	if err != nil {
		log.Error().Err(err).Str("district", claims.District).Msg("Failed to add record")
		respondError(w, http.StatusInternalServerError, "Failed to add record")
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

// Update overwrites the submitted fields on the record with the given id.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.service.Update(id, fields)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		log.Error().Err(err).Str("record_id", id).Msg("Failed to update record")
		respondError(w, http.StatusInternalServerError, "Failed to update record")
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// Delete removes the record with the given id.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		log.Error().Err(err).Str("record_id", id).Msg("Failed to delete record")
		respondError(w, http.StatusInternalServerError, "Failed to delete record")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Record deleted successfully"})
}
