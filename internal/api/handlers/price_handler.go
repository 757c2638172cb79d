package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/rutvikm/agri-price-be/internal/services"
)

// PriceHandler handles the public read endpoints over price records.
type PriceHandler struct {
	service services.PriceServiceProvider
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(service services.PriceServiceProvider) *PriceHandler {
	return &PriceHandler{service: service}
}

// Markets returns the district-to-sorted-markets mapping.
func (h *PriceHandler) Markets(w http.ResponseWriter, r *http.Request) {
	markets, err := h.service.MarketsByDistrict()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load markets by district")
		respondError(w, http.StatusInternalServerError, "Failed to load markets")
		return
	}
	respondJSON(w, http.StatusOK, markets)
}

// DropdownData returns distinct vegetable names plus the district-to-markets
// mapping in one payload.
func (h *PriceHandler) DropdownData(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.DropdownData()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load dropdown data")
		respondError(w, http.StatusInternalServerError, "Failed to load dropdown data")
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// Search passes the request's query parameters straight through as an
// equality filter. Unknown parameter names are ignored by the store layer.
func (h *PriceHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}

	records, err := h.service.Search(filter)
	if err != nil {
		log.Error().Err(err).Msg("Search query failed")
		respondError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	respondJSON(w, http.StatusOK, records)
}
