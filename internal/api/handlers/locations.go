package handlers

import (
	"log"
	"net/http"
	"strings"

	"vacation-planner-service/internal/api/dto"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
)

type LocationHandler struct {
	Searcher ports.LocationSearcher
}

// Search looks up candidate locations by free-text query, optionally
// narrowed to one location type.
func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	typeFilter := domain.LocationType(r.URL.Query().Get("type"))
	switch typeFilter {
	case "", domain.LocationTypeStandard, domain.LocationTypeHiddenGem:
	default:
		writeError(w, r, http.StatusBadRequest, "type must be standard or hidden_gem")
		return
	}

	locations, err := h.Searcher.Search(r.Context(), query, typeFilter)
	if err != nil {
		log.Printf("location search failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{Locations: make([]dto.LocationResponse, 0, len(locations))}
	for _, l := range locations {
		res.Locations = append(res.Locations, dto.LocationResponse{
			LocationID:           l.LocationID,
			Name:                 l.Name,
			Type:                 string(l.Type),
			Category:             l.Category,
			City:                 l.City,
			Country:              l.Country,
			Latitude:             l.Latitude,
			Longitude:            l.Longitude,
			TypicalVisitDuration: l.TypicalVisitDuration,
			Description:          l.Description,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}
