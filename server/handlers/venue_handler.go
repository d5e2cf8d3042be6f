package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"partypilot/dao/postgres"
	"partypilot/models"
	"partypilot/models/venue"
	services "partypilot/service"

	"github.com/gorilla/mux"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VenueHandler exposes venue CRUD over HTTP.
type VenueHandler struct {
	venueService *services.VenueService
}

// NewVenueHandler constructs a VenueHandler.
func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// CreateVenue handles POST /v1/venues.
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var v venue.Venue
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if v.VenueName == "" || v.City == "" {
		writeError(w, http.StatusBadRequest, "venue_name and city are required")
		return
	}

	created, err := h.venueService.CreateVenue(r.Context(), v)
	if err != nil {
		log.Println("Error creating venue:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListVenues handles GET /v1/venues.
// Supports ?city=&tag=&price_level=&group_friendly=&rating_min=
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	params := models.VenueListParamsFromValues(r.URL.Query())

	venues, err := h.venueService.ListVenues(r.Context(), params)
	if err != nil {
		log.Println("Error listing venues:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, venues)
}

// GetVenue handles GET /v1/venues/{id}.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := h.venueService.GetVenue(r.Context(), id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, http.StatusNotFound, "venue not found")
			return
		}
		log.Println("Error getting venue:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// UpdateVenue handles PUT /v1/venues/{id}.
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	var v venue.Venue
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	v.VenueID = mux.Vars(r)["id"]

	updated, err := h.venueService.UpdateVenue(r.Context(), v)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, http.StatusNotFound, "venue not found")
			return
		}
		log.Println("Error updating venue:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteVenue handles DELETE /v1/venues/{id}.
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.venueService.DeleteVenue(r.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, http.StatusNotFound, "venue not found")
			return
		}
		log.Println("Error deleting venue:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
