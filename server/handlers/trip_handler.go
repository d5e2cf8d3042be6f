package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"partypilot/dao/postgres"
	"partypilot/models"
	services "partypilot/service"

	"github.com/gorilla/mux"
)

// TripHandler exposes trip planning and trip CRUD over HTTP.
type TripHandler struct {
	tripService *services.TripService
}

// NewTripHandler constructs a TripHandler.
func NewTripHandler(tripService *services.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// PlanTrip handles POST /v1/trips/plan. The prompt can be arbitrarily vague;
// planning only fails when the storage layer does.
func (h *TripHandler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req models.PlanTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	resp, err := h.tripService.PlanTrip(r.Context(), req)
	if err != nil {
		log.Println("Error planning trip:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// ListTrips handles GET /v1/trips.
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.tripService.ListTrips(r.Context())
	if err != nil {
		log.Println("Error listing trips:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /v1/trips/{id}.
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	trip, err := h.tripService.GetTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		log.Println("Error getting trip:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /v1/trips/{id}.
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.tripService.DeleteTrip(r.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		log.Println("Error deleting trip:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
