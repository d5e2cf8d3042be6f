package server

import (
	"net/http"

	"partypilot/server/handlers"

	"github.com/gorilla/mux"
)

// VenueRoutes is the venue handler surface the router registers.
type VenueRoutes interface {
	CreateVenue(w http.ResponseWriter, r *http.Request)
	ListVenues(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	UpdateVenue(w http.ResponseWriter, r *http.Request)
	DeleteVenue(w http.ResponseWriter, r *http.Request)
}

// TripRoutes is the trip handler surface the router registers.
type TripRoutes interface {
	PlanTrip(w http.ResponseWriter, r *http.Request)
	ListTrips(w http.ResponseWriter, r *http.Request)
	GetTrip(w http.ResponseWriter, r *http.Request)
	DeleteTrip(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueRoutes
	tripHandler  TripRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueRoutes,
	tripHandler TripRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		tripHandler:  tripHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/trips/plan", r.tripHandler.PlanTrip).Methods("POST")
	r.router.HandleFunc("/v1/trips", r.tripHandler.ListTrips).Methods("GET")
	r.router.HandleFunc("/v1/trips/{id}", r.tripHandler.GetTrip).Methods("GET")
	r.router.HandleFunc("/v1/trips/{id}", r.tripHandler.DeleteTrip).Methods("DELETE")

	r.router.HandleFunc("/v1/venues", r.venueHandler.CreateVenue).Methods("POST")
	r.router.HandleFunc("/v1/venues", r.venueHandler.ListVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.UpdateVenue).Methods("PUT")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.DeleteVenue).Methods("DELETE")

	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")
}
