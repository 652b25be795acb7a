package server

import (
	"github.com/gorilla/mux"

	"lapangin-web/server/handlers"
)

type Router struct {
	venueHandler   *handlers.VenueHandler
	detailHandler  *handlers.VenueDetailHandler
	mitraHandler   *handlers.MitraHandler
	profileHandler *handlers.ProfileHandler
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	venueHandler *handlers.VenueHandler,
	detailHandler *handlers.VenueDetailHandler,
	mitraHandler *handlers.MitraHandler,
	profileHandler *handlers.ProfileHandler,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:   venueHandler,
		detailHandler:  detailHandler,
		mitraHandler:   mitraHandler,
		profileHandler: profileHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestLogger, forwardCredentials)

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")

	// list fragments expect ?view={page view id} plus the filter args;
	// they must be registered before the detail routes
	r.router.HandleFunc("/lapangan/", r.venueHandler.ListPage).Methods("GET")
	r.router.HandleFunc("/lapangan/list/search", r.venueHandler.Search).Methods("GET")
	r.router.HandleFunc("/lapangan/list/category", r.venueHandler.Category).Methods("GET")
	r.router.HandleFunc("/lapangan/list/sort", r.venueHandler.Sort).Methods("GET")
	r.router.HandleFunc("/lapangan/list/page/{page}", r.venueHandler.Page).Methods("GET")

	r.router.HandleFunc("/lapangan/{id}/reviews", r.detailHandler.Reviews).Methods("GET")
	r.router.HandleFunc("/lapangan/{id}/reviews", r.detailHandler.SubmitReview).Methods("POST")
	r.router.HandleFunc("/lapangan/{id}/ratings", r.detailHandler.Ratings).Methods("GET")
	r.router.HandleFunc("/lapangan/{id}/", r.detailHandler.Detail).Methods("GET")

	// expects ?sort={nama|email|status|tanggal_daftar}&dir={asc|desc}
	r.router.HandleFunc("/admin/mitra/", r.mitraHandler.List).Methods("GET")
	r.router.HandleFunc("/admin/mitra/{id}/approve", r.mitraHandler.Approve).Methods("POST")
	r.router.HandleFunc("/admin/mitra/{id}/reject", r.mitraHandler.Reject).Methods("POST")

	r.router.HandleFunc("/profile/", r.profileHandler.Show).Methods("GET")
	r.router.HandleFunc("/profile/", r.profileHandler.Save).Methods("POST")
	r.router.HandleFunc("/profile/delete", r.profileHandler.Delete).Methods("POST")
}
