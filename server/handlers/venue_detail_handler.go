package handlers

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"lapangin-web/api/lapangin"
	"lapangin-web/catalog"
	"lapangin-web/config"
	"lapangin-web/controller"
	"lapangin-web/render"
	"lapangin-web/util"
)

const (
	ID_PATH_VAR      = "id"
	RATING_FORM_ARG  = "rating"
	COMMENT_FORM_ARG = "comment"
)

type VenueDetailHandler struct {
	loader      *controller.DetailLoader
	venues      controller.VenueLookup
	lapanginApi lapangin.LapanginAPI
	renderer    *render.Renderer
}

func NewVenueDetailHandler(
	loader *controller.DetailLoader,
	venues controller.VenueLookup,
	lapanginApi lapangin.LapanginAPI,
	renderer *render.Renderer) *VenueDetailHandler {

	return &VenueDetailHandler{
		loader:      loader,
		venues:      venues,
		lapanginApi: lapanginApi,
		renderer:    renderer,
	}
}

// Detail handles GET /lapangan/{id}/
func (h *VenueDetailHandler) Detail(w http.ResponseWriter, r *http.Request) {
	page := h.renderer.NewDetailPage()
	h.loader.Load(r.Context(), page, r.URL.EscapedPath())
	h.writePage(w, r, page)
}

// Reviews handles GET /lapangan/{id}/reviews and returns only the section.
func (h *VenueDetailHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	page := h.renderer.NewDetailPage()
	h.loader.LoadReviews(r.Context(), page, mux.Vars(r)[ID_PATH_VAR])
	writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Reviews(out, page)
	})
}

// SubmitReview handles POST /lapangan/{id}/reviews and answers with the
// whole detail page so the outcome toast is visible.
func (h *VenueDetailHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	venueID := mux.Vars(r)[ID_PATH_VAR]
	// an unparsable rating stays 0 and fails validation
	rating, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue(RATING_FORM_ARG)))
	detailPath := config.DETAIL_ROUTE + "/" + url.PathEscape(venueID) + "/"

	page := h.renderer.NewDetailPage()
	h.loader.SubmitReview(r.Context(), page, detailPath, rating, r.PostFormValue(COMMENT_FORM_ARG))
	if page.Location != "" {
		log.Printf("[VenueDetailHandler] Redirecting to %s", page.Location)
		http.Redirect(w, r, page.Location, http.StatusSeeOther)
		return
	}
	h.writePage(w, r, page)
}

// Ratings handles GET /lapangan/{id}/ratings with an echarts breakdown.
func (h *VenueDetailHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[ID_PATH_VAR]

	reviews, err := h.lapanginApi.GetReviews(r.Context(), venueID)
	if err != nil {
		log.Printf("[VenueDetailHandler] Failed to load reviews for %s: %v", venueID, err)
		http.Error(w, controller.MsgReviewsLoadFailed, http.StatusBadGateway)
		return
	}

	name := venueID
	if v, err := h.venues.GetVenue(r.Context(), venueID); err == nil && v.Name != "" {
		name = v.Name
	}

	writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return util.RenderRatingBreakdown(out, name, catalog.SummarizeReviews(reviews))
	})
}

func (h *VenueDetailHandler) writePage(w http.ResponseWriter, r *http.Request, page *render.DetailPage) {
	page.CSRFToken = csrfToken(r)
	status := http.StatusOK
	if page.NotFound != "" {
		status = http.StatusNotFound
	}
	writeHTML(w, status, func(out io.Writer) error {
		return h.renderer.DetailPage(out, page)
	})
}
