package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"lapangin-web/api"
	"lapangin-web/api/lapangin"
	"lapangin-web/catalog"
	"lapangin-web/controller"
	"lapangin-web/models"
	"lapangin-web/models/venue"
	"lapangin-web/render"
	"lapangin-web/server/session"
)

const (
	VIEW_QUERY_ARG = "view"
	PAGE_PATH_VAR  = "page"
)

// SnapshotSource provides the venue list injected into new list pages.
type SnapshotSource interface {
	GetSnapshot() []venue.Venue
}

// VenueHandler serves the listing page and its swappable fragments.
type VenueHandler struct {
	lapanginApi lapangin.LapanginAPI
	snapshots   SnapshotSource
	views       *session.ViewStore
	renderer    *render.Renderer
}

func NewVenueHandler(
	lapanginApi lapangin.LapanginAPI,
	snapshots SnapshotSource,
	views *session.ViewStore,
	renderer *render.Renderer) *VenueHandler {

	return &VenueHandler{
		lapanginApi: lapanginApi,
		snapshots:   snapshots,
		views:       views,
		renderer:    renderer,
	}
}

// ListPage handles GET /lapangan/ by opening a new page view.
func (h *VenueHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	snapshot := h.snapshots.GetSnapshot()
	c := controller.NewVenueListController(h.lapanginApi, snapshot)
	viewID := h.views.Create(c)

	fragment := h.renderer.NewListFragment(viewID)
	c.Bootstrap(r.Context(), fragment)

	categorySource := snapshot
	if len(categorySource) == 0 {
		categorySource = c.Venues()
	}
	page := render.NewListPage(fragment, c.Query(), catalog.Categories(categorySource))
	writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.ListPage(out, page)
	})
}

// Search handles GET /lapangan/list/search.
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(ctx context.Context, c *controller.VenueListController, f *render.ListFragment) controller.LoadOutcome {
		return c.SubmitFilters(ctx, f, models.VenueQueryFromValues(r.URL.Query()))
	})
}

// Category handles GET /lapangan/list/category.
func (h *VenueHandler) Category(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(ctx context.Context, c *controller.VenueListController, f *render.ListFragment) controller.LoadOutcome {
		return c.ChangeCategory(ctx, f, models.VenueQueryFromValues(r.URL.Query()))
	})
}

// Sort handles GET /lapangan/list/sort.
func (h *VenueHandler) Sort(w http.ResponseWriter, r *http.Request) {
	h.withView(w, r, func(ctx context.Context, c *controller.VenueListController, f *render.ListFragment) controller.LoadOutcome {
		return c.ChangeSort(ctx, f, models.VenueQueryFromValues(r.URL.Query()), r.URL.Query().Get(models.SortArg))
	})
}

// Page handles GET /lapangan/list/page/{page}.
func (h *VenueHandler) Page(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(mux.Vars(r)[PAGE_PATH_VAR])
	if err != nil {
		http.Error(w, "Invalid argument "+PAGE_PATH_VAR, http.StatusBadRequest)
		return
	}
	h.withView(w, r, func(ctx context.Context, c *controller.VenueListController, f *render.ListFragment) controller.LoadOutcome {
		return c.GoToPage(ctx, f, page)
	})
}

// withView runs load against the page view named by the view query arg and
// writes the resulting fragment. Superseded and ignored loads get 204 so the
// browser keeps what it shows.
func (h *VenueHandler) withView(
	w http.ResponseWriter,
	r *http.Request,
	load func(context.Context, *controller.VenueListController, *render.ListFragment) controller.LoadOutcome) {

	viewID := r.URL.Query().Get(VIEW_QUERY_ARG)
	c, ok := h.views.Get(viewID)
	if !ok {
		http.Error(w, "Unknown page view", http.StatusNotFound)
		return
	}

	fragment := h.renderer.NewListFragment(viewID)
	outcome := load(r.Context(), c, fragment)
	if outcome == controller.LoadSuperseded || outcome == controller.LoadIgnored {
		log.Printf("[VenueHandler] Load for view %s %s", viewID, outcome)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.ListFragment(out, fragment)
	})
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

// csrfToken is the token the credentials middleware accepted or issued.
func csrfToken(r *http.Request) string {
	creds, _ := api.CredentialsFrom(r.Context())
	return creds.CSRFToken
}

// writeHTML sends the rendered body with status, or a 500 when rendering fails.
func writeHTML(w http.ResponseWriter, status int, renderBody func(io.Writer) error) {
	var buf bytes.Buffer
	if err := renderBody(&buf); err != nil {
		log.Println("Error rendering response:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
