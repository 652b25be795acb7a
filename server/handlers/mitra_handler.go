package handlers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"lapangin-web/controller"
	"lapangin-web/models"
	"lapangin-web/render"
)

const (
	DIR_QUERY_ARG   = "dir"
	REASON_FORM_ARG = "reason"
)

type MitraHandler struct {
	controller *controller.MitraTableController
	renderer   *render.Renderer
}

func NewMitraHandler(tableController *controller.MitraTableController, renderer *render.Renderer) *MitraHandler {
	return &MitraHandler{controller: tableController, renderer: renderer}
}

// List handles GET /admin/mitra/?sort=&dir=
func (h *MitraHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.renderer.NewMitraPage()
	h.controller.Load(r.Context(), page, requestedSort(r))
	h.writePage(w, r, page)
}

// Approve handles POST /admin/mitra/{id}/approve
func (h *MitraHandler) Approve(w http.ResponseWriter, r *http.Request) {
	page := h.renderer.NewMitraPage()
	h.controller.Load(r.Context(), page, requestedSort(r))
	h.controller.Approve(r.Context(), page, mux.Vars(r)[ID_PATH_VAR])
	h.writePage(w, r, page)
}

// Reject handles POST /admin/mitra/{id}/reject with an optional reason.
func (h *MitraHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	page := h.renderer.NewMitraPage()
	h.controller.Load(r.Context(), page, requestedSort(r))
	h.controller.Reject(r.Context(), page, mux.Vars(r)[ID_PATH_VAR], r.PostFormValue(REASON_FORM_ARG))
	h.writePage(w, r, page)
}

func (h *MitraHandler) writePage(w http.ResponseWriter, r *http.Request, page *render.MitraPage) {
	page.CSRFToken = csrfToken(r)
	writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.MitraPage(out, page)
	})
}

func requestedSort(r *http.Request) models.MitraSort {
	q := r.URL.Query()
	return models.ParseMitraSort(q.Get(models.SortArg), q.Get(DIR_QUERY_ARG))
}
