package handlers

import (
	"io"
	"net/http"
	"strings"

	"lapangin-web/controller"
	"lapangin-web/models"
	"lapangin-web/render"
)

type ProfileHandler struct {
	controller *controller.ProfileController
	renderer   *render.Renderer
}

func NewProfileHandler(profileController *controller.ProfileController, renderer *render.Renderer) *ProfileHandler {
	return &ProfileHandler{controller: profileController, renderer: renderer}
}

// Show handles GET /profile/
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	page := h.renderer.NewProfilePage()
	h.controller.Load(r.Context(), page)
	h.writePage(w, r, page)
}

// Save handles POST /profile/
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	profile := models.Profile{
		FirstName:   strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:    strings.TrimSpace(r.PostFormValue("last_name")),
		Email:       strings.TrimSpace(r.PostFormValue("email")),
		PhoneNumber: strings.TrimSpace(r.PostFormValue("phone_number")),
		Address:     strings.TrimSpace(r.PostFormValue("address")),
	}

	page := h.renderer.NewProfilePage()
	h.controller.Save(r.Context(), page, profile)
	if page.Profile == nil {
		// keep what the user typed when the save failed
		page.ShowProfile(profile)
	}
	h.writePage(w, r, page)
}

// Delete handles POST /profile/delete
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page := h.renderer.NewProfilePage()
	h.controller.Delete(r.Context(), page)
	if page.Location != "" {
		http.Redirect(w, r, page.Location, http.StatusSeeOther)
		return
	}
	h.controller.Load(r.Context(), page)
	h.writePage(w, r, page)
}

func (h *ProfileHandler) writePage(w http.ResponseWriter, r *http.Request, page *render.ProfilePage) {
	page.CSRFToken = csrfToken(r)
	writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.ProfilePage(out, page)
	})
}
