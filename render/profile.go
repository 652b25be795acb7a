package render

import "lapangin-web/models"

// ProfilePage collects what the profile controller shows.
type ProfilePage struct {
	Page
	Profile  *models.Profile
	Location string
}

func (r *Renderer) NewProfilePage() *ProfilePage {
	return &ProfilePage{Page: Page{Title: "Profil", Static: r.staticBase}}
}

func (p *ProfilePage) ShowProfile(profile models.Profile) {
	p.Profile = &profile
}

func (p *ProfilePage) Redirect(location string) {
	p.Location = location
}
