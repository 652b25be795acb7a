package render

// Page carries what every full page layout needs.
type Page struct {
	Title  string
	Static string
	ViewID string
	Toasts []Toast
	// CSRFToken is echoed in every POST form as csrfmiddlewaretoken.
	CSRFToken string
}

// Toast is a transient notification. Kind is success, warning or error.
type Toast struct {
	Kind    string
	Message string
}

// ShowToast queues a notification on the page.
func (p *Page) ShowToast(kind, message string) {
	p.Toasts = append(p.Toasts, Toast{Kind: kind, Message: message})
}
