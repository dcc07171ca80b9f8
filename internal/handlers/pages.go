package handlers

import (
	"net/http"
)

// ==========================
// Page Handler
// ==========================

// PageHandler serves the listing pages: home, dashboard, and admin. All three
// show the same two collections; only their templates and gates differ.
type PageHandler struct {
	Properties PropertyStore
	Roommates  RoommateStore
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, "index.html")
}

// Dashboard is session-gated by the router.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, "dashboard.html")
}

// Admin is admin-gated by the router and carries the management forms.
func (h *PageHandler) Admin(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, "admin.html")
}

func (h *PageHandler) listing(w http.ResponseWriter, r *http.Request, name string) {
	properties, err := h.Properties.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	roommates, err := h.Roommates.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	data := baseData(r)
	data["Properties"] = properties
	data["Roommates"] = roommates
	renderTemplate(w, name, data)
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderStatus(w, http.StatusNotFound, "notfound.html", baseData(r))
}
