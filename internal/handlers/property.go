package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nestlist/nestlist/internal/metrics"
	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/repo"
)

// ==========================
// Property Handler
// ==========================
type PropertyHandler struct {
	Store PropertyStore
}

// ==========================
// Create Property
// ==========================

// Create handles the add-property form. The form submits one image reference;
// the record keeps an ordered list.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	price, err := strconv.Atoi(strings.TrimSpace(r.FormValue("price")))
	if err != nil {
		http.Error(w, "Price must be a number", http.StatusBadRequest)
		return
	}

	property := &models.Property{
		Title:       title,
		Description: r.FormValue("description"),
		Price:       price,
		Images:      []string{},
	}
	if image := strings.TrimSpace(r.FormValue("image")); image != "" {
		property.Images = []string{image}
	}

	if _, err := h.Store.Create(r.Context(), property); err != nil {
		serverError(w, r, err)
		return
	}

	metrics.IncListingWrite("property", "create")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// ==========================
// Property Detail
// ==========================
func (h *PropertyHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	property, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrMalformedID):
			http.Error(w, "Invalid property ID format", http.StatusBadRequest)
		case errors.Is(err, repo.ErrNotFound):
			http.Error(w, "Property not found", http.StatusNotFound)
		default:
			serverError(w, r, err)
		}
		return
	}

	data := baseData(r)
	data["Property"] = property
	renderTemplate(w, "property_detail.html", data)
}

// ==========================
// Edit Property
// ==========================

func (h *PropertyHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	property, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrMalformedID):
			http.Error(w, "Invalid property ID format", http.StatusBadRequest)
		case errors.Is(err, repo.ErrNotFound):
			http.Error(w, "Property not found", http.StatusNotFound)
		default:
			serverError(w, r, err)
		}
		return
	}

	data := baseData(r)
	data["Property"] = property
	renderTemplate(w, "property_edit.html", data)
}

// Update applies the edit form. A well-formed id that matches no record is a
// silent no-op, mirroring the store's unchecked update.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	price, err := strconv.Atoi(strings.TrimSpace(r.FormValue("price")))
	if err != nil {
		http.Error(w, "Price must be a number", http.StatusBadRequest)
		return
	}

	fields := bson.M{
		"title":       strings.TrimSpace(r.FormValue("title")),
		"description": r.FormValue("description"),
		"price":       price,
	}
	// A blank image field means "keep the current images".
	if image := strings.TrimSpace(r.FormValue("image")); image != "" {
		fields["images"] = []string{image}
	}

	if err := h.Store.Update(r.Context(), id, fields); err != nil {
		if errors.Is(err, repo.ErrMalformedID) {
			http.Error(w, "Invalid property ID format", http.StatusBadRequest)
			return
		}
		serverError(w, r, err)
		return
	}

	metrics.IncListingWrite("property", "update")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// ==========================
// Delete Property
// ==========================

// Delete removes the property. Dependent roommate records are left untouched:
// propertyTitle is a free-text label, not a reference.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrMalformedID) {
			http.Error(w, "Invalid property ID format", http.StatusBadRequest)
			return
		}
		serverError(w, r, err)
		return
	}

	metrics.IncListingWrite("property", "delete")
	http.Redirect(w, r, "/admin", http.StatusFound)
}
