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
// Roommate Handler
// ==========================
type RoommateHandler struct {
	Store RoommateStore
}

// ==========================
// Create Roommate
// ==========================
func (h *RoommateHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	age, err := strconv.Atoi(strings.TrimSpace(r.FormValue("age")))
	if err != nil {
		http.Error(w, "Age must be a number", http.StatusBadRequest)
		return
	}

	roommate := &models.Roommate{
		Name:          name,
		Age:           age,
		Image:         strings.TrimSpace(r.FormValue("image")),
		PropertyTitle: strings.TrimSpace(r.FormValue("propertyTitle")),
	}

	if _, err := h.Store.Create(r.Context(), roommate); err != nil {
		serverError(w, r, err)
		return
	}

	metrics.IncListingWrite("roommate", "create")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// ==========================
// Roommate Detail
// ==========================
func (h *RoommateHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	roommate, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrMalformedID):
			http.Error(w, "Invalid roommate ID format", http.StatusBadRequest)
		case errors.Is(err, repo.ErrNotFound):
			http.Error(w, "Roommate not found", http.StatusNotFound)
		default:
			serverError(w, r, err)
		}
		return
	}

	data := baseData(r)
	data["Roommate"] = roommate
	renderTemplate(w, "roommate_detail.html", data)
}

// ==========================
// Edit Roommate
// ==========================

func (h *RoommateHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	roommate, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrMalformedID):
			http.Error(w, "Invalid roommate ID format", http.StatusBadRequest)
		case errors.Is(err, repo.ErrNotFound):
			http.Error(w, "Roommate not found", http.StatusNotFound)
		default:
			serverError(w, r, err)
		}
		return
	}

	data := baseData(r)
	data["Roommate"] = roommate
	renderTemplate(w, "roommate_edit.html", data)
}

func (h *RoommateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	age, err := strconv.Atoi(strings.TrimSpace(r.FormValue("age")))
	if err != nil {
		http.Error(w, "Age must be a number", http.StatusBadRequest)
		return
	}

	fields := bson.M{
		"name":          strings.TrimSpace(r.FormValue("name")),
		"age":           age,
		"propertyTitle": strings.TrimSpace(r.FormValue("propertyTitle")),
	}
	if image := strings.TrimSpace(r.FormValue("image")); image != "" {
		fields["image"] = image
	}

	if err := h.Store.Update(r.Context(), id, fields); err != nil {
		if errors.Is(err, repo.ErrMalformedID) {
			http.Error(w, "Invalid roommate ID format", http.StatusBadRequest)
			return
		}
		serverError(w, r, err)
		return
	}

	metrics.IncListingWrite("roommate", "update")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// ==========================
// Delete Roommate
// ==========================
func (h *RoommateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrMalformedID) {
			http.Error(w, "Invalid roommate ID format", http.StatusBadRequest)
			return
		}
		serverError(w, r, err)
		return
	}

	metrics.IncListingWrite("roommate", "delete")
	http.Redirect(w, r, "/admin", http.StatusFound)
}
