package handlers

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nestlist/nestlist/internal/config"
	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/internal/session"
)

// NewRouter builds the canonical route table. Dispatch is static; the only
// middleware beyond body limits, logging, and session attachment are the two
// gates (RequireSession on /dashboard, RequireAdmin on /admin).
func NewRouter(
	cfg config.Config,
	sessions *session.Manager,
	auth *AuthHandler,
	pages *PageHandler,
	properties *PropertyHandler,
	roommates *RoommateHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.Prod()))
	r.Use(middleware.Prometheus)
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
	r.Use(middleware.WithSession(sessions))

	// Public pages
	r.Get("/", pages.Home)
	r.Get("/signup", auth.SignupForm)
	r.Post("/signup", auth.Signup)
	r.Get("/login", auth.LoginForm)
	r.Post("/login", auth.Login)
	r.Get("/logout", auth.Logout)

	// Gated listings
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/dashboard", pages.Dashboard)
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(cfg.AdminEmail))
		r.Get("/admin", pages.Admin)
	})

	// Listing management forms
	r.Post("/add-property", properties.Create)
	r.Get("/edit-property/{id}", properties.EditForm)
	r.Post("/edit-property/{id}", properties.Update)
	r.Post("/delete-property/{id}", properties.Delete)

	r.Post("/add-roommate", roommates.Create)
	r.Get("/edit-roommate/{id}", roommates.EditForm)
	r.Post("/edit-roommate/{id}", roommates.Update)
	r.Post("/delete-roommate/{id}", roommates.Delete)

	// Detail pages
	r.Get("/property/{id}", properties.Detail)
	r.Get("/roommate/{id}", roommates.Detail)

	r.Handle("/metrics", promhttp.Handler())

	static, _ := fs.Sub(assetsFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.NotFound(pages.NotFound)

	return r
}
