package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/nestlist/nestlist/internal/middleware"
)

//go:embed templates static
var assetsFS embed.FS

// standalone pages render without the site layout.
var standalone = map[string]string{
	"login.html":  "login",
	"signup.html": "signup",
}

// baseData seeds the template context every page shares: the session
// principal (for the nav) under "User".
func baseData(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"User": middleware.Principal(r.Context()),
	}
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	renderStatus(w, http.StatusOK, name, data)
}

// renderStatus writes status and executes the named page template, wrapped in
// the layout unless the page is standalone.
func renderStatus(w http.ResponseWriter, status int, name string, data interface{}) {
	content, err := assetsFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if root, ok := standalone[name]; ok {
		t := template.Must(template.New("").Parse(string(content)))
		w.WriteHeader(status)
		if err := t.ExecuteTemplate(w, root, data); err != nil {
			slog.Error("template execute", "template", name, "error", err)
		}
		return
	}

	layout, _ := assetsFS.ReadFile("templates/layout.html")
	t := template.Must(template.New("").Parse(string(layout)))
	t = template.Must(t.New("").Parse(string(content)))
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("template execute", "template", name, "error", err)
	}
}
