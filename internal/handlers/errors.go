package handlers

import (
	"log/slog"
	"net/http"
)

// ErrMessageInternal is the generic message for 500 responses. Do not expose
// internal details to clients; the diagnostic goes to the log instead.
const ErrMessageInternal = "Server Error"

// serverError logs the store failure and sends the generic 500 body.
// Nothing is retried; every handler fails closed on its first store error.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	serverErrorLog(r, err)
	http.Error(w, ErrMessageInternal, http.StatusInternalServerError)
}

// serverErrorLog records a store failure without altering the response, for
// handlers whose outcome does not depend on the failed call.
func serverErrorLog(r *http.Request, err error) {
	slog.Error("store operation failed", "method", r.Method, "path", r.URL.Path, "error", err)
}
