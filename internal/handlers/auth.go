package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/internal/repo"
	"github.com/nestlist/nestlist/internal/session"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Users    UserStore
	Sessions *session.Manager
}

// ==========================
// Signup (password stored as bcrypt hash, cost 10)
// ==========================

func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if middleware.Principal(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	renderTemplate(w, "signup.html", map[string]interface{}{})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	input := struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	// ===== Validate input =====
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		renderStatus(w, http.StatusBadRequest, "signup.html", map[string]interface{}{
			"Error": "Enter a valid email and a password of at least 6 characters",
			"Email": input.Email,
		})
		return
	}

	// Duplicate pre-check; the unique index backstops the race.
	_, err := h.Users.GetByEmail(r.Context(), input.Email)
	if err == nil {
		renderStatus(w, http.StatusConflict, "signup.html", map[string]interface{}{
			"Error": "An account with that email already exists",
			"Email": input.Email,
		})
		return
	}
	if !errors.Is(err, repo.ErrNotFound) {
		serverError(w, r, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if _, err := h.Users.Create(r.Context(), input.Email, string(hash)); err != nil {
		if errors.Is(err, repo.ErrDuplicateUser) {
			renderStatus(w, http.StatusConflict, "signup.html", map[string]interface{}{
				"Error": "An account with that email already exists",
				"Email": input.Email,
			})
			return
		}
		serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// ==========================
// Login
// ==========================

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.Principal(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	renderTemplate(w, "login.html", map[string]interface{}{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.Users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			h.invalidCredentials(w, email)
			return
		}
		serverError(w, r, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		h.invalidCredentials(w, email)
		return
	}

	if err := h.Sessions.Start(r.Context(), w, user); err != nil {
		serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// invalidCredentials re-renders the login form with a 401. Unknown email and
// wrong password are indistinguishable to the client.
func (h *AuthHandler) invalidCredentials(w http.ResponseWriter, email string) {
	renderStatus(w, http.StatusUnauthorized, "login.html", map[string]interface{}{
		"Error": "Invalid credentials",
		"Email": email,
	})
}

// ==========================
// Logout
// ==========================

// Logout destroys the session unconditionally and sends the caller home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(r.Context(), w, r); err != nil {
		// The cookie is gone either way; losing the store row only delays the purge.
		serverErrorLog(r, err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
