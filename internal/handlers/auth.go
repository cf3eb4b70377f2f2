package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"oleum/internal/assignment"
	"oleum/internal/catalog"
	applog "oleum/internal/log"
	"oleum/internal/repository"
	"oleum/internal/search"
	"oleum/internal/validation"
	"oleum/models"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionLoginMessageKey  = "auth:message"
	sessionUserIDKey        = "auth:user:id"
	sessionUserEmailKey     = "auth:user:email"
	sessionUserNameKey      = "auth:user:name"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	repos          repository.Repositories
	services       catalog.Services
	assignments    *assignment.Manager
	searchEngine   *search.Engine
)

// Configure installs the shared dependencies used by the HTTP handlers. A nil
// database leaves the catalog and search endpoints unavailable.
func Configure(sm *scs.SessionManager, db *gorm.DB, opts ...search.Option) {
	sessionManager = sm
	database = db
	if db == nil {
		repos = repository.Repositories{}
		services = catalog.Services{}
		assignments = nil
		searchEngine = nil
		return
	}
	repos = repository.New(db)
	services = catalog.NewServices(repos, applog.Logger())
	assignments = assignment.NewManager(repos, applog.Logger())
	searchEngine = search.NewEngine(repos, append([]search.Option{search.WithLogger(applog.Logger())}, opts...)...)
}

func createUser(r *http.Request, email, name, password string) (*models.User, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hashed),
	}

	if result := repos.Users.Insert(r.Context(), user); result.HasErrors() {
		return nil, errors.New(result.First())
	}

	return user, nil
}

func findUserByEmail(r *http.Request, email string) (*models.User, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("user without email: %w", validation.ErrNotFound)
	}

	users, err := repos.Users.GetByFilter(r.Context(), repository.UserFilter{Email: email})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user %q: %w", strings.ToLower(email), validation.ErrNotFound)
	}
	return &users[0], nil
}

// authenticate verifies the provided credentials and populates the session if successful.
func authenticate(w http.ResponseWriter, r *http.Request, email, password string) bool {
	if sessionManager == nil {
		http.Error(w, "authentication not available", http.StatusServiceUnavailable)
		return false
	}

	user, err := findUserByEmail(r, email)
	if err != nil {
		if errors.Is(err, validation.ErrNotFound) {
			sessionManager.Put(r.Context(), sessionLoginMessageKey, "Invalid email or password. Please try again.")
		} else {
			applog.Error(r.Context(), "failed to load user during login", "error", err)
			sessionManager.Put(r.Context(), sessionLoginMessageKey, "We were unable to sign you in. Please try again.")
		}
		return false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		sessionManager.Put(r.Context(), sessionLoginMessageKey, "Invalid email or password. Please try again.")
		return false
	}

	if err := establishSession(r, user); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		sessionManager.Put(r.Context(), sessionLoginMessageKey, "We were unable to sign you in. Please try again.")
		return false
	}

	return true
}

func establishSession(r *http.Request, user *models.User) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		return err
	}
	sessionManager.Put(r.Context(), sessionAuthenticatedKey, true)
	sessionManager.Put(r.Context(), sessionUserIDKey, user.ID)
	sessionManager.Put(r.Context(), sessionUserEmailKey, user.Email)
	sessionManager.Put(r.Context(), sessionUserNameKey, user.Name)
	return nil
}

// RequireAuthentication ensures the user has an active session before accessing the resource.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			if strings.HasPrefix(r.URL.Path, "/app/api/") {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			redirect(w, r, loginURL(r.URL.RequestURI()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logout destroys the current session and redirects the user to the login screen.
func Logout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sessionManager != nil {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}

	redirectToLogin(w, r)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/login")
}

// loginURL points at the login page, asking it to return to target afterwards.
func loginURL(target string) string {
	if returnTarget(target) == "/app" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(target)
}

// returnTarget accepts local paths only; anything else falls back to /app.
func returnTarget(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/app"
	}
	if path := strings.SplitN(raw, "?", 2)[0]; path == "/login" || path == "/logout" || path == "/signup" {
		return "/app"
	}
	return raw
}

func redirectToApp(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/app")
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// ActiveSession returns true when the current request has an authenticated session.
func ActiveSession(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	_, ok := currentUserID(r)
	return ok && sessionManager.GetBool(r.Context(), sessionAuthenticatedKey)
}

func currentUserID(r *http.Request) (string, bool) {
	if sessionManager == nil {
		return "", false
	}
	id := sessionManager.GetString(r.Context(), sessionUserIDKey)
	return id, id != ""
}
