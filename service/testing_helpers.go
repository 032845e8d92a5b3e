package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/storage"
)

// newStubBackend serves just enough of the StudyBlog backend API for route
// tests. Accounts are implicit: any email logs in with password "secret", and
// the email's local part before "@" picks the role ("admin@…" is an admin).
func newStubBackend(t *testing.T) *httptest.Server {
	t.Helper()

	userFor := func(email string) api.User {
		role := "user"
		switch {
		case strings.HasPrefix(email, "super@"):
			role = "super_admin"
		case strings.HasPrefix(email, "admin@"):
			role = "admin"
		}
		return api.User{
			ID:    "id-" + email,
			Name:  "Test User",
			Email: email,
			Role:  role,
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			AccessToken: "tok-" + body.Email,
			User:        userFor(body.Email),
		})
	})
	mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !strings.HasPrefix(token, "tok-") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(userFor(strings.TrimPrefix(token, "tok-")))
	})
	mux.HandleFunc("GET /posts/paginated", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.PaginatedPosts{Page: 1, Limit: 10, TotalPages: 0})
	})
	mux.HandleFunc("GET /posts/slug/{slug}", func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		_ = json.NewEncoder(w).Encode(api.Post{
			ID:       "post-" + slug,
			Slug:     slug,
			Title:    "Stubbed post",
			Text:     "Body of the stubbed post.",
			AuthorID: "id-user@example.com",
			Author:   userFor("user@example.com"),
		})
	})
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.User{
			userFor("user@example.com"),
			userFor("admin@example.com"),
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// setupTestEcho wires a full service against the stub backend and an
// in-memory store, mirroring the route registration in main.
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	backend := newStubBackend(t)

	store, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "0",
		BaseURL:     "http://localhost:8080",
		APIURL:      backend.URL,
	}
	config.Session.Secret = "test-secret-key"
	config.Upload.MaxSize = 1 << 20

	e := echo.New()
	e.HideBanner = true

	svc := New(store, config)
	svc.RegisterRoutes(e)
	return e, svc
}

// loginAs performs a real login round trip and returns the session cookies.
func loginAs(t *testing.T, e *echo.Echo, email string) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", email)
	form.Set("password", "secret")

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code, "login must redirect on success")
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "login must issue a session cookie")
	return cookies
}
