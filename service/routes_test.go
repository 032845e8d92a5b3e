package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTier1_CriticalPublicRoutes tests that public routes exist and render
// without a session.
func TestTier1_CriticalPublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		// Core pages
		{"Home page", "GET", "/", http.StatusOK},
		{"Health check", "GET", "/health", http.StatusOK},

		// Posts
		{"Post listing", "GET", "/posts", http.StatusOK},
		{"Post detail", "GET", "/posts/hello-world", http.StatusOK},
		{"Post share QR", "GET", "/posts/hello-world/qr.png", http.StatusOK},
		{"Post PDF export", "GET", "/posts/hello-world/pdf", http.StatusOK},

		// Auth pages
		{"Login page", "GET", "/login", http.StatusOK},
		{"Register page", "GET", "/register", http.StatusOK},
		{"Forgot password page", "GET", "/forgot-password", http.StatusOK},
		{"Reset password page", "GET", "/reset-password", http.StatusOK},
		{"Verify email page", "GET", "/verify-email", http.StatusOK},

		// Generated media
		{"Initials avatar", "GET", "/avatar/Ada%20Lovelace.png", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

// TestTier2_ProtectedRoutesRedirect tests that authenticated-only routes
// bounce anonymous visitors to the login page.
func TestTier2_ProtectedRoutesRedirect(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"Create post page", "GET", "/posts/create"},
		{"Edit post page", "GET", "/posts/hello-world/edit"},
		{"Profile page", "GET", "/profile"},
		{"Admin users page", "GET", "/admin/users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			location := rec.Header().Get("Location")
			assert.True(t, strings.HasPrefix(location, "/login"),
				"Route %s should redirect to login, got %q", tt.path, location)
		})
	}
}

func TestLoginFlowGrantsAccess(t *testing.T) {
	e, _ := setupTestEcho(t)

	cookies := loginAs(t, e, "user@example.com")

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")
}

func TestLoginRejectedStaysOnForm(t *testing.T) {
	e, _ := setupTestEcho(t)

	form := "email=user%40example.com&password=wrong"
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "failed login re-renders the form")
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestAdminRoleGate(t *testing.T) {
	e, _ := setupTestEcho(t)

	get := func(cookies []*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("regular user is denied", func(t *testing.T) {
		rec := get(loginAs(t, e, "user@example.com"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin is allowed", func(t *testing.T) {
		rec := get(loginAs(t, e, "admin@example.com"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("super admin is allowed", func(t *testing.T) {
		rec := get(loginAs(t, e, "super@example.com"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogoutClearsSession(t *testing.T) {
	e, _ := setupTestEcho(t)

	cookies := loginAs(t, e, "user@example.com")

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)

	// Replaying the cleared cookie must not restore the session.
	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/login"))
}
