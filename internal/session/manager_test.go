package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyblog/studyblog-web/internal/api"
)

// stubBackend is a minimal StudyBlog backend: one account, one token. It
// records profile-endpoint hits so tests can assert when restore goes remote.
type stubBackend struct {
	mu          sync.Mutex
	server      *httptest.Server
	user        api.User
	token       string
	profileHits int
	rejectToken bool
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()

	b := &stubBackend{
		token: "tok-test",
		user: api.User{
			ID:    "u1",
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Role:  "user",
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Credenciais inválidas"}`))
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		_ = json.NewEncoder(w).Encode(api.AuthResponse{AccessToken: b.token, User: b.user})
	})
	mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.profileHits++
		if b.rejectToken || r.Header.Get("Authorization") != "Bearer "+b.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(b.user)
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Usuário com este email já existe"}`))
	})
	mux.HandleFunc("POST /auth/reset-password", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Token expired"}`))
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *stubBackend) setUser(u api.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.user = u
}

func (b *stubBackend) hits() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.profileHits
}

func newTestManager(t *testing.T, backend *stubBackend) *Manager {
	t.Helper()
	return NewManager("test-secret-key", api.New(backend.server.URL))
}

// newContext builds an echo context, replaying cookies from earlier responses
// the way a browser would across page loads.
func newContext(method, target string, form url.Values, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginPersistsSession(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, rec := newContext(http.MethodPost, "/login", nil, nil)
	user, err := mgr.Login(c, "ada@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.Name)
	require.NotEmpty(t, rec.Result().Cookies(), "login must write the session cookie")

	// Fresh "page load" with the issued cookie
	c2, _ := newContext(http.MethodGet, "/", nil, rec.Result().Cookies())
	restored := mgr.Restore(c2)
	require.NotNil(t, restored)
	assert.Equal(t, user.ID, restored.ID)
}

func TestLogin401IsAlwaysInvalidCredentials(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, _ := newContext(http.MethodPost, "/login", nil, nil)
	_, err := mgr.Login(c, "ada@example.com", "wrong")

	require.Error(t, err)
	// The backend's own 401 payload is ignored on purpose.
	assert.Equal(t, api.MsgInvalidCredentials, err.Error())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, _ := newContext(http.MethodPost, "/register", nil, nil)
	err := mgr.Register(c, "Ada", "ada@example.com", "secret")

	require.Error(t, err)
	assert.Equal(t, api.MsgDuplicateEmail, err.Error())
}

func TestResetPasswordSurfacesBackendMessage(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, _ := newContext(http.MethodPost, "/reset-password", nil, nil)
	err := mgr.ResetPassword(c, "expired-token", "newpass123")

	require.Error(t, err)
	assert.Equal(t, "Token expired", err.Error())
}

func TestRestoreWithoutTokenIsAnonymousAndLocal(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, _ := newContext(http.MethodGet, "/", nil, nil)
	assert.Nil(t, mgr.Restore(c))
	assert.Zero(t, backend.hits(), "no token must mean no backend call")
}

func TestRestoreRejectedTokenClearsSession(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, rec := newContext(http.MethodPost, "/login", nil, nil)
	_, err := mgr.Login(c, "ada@example.com", "secret")
	require.NoError(t, err)

	backend.rejectToken = true

	c2, rec2 := newContext(http.MethodGet, "/", nil, rec.Result().Cookies())
	assert.Nil(t, mgr.Restore(c2), "rejected token restores to anonymous, silently")

	// The clearing Set-Cookie must have been written.
	cookies := rec2.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.LessOrEqual(t, cookies[0].MaxAge, 0)
}

func TestLogoutIsIdempotent(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, rec := newContext(http.MethodPost, "/login", nil, nil)
	_, err := mgr.Login(c, "ada@example.com", "secret")
	require.NoError(t, err)

	c2, rec2 := newContext(http.MethodGet, "/logout", nil, rec.Result().Cookies())
	mgr.Logout(c2)
	mgr.Logout(c2)

	c3, _ := newContext(http.MethodGet, "/", nil, rec2.Result().Cookies())
	assert.Nil(t, mgr.Restore(c3))

	// Logout never reaches the backend.
	assert.Zero(t, backend.hits())
}

func TestUpdateUserRoundTrip(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)

	c, rec := newContext(http.MethodPost, "/login", nil, nil)
	_, err := mgr.Login(c, "ada@example.com", "secret")
	require.NoError(t, err)

	updated := backend.user
	updated.Bio = "I study compilers"
	updated.Github = "https://github.com/ada"

	c2, rec2 := newContext(http.MethodPost, "/profile", nil, rec.Result().Cookies())
	require.NoError(t, mgr.UpdateUser(c2, &updated))

	cached, ok := mgr.CachedUser(c2)
	require.True(t, ok)
	assert.Equal(t, "I study compilers", cached.Bio)

	// Simulated reload with the backend echoing the updated record.
	backend.setUser(updated)
	c3, _ := newContext(http.MethodGet, "/", nil, rec2.Result().Cookies())
	restored := mgr.Restore(c3)
	require.NotNil(t, restored)
	assert.Equal(t, updated, *restored)
}

func TestCheckVerificationStatusNeverFails(t *testing.T) {
	backend := newStubBackend(t)
	mgr := newTestManager(t, backend)
	backend.server.Close() // transport failure

	c, _ := newContext(http.MethodPost, "/login", nil, nil)
	assert.False(t, mgr.CheckVerificationStatus(c, "ada@example.com"))
}
