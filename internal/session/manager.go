package session

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/api"
)

const (
	sessionName = "studyblog_session"
	tokenKey    = "token"
	userKey     = "user"
)

// Manager is the single source of truth for "who is logged in". It owns the
// persisted token/user pair in the cookie session and every credential-bearing
// backend call. Nothing else writes to the session cookie.
type Manager struct {
	store sessions.Store
	api   *api.Client
}

// NewManager creates a session manager backed by an encrypted cookie store.
func NewManager(secret string, client *api.Client) *Manager {
	gob.Register(&api.User{})

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false, // behind TLS termination in production
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, api: client}
}

// Restore rebuilds the session from the persisted token, once per request.
// No token means anonymous, immediately. A present token is validated against
// the backend's profile endpoint; success refreshes the persisted user copy,
// any failure clears the persisted state. Failures are silent because an
// expired session is an expected steady-state, not an error condition.
func (m *Manager) Restore(c echo.Context) *api.User {
	token, ok := m.Token(c)
	if !ok {
		return nil
	}

	user, err := m.api.GetProfile(c.Request().Context(), token)
	if err != nil {
		slog.Debug("session restore rejected", "status", api.StatusOf(err))
		_ = m.clear(c)
		return nil
	}

	if err := m.persist(c, token, user); err != nil {
		slog.Warn("failed to refresh session", "error", err)
	}
	return user
}

// Login authenticates against the backend and persists the issued token and
// user record. A 401 is surfaced as exactly the normalized invalid-credentials
// message regardless of the backend payload.
func (m *Manager) Login(c echo.Context, email, password string) (*api.User, error) {
	resp, err := m.api.Login(c.Request().Context(), email, password)
	if err != nil {
		apiErr := api.Normalize(err, "login failed")
		if apiErr.Status == http.StatusUnauthorized {
			apiErr.Message = api.MsgInvalidCredentials
		}
		return nil, apiErr
	}

	if err := m.persist(c, resp.AccessToken, &resp.User); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &resp.User, nil
}

// Register creates an account but does not log it in; a verification email
// follows. A 409 always surfaces as the normalized duplicate-email message.
func (m *Manager) Register(c echo.Context, name, email, password string) error {
	if err := m.api.Register(c.Request().Context(), name, email, password); err != nil {
		apiErr := api.Normalize(err, "registration failed")
		if apiErr.Status == http.StatusConflict {
			apiErr.Message = api.MsgDuplicateEmail
		}
		return apiErr
	}
	return nil
}

// Logout clears persisted and in-memory session state unconditionally. It
// never calls the backend and is safe to call on an anonymous session.
func (m *Manager) Logout(c echo.Context) {
	if err := m.clear(c); err != nil {
		slog.Warn("failed to clear session", "error", err)
	}
}

func (m *Manager) ForgotPassword(c echo.Context, email string) error {
	if err := m.api.ForgotPassword(c.Request().Context(), email); err != nil {
		return api.Normalize(err, "failed to send recovery email")
	}
	return nil
}

func (m *Manager) ResetPassword(c echo.Context, token, password string) error {
	if err := m.api.ResetPassword(c.Request().Context(), token, password); err != nil {
		return api.Normalize(err, "failed to reset password")
	}
	return nil
}

func (m *Manager) ResendVerification(c echo.Context, email string) error {
	if err := m.api.ResendVerification(c.Request().Context(), email); err != nil {
		return api.Normalize(err, "failed to resend verification email")
	}
	return nil
}

func (m *Manager) VerifyEmail(c echo.Context, token string) error {
	if err := m.api.VerifyEmail(c.Request().Context(), token); err != nil {
		return api.Normalize(err, "failed to verify email")
	}
	return nil
}

// CheckVerificationStatus never fails: any backend or transport error is
// reported as unverified. Callers use this for advisory UI only, never for
// access control.
func (m *Manager) CheckVerificationStatus(c echo.Context, email string) bool {
	verified, err := m.api.CheckVerificationStatus(c.Request().Context(), email)
	if err != nil {
		slog.Debug("verification status check failed", "error", err)
		return false
	}
	return verified
}

// UpdateUser replaces the persisted user record wholesale. Profile-mutating
// handlers call this to absorb the backend's result; the manager itself does
// not perform those mutations.
func (m *Manager) UpdateUser(c echo.Context, user *api.User) error {
	token, ok := m.Token(c)
	if !ok {
		return fmt.Errorf("no active session")
	}
	return m.persist(c, token, user)
}

// Token returns the persisted bearer token, if any.
func (m *Manager) Token(c echo.Context) (string, bool) {
	sess, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		// An undecodable cookie is treated as no session.
		return "", false
	}
	token, ok := sess.Values[tokenKey].(string)
	return token, ok && token != ""
}

// CachedUser returns the persisted user copy without a backend round trip.
func (m *Manager) CachedUser(c echo.Context) (*api.User, bool) {
	sess, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return nil, false
	}
	user, ok := sess.Values[userKey].(*api.User)
	return user, ok && user != nil
}

func (m *Manager) persist(c echo.Context, token string, user *api.User) error {
	sess, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		sess, _ = m.store.New(c.Request(), sessionName)
	}

	sess.Values[tokenKey] = token
	sess.Values[userKey] = user

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (m *Manager) clear(c echo.Context) error {
	sess, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		sess, _ = m.store.New(c.Request(), sessionName)
	}

	sess.Options.MaxAge = -1
	delete(sess.Values, tokenKey)
	delete(sess.Values, userKey)

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
