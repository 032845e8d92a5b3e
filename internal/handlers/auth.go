package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/internal/session"
	authview "github.com/studyblog/studyblog-web/views/auth"
)

// AuthHandler serves the login, registration and account-recovery pages. All
// session mutation goes through the session manager.
type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) HandleLoginPage(c echo.Context) error {
	if auth.IsAuthenticated(c) {
		return c.Redirect(http.StatusFound, "/")
	}

	data := authview.LoginData{Next: c.QueryParam("next")}
	switch {
	case c.QueryParam("registered") != "":
		data.Notice = "Account created. Check your email to verify your account."
	case c.QueryParam("reset") != "":
		data.Notice = "Password updated. Log in with your new password."
	case c.QueryParam("resent") != "":
		data.Notice = "Verification email sent."
	}
	return RenderPage(c, "Log in", authview.Login(data))
}

func (h *AuthHandler) HandleLoginSubmit(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	next := c.FormValue("next")

	if _, err := h.sessions.Login(c, email, password); err != nil {
		data := authview.LoginData{
			Email: email,
			Next:  next,
			Error: err.Error(),
			// Advisory only: an unverified account is the most common cause
			// of a rejected login, so offer the resend link.
			ShowResend: !h.sessions.CheckVerificationStatus(c, email),
		}
		return RenderPage(c, "Log in", authview.Login(data))
	}

	if next == "" || next[0] != '/' {
		next = "/"
	}
	return c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) HandleRegisterPage(c echo.Context) error {
	if auth.IsAuthenticated(c) {
		return c.Redirect(http.StatusFound, "/")
	}
	return RenderPage(c, "Sign up", authview.Register(authview.RegisterData{}))
}

func (h *AuthHandler) HandleRegisterSubmit(c echo.Context) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")

	if err := h.sessions.Register(c, name, email, password); err != nil {
		data := authview.RegisterData{Name: name, Email: email, Error: err.Error()}
		return RenderPage(c, "Sign up", authview.Register(data))
	}
	return c.Redirect(http.StatusFound, "/login?registered=1")
}

// HandleLogout clears the session unconditionally and never calls the backend.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	h.sessions.Logout(c)
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) HandleForgotPasswordPage(c echo.Context) error {
	return RenderPage(c, "Recover password", authview.ForgotPassword(authview.RecoveryData{}))
}

func (h *AuthHandler) HandleForgotPasswordSubmit(c echo.Context) error {
	email := c.FormValue("email")
	data := authview.RecoveryData{Email: email}

	if err := h.sessions.ForgotPassword(c, email); err != nil {
		data.Error = err.Error()
	} else {
		data.Notice = "If that address is registered, a recovery email is on its way."
		data.Email = ""
	}
	return RenderPage(c, "Recover password", authview.ForgotPassword(data))
}

func (h *AuthHandler) HandleResetPasswordPage(c echo.Context) error {
	data := authview.RecoveryData{Token: c.QueryParam("token")}
	if data.Token == "" {
		data.Error = "missing reset token"
	}
	return RenderPage(c, "Reset password", authview.ResetPassword(data))
}

func (h *AuthHandler) HandleResetPasswordSubmit(c echo.Context) error {
	token := c.FormValue("token")
	password := c.FormValue("password")

	if err := h.sessions.ResetPassword(c, token, password); err != nil {
		data := authview.RecoveryData{Token: token, Error: err.Error()}
		return RenderPage(c, "Reset password", authview.ResetPassword(data))
	}
	return c.Redirect(http.StatusFound, "/login?reset=1")
}

// HandleVerifyEmail consumes the verification link from the email.
func (h *AuthHandler) HandleVerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		data := authview.VerifyEmailData{Message: "missing verification token"}
		return RenderPage(c, "Email verification", authview.VerifyEmail(data))
	}

	if err := h.sessions.VerifyEmail(c, token); err != nil {
		data := authview.VerifyEmailData{Message: err.Error()}
		return RenderPage(c, "Email verification", authview.VerifyEmail(data))
	}
	return RenderPage(c, "Email verification", authview.VerifyEmail(authview.VerifyEmailData{Success: true}))
}

func (h *AuthHandler) HandleResendVerification(c echo.Context) error {
	email := c.FormValue("email")
	if err := h.sessions.ResendVerification(c, email); err != nil {
		data := authview.LoginData{Email: email, Error: err.Error()}
		return RenderPage(c, "Log in", authview.Login(data))
	}
	return c.Redirect(http.StatusFound, "/login?resent=1")
}
