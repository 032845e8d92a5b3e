package service

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/internal/handlers"
	"github.com/studyblog/studyblog-web/internal/session"
	"github.com/studyblog/studyblog-web/storage"
	"github.com/studyblog/studyblog-web/views/errorpages"
)

type Service struct {
	storage  *storage.Storage
	config   *Config
	api      *api.Client
	sessions *session.Manager

	authHandler    *handlers.AuthHandler
	postHandler    *handlers.PostHandler
	profileHandler *handlers.ProfileHandler
	adminHandler   *handlers.AdminHandler
	mediaHandler   *handlers.MediaHandler
}

func New(store *storage.Storage, config *Config) *Service {
	client := api.New(config.APIURL)
	sessions := session.NewManager(config.Session.Secret, client)

	return &Service{
		storage:        store,
		config:         config,
		api:            client,
		sessions:       sessions,
		authHandler:    handlers.NewAuthHandler(sessions),
		postHandler:    handlers.NewPostHandler(client, sessions, store, config.BaseURL),
		profileHandler: handlers.NewProfileHandler(client, sessions, config.Upload.MaxSize),
		adminHandler:   handlers.NewAdminHandler(client, sessions),
		mediaHandler:   handlers.NewMediaHandler(),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleHTTPError

	// Static files and generated media carry no session.
	e.Static("/public", "public")
	e.GET("/avatar/:name", s.mediaHandler.HandleAvatar)
	e.GET("/health", s.handleHealth)

	// Everything else restores the session first, so every handler observes
	// a fully resolved session before rendering.
	root := e.Group("")
	root.Use(auth.LoadSession(s.sessions))

	// Public pages
	root.GET("/", s.postHandler.HandleHome)
	root.GET("/posts", s.postHandler.HandleList)
	root.GET("/posts/:slug", s.postHandler.HandleDetail)
	root.GET("/posts/:slug/qr.png", s.postHandler.HandleShareQR)
	root.GET("/posts/:slug/pdf", s.postHandler.HandlePDF)

	// Auth pages
	root.GET("/login", s.authHandler.HandleLoginPage)
	root.POST("/login", s.authHandler.HandleLoginSubmit)
	root.GET("/register", s.authHandler.HandleRegisterPage)
	root.POST("/register", s.authHandler.HandleRegisterSubmit)
	root.GET("/logout", s.authHandler.HandleLogout)
	root.GET("/forgot-password", s.authHandler.HandleForgotPasswordPage)
	root.POST("/forgot-password", s.authHandler.HandleForgotPasswordSubmit)
	root.GET("/reset-password", s.authHandler.HandleResetPasswordPage)
	root.POST("/reset-password", s.authHandler.HandleResetPasswordSubmit)
	root.GET("/verify-email", s.authHandler.HandleVerifyEmail)
	root.POST("/resend-verification", s.authHandler.HandleResendVerification)

	// Authenticated pages
	authed := root.Group("")
	authed.Use(auth.RequireAuth())
	authed.GET("/posts/create", s.postHandler.HandleCreatePage)
	authed.POST("/posts/create", s.postHandler.HandleCreateSubmit)
	authed.POST("/posts/draft", s.postHandler.HandleSaveDraft)
	authed.GET("/posts/:slug/edit", s.postHandler.HandleEditPage)
	authed.POST("/posts/:slug/edit", s.postHandler.HandleEditSubmit)
	authed.POST("/posts/:slug/delete", s.postHandler.HandleDelete)
	authed.POST("/posts/:slug/comments", s.postHandler.HandleComment)
	authed.GET("/profile", s.profileHandler.HandleProfilePage)
	authed.POST("/profile", s.profileHandler.HandleProfileUpdate)
	authed.POST("/profile/avatar", s.profileHandler.HandleAvatarUpload)

	// Admin area
	admin := root.Group("/admin")
	admin.Use(auth.RequireRoles(auth.AdminRoles...))
	admin.GET("/users", s.adminHandler.HandleUsersPage)
	admin.POST("/users/:id/promote", s.adminHandler.HandlePromote)
	admin.POST("/users/:id/demote", s.adminHandler.HandleDemote)
	admin.POST("/users/:id/delete", s.adminHandler.HandleDeleteUser)
	admin.POST("/users/:id/name", s.adminHandler.HandleRename)
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleHTTPError renders error pages in the site layout. Expected backend
// rejections never reach here; handlers convert those to inline form errors.
func (s *Service) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
	}

	c.Response().WriteHeader(code)
	var renderErr error
	switch code {
	case http.StatusNotFound:
		renderErr = handlers.RenderPage(c, "Not found", errorpages.NotFound())
	case http.StatusForbidden:
		renderErr = handlers.RenderPage(c, "Access denied", errorpages.AccessDenied())
	default:
		slog.Error("request failed", "path", c.Request().URL.Path, "code", code, "error", err)
		renderErr = handlers.RenderPage(c, "Error", errorpages.ServerError())
	}
	if renderErr != nil {
		slog.Error("failed to render error page", "error", renderErr)
	}
}
