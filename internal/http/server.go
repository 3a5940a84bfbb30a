package httpapp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/soclens/soclens/internal/auth"
	"github.com/soclens/soclens/internal/cache"
	"github.com/soclens/soclens/internal/config"
	"github.com/soclens/soclens/internal/http/authn"
	"github.com/soclens/soclens/internal/http/handlers"
	"github.com/soclens/soclens/internal/store"
)

// EchoServer is the HTTP server wrapper.
type EchoServer struct {
	h   *handlers.Handlers
	e   *echo.Echo
	srv *http.Server
}

// NewEchoServer creates a new HTTP server.
func NewEchoServer(cfg config.Config, st *store.Store, sessions *scs.SessionManager, snapCache *cache.Cache, refresher handlers.RefreshRunner) (*EchoServer, error) {
	h := &handlers.Handlers{
		Cfg:       cfg,
		Store:     st,
		Sessions:  sessions,
		Cache:     snapCache,
		Refresher: refresher,
	}
	es := &EchoServer{h: h, e: echo.New()}
	es.e.HTTPErrorHandler = es.httpErrorHandler
	es.registerRoutes()
	return es, nil
}

func (es *EchoServer) registerRoutes() {
	es.e.Use(requestIDMiddleware())
	if es.h.Sessions != nil {
		es.e.Use(echo.WrapMiddleware(es.h.Sessions.LoadAndSave))
	}

	es.e.GET("/healthz", es.h.HandleHealthz)

	csrfGroup := es.e.Group("")
	csrfGroup.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   es.h.Cfg.AuthCookieSecure,
	}))
	csrfGroup.GET("/login", es.h.HandleLoginGet)
	csrfGroup.POST("/login", es.h.HandleLoginPost)
	csrfGroup.POST("/logout", es.h.HandleLogoutPost)

	authed := csrfGroup.Group("")
	if es.h.Sessions != nil && es.h.Store != nil {
		authed.Use(authn.RequireAuth(es.h.Sessions, es.h.Store))
	}
	authed.GET("/", es.h.HandleSIEMDashboard)
	authed.GET("/sonicwall", es.h.HandleSonicWallDashboard)
	authed.GET("/performance", es.h.HandlePerformance)
	authed.GET("/api/snapshots/:kind", es.h.HandleSnapshotAPI)
	authed.POST("/refresh", es.h.HandleRefreshPost, authn.RequireRole(auth.RoleAdmin))

	es.e.Static("/static", "web/static")
}

func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(echo.HeaderXRequestID))
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(handlers.ContextKeyRequestID, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// httpErrorHandler keeps error responses generic. Details stay in the
// logs keyed by request id.
func (es *EchoServer) httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	status := httpStatusFromError(err)
	switch {
	case status == http.StatusNotFound:
		_ = handlers.RenderNotFound(c)
	case status >= http.StatusInternalServerError:
		_ = es.h.RenderError(c, err)
	default:
		_ = c.String(status, http.StatusText(status))
	}
}

func httpStatusFromError(err error) int {
	var sc echo.HTTPStatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// Start starts the HTTP server.
func (es *EchoServer) Start(addr string) error {
	return es.e.Start(addr)
}

// StartServer starts the HTTP server with a custom http.Server.
func (es *EchoServer) StartServer(server *http.Server) error {
	server.Handler = es.e
	es.srv = server
	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (es *EchoServer) Shutdown(ctx context.Context) error {
	if es.srv == nil {
		return nil
	}
	return es.srv.Shutdown(ctx)
}
