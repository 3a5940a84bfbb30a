// Package handlers contains HTTP handler logic split by domain.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/soclens/soclens/internal/cache"
	"github.com/soclens/soclens/internal/config"
	"github.com/soclens/soclens/internal/http/authn"
	"github.com/soclens/soclens/internal/http/viewmodels"
	"github.com/soclens/soclens/internal/metrics"
	"github.com/soclens/soclens/internal/store"
)

const (
	// ContextKeyRequestID stores the request id (X-Request-ID) for logging and client error references.
	ContextKeyRequestID = "request_id"

	// InternalErrorCode is a stable error code safe to return to clients.
	InternalErrorCode = "INTERNAL_ERROR"
)

// RefreshRunner is the interface for triggering a manual snapshot refresh.
type RefreshRunner interface {
	RunOnce(context.Context) error
}

// Handlers groups all HTTP handlers and shared dependencies.
type Handlers struct {
	Cfg       config.Config
	Store     *store.Store
	Sessions  *scs.SessionManager
	Cache     *cache.Cache
	Refresher RefreshRunner
}

// LayoutData builds the common layout data for page rendering.
func (h *Handlers) LayoutData(c *echo.Context, title string) viewmodels.LayoutData {
	principal, ok := authn.PrincipalFromContext(c)
	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return viewmodels.LayoutData{
		Title:      title,
		CSRFToken:  csrfToken,
		UserEmail:  principal.Email,
		UserRole:   principal.Role,
		IsAdmin:    ok && principal.IsAdmin(),
		ActivePath: c.Request().URL.Path,
		Toast:      popFlashToast(c),
	}
}

// RenderComponent renders a templ component as the response.
func (h *Handlers) RenderComponent(c *echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request().Context(), c.Response()); err != nil {
		return h.RenderError(c, err)
	}
	return nil
}

// RenderError returns a plain text error response.
func (h *Handlers) RenderError(c *echo.Context, err error) error {
	requestID, _ := c.Get(ContextKeyRequestID).(string)
	path := ""
	if req := c.Request(); req != nil && req.URL != nil {
		path = req.URL.Path
	}
	method := ""
	if req := c.Request(); req != nil {
		method = req.Method
	}
	c.Logger().Error("http error",
		"request_id", requestID,
		"method", method,
		"path", path,
		"ip", c.RealIP(),
		"error", err,
	)

	msg := "Internal server error."
	if requestID != "" {
		msg = fmt.Sprintf("%s Reference: %s.", msg, requestID)
	}
	msg = fmt.Sprintf("%s Code: %s.", msg, InternalErrorCode)
	return c.String(http.StatusInternalServerError, msg)
}

// RenderNotFound returns a 404 response.
func RenderNotFound(c *echo.Context) error {
	return c.String(http.StatusNotFound, "404 page not found")
}

func observePageRender(page string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.PageRenderDuration.WithLabelValues(page).Observe(time.Since(start).Seconds())
	metrics.PageRendersTotal.WithLabelValues(page, status).Inc()
}
