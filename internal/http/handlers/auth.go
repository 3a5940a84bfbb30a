package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/soclens/soclens/internal/auth"
	"github.com/soclens/soclens/internal/auth/providers"
	"github.com/soclens/soclens/internal/http/authn"
	"github.com/soclens/soclens/internal/http/viewmodels"
	"github.com/soclens/soclens/internal/http/views"
)

func (h *Handlers) HandleLoginGet(c *echo.Context) error {
	if h.Sessions == nil {
		return errors.New("auth sessions not configured")
	}

	if _, ok, err := authn.LoadPrincipal(c, h.Sessions, h.Store); err != nil {
		return err
	} else if ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	count, err := h.Store.CountAuthUsers(c.Request().Context())
	if err != nil {
		return err
	}

	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	data := viewmodels.LoginViewData{
		CSRFToken:     csrfToken,
		Next:          authn.SanitizeNext(c.QueryParam("next")),
		SetupRequired: count == 0,
		Toast:         popFlashToast(c),
	}
	return h.RenderComponent(c, views.LoginPage(data))
}

func (h *Handlers) HandleLoginPost(c *echo.Context) error {
	if h.Sessions == nil {
		return errors.New("auth sessions not configured")
	}

	ctx := c.Request().Context()

	count, err := h.Store.CountAuthUsers(ctx)
	if err != nil {
		return err
	}

	email := auth.NormalizeEmail(c.FormValue("email"))
	password := c.FormValue("password")
	next := authn.SanitizeNext(c.FormValue("next"))

	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	data := viewmodels.LoginViewData{
		CSRFToken: csrfToken,
		Email:     email,
		Next:      next,
	}

	if count == 0 {
		data.SetupRequired = true
		return h.RenderComponent(c, views.LoginPage(data))
	}

	if email == "" || strings.TrimSpace(password) == "" {
		data.ErrorMessage = "Invalid email or password."
		return h.RenderComponent(c, views.LoginPage(data))
	}

	passwordProvider := providers.NewPasswordProvider(h.Store)
	principal, err := passwordProvider.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			data.ErrorMessage = "Invalid email or password."
			return h.RenderComponent(c, views.LoginPage(data))
		}
		return err
	}

	if err := h.Sessions.RenewToken(ctx); err != nil {
		return err
	}
	h.Sessions.Put(ctx, authn.SessionKeyUserID, principal.UserID)

	_ = h.Store.UpdateAuthUserLoginMeta(ctx, principal.UserID, time.Now(), strings.TrimSpace(c.RealIP()))

	if next != "" {
		return c.Redirect(http.StatusSeeOther, next)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) HandleLogoutPost(c *echo.Context) error {
	if h.Sessions == nil {
		return errors.New("auth sessions not configured")
	}

	if err := h.Sessions.Destroy(c.Request().Context()); err != nil {
		return err
	}
	setFlashToast(c, viewmodels.ToastViewData{
		Category: "success",
		Title:    "Signed out",
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}
