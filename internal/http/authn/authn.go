package authn

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v5"

	"github.com/soclens/soclens/internal/auth"
	"github.com/soclens/soclens/internal/store"
)

const (
	ContextKeyPrincipal = "auth_principal"

	SessionKeyUserID = "auth_user_id"
)

func PrincipalFromContext(c *echo.Context) (auth.Principal, bool) {
	p, ok := c.Get(ContextKeyPrincipal).(auth.Principal)
	return p, ok
}

func LoadPrincipal(c *echo.Context, sessions *scs.SessionManager, st *store.Store) (auth.Principal, bool, error) {
	ctx := c.Request().Context()
	userID := sessions.GetInt64(ctx, SessionKeyUserID)
	if userID <= 0 {
		return auth.Principal{}, false, nil
	}

	user, err := st.GetAuthUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = sessions.Destroy(ctx)
			return auth.Principal{}, false, nil
		}
		return auth.Principal{}, false, err
	}
	if !user.IsActive {
		_ = sessions.Destroy(ctx)
		return auth.Principal{}, false, nil
	}

	return auth.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Method: auth.MethodPassword,
	}, true, nil
}

func RequireAuth(sessions *scs.SessionManager, st *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			principal, ok, err := LoadPrincipal(c, sessions, st)
			if err != nil {
				return err
			}
			if !ok {
				return handleUnauth(c)
			}
			c.Set(ContextKeyPrincipal, principal)
			return next(c)
		}
	}
}

func RequireRole(role string) echo.MiddlewareFunc {
	role = strings.ToLower(strings.TrimSpace(role))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			p, ok := PrincipalFromContext(c)
			if !ok {
				return handleUnauth(c)
			}
			if strings.ToLower(strings.TrimSpace(p.Role)) != role {
				if isAPIRequest(c) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
				return echo.NewHTTPError(http.StatusForbidden, http.StatusText(http.StatusForbidden))
			}
			return next(c)
		}
	}
}

func isAPIRequest(c *echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}

func handleUnauth(c *echo.Context) error {
	if isAPIRequest(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	location := "/login"
	if c.Request().Method == http.MethodGet {
		if next := SanitizeNext(c.Request().URL.RequestURI()); next != "" {
			location = "/login?next=" + url.QueryEscape(next)
		}
	}
	return c.Redirect(http.StatusSeeOther, location)
}

// SanitizeNext keeps post-login redirect targets on this host. Anything
// that is not a plain relative path is dropped.
func SanitizeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || next == "/" || len(next) > 2048 {
		return ""
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	if strings.ContainsAny(next, "\\\n\r") {
		return ""
	}

	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || u.Scheme != "" {
		return ""
	}
	if strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, "\\") {
		return ""
	}
	if u.Path == "/login" || strings.HasPrefix(u.Path, "/login/") {
		return ""
	}
	return next
}
