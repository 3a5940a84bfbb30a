package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/soclens/soclens/internal/http/viewmodels"
)

// Flash toasts survive exactly one redirect: set on the POST response,
// popped by the next page render. Anything older than the TTL is noise.
const (
	flashToastCookieName = "soclens_toast"
	flashToastTTL        = 30 * time.Second
)

var toastCategories = map[string]struct{}{
	"success": {},
	"error":   {},
	"warning": {},
	"info":    {},
}

func setFlashToast(c *echo.Context, toast viewmodels.ToastViewData) {
	toast, ok := sanitizeToast(toast)
	if !ok {
		return
	}

	payload, err := json.Marshal(toast)
	if err != nil {
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     flashToastCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   int(flashToastTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashToast reads and expires the toast cookie in one step, so a
// refresh never replays a stale notification.
func popFlashToast(c *echo.Context) *viewmodels.ToastViewData {
	cookie, err := c.Cookie(flashToastCookieName)
	if err != nil || cookie == nil {
		return nil
	}
	expireFlashToast(c)

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var toast viewmodels.ToastViewData
	if err := json.Unmarshal(raw, &toast); err != nil {
		return nil
	}

	toast, ok := sanitizeToast(toast)
	if !ok {
		return nil
	}
	return &toast
}

func expireFlashToast(c *echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     flashToastCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sanitizeToast normalizes a toast coming from either side of the cookie.
// A toast with no visible text reports ok=false and is dropped.
func sanitizeToast(toast viewmodels.ToastViewData) (viewmodels.ToastViewData, bool) {
	toast.Category = normalizeToastCategory(toast.Category)
	toast.Title = strings.TrimSpace(toast.Title)
	toast.Description = strings.TrimSpace(toast.Description)
	return toast, toast.Title != "" || toast.Description != ""
}

func normalizeToastCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if _, ok := toastCategories[category]; ok {
		return category
	}
	return "info"
}
