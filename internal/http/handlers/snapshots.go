package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v5"

	"github.com/soclens/soclens/internal/cache"
	"github.com/soclens/soclens/internal/http/viewmodels"
	"github.com/soclens/soclens/internal/secops"
)

// loadSnapshotPayload resolves the latest pre-shaped payload for a kind:
// cache first, then the snapshot history. A missing snapshot is not an
// error; the page renders its no-data state instead.
func (h *Handlers) loadSnapshotPayload(c *echo.Context, kind string) ([]byte, bool, error) {
	ctx := c.Request().Context()

	payload, err := h.Cache.GetSnapshot(ctx, kind)
	if err == nil {
		return payload, true, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		c.Logger().Warn("snapshot cache read failed", "kind", kind, "error", err)
	}

	if h.Store == nil {
		return nil, false, nil
	}
	snap, err := h.Store.LatestSnapshot(ctx, kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if err := h.Cache.SetSnapshot(ctx, kind, snap.Payload); err != nil {
		c.Logger().Warn("snapshot cache write failed", "kind", kind, "error", err)
	}
	return snap.Payload, true, nil
}

func (h *Handlers) loadSIEM(c *echo.Context) (secops.SIEMData, bool, error) {
	payload, ok, err := h.loadSnapshotPayload(c, secops.KindSIEM)
	if err != nil || !ok {
		return secops.SIEMData{}, false, err
	}
	var data secops.SIEMData
	if err := json.Unmarshal(payload, &data); err != nil {
		return secops.SIEMData{}, false, fmt.Errorf("decode siem snapshot: %w", err)
	}
	return data, true, nil
}

func (h *Handlers) loadSonicWall(c *echo.Context) (secops.SonicWallData, bool, error) {
	payload, ok, err := h.loadSnapshotPayload(c, secops.KindSonicWall)
	if err != nil || !ok {
		return secops.SonicWallData{}, false, err
	}
	var data secops.SonicWallData
	if err := json.Unmarshal(payload, &data); err != nil {
		return secops.SonicWallData{}, false, fmt.Errorf("decode sonicwall snapshot: %w", err)
	}
	return data, true, nil
}

// HandleSnapshotAPI serves the latest raw snapshot payload as JSON.
func (h *Handlers) HandleSnapshotAPI(c *echo.Context) error {
	kind := c.Param("kind")
	if kind != secops.KindSIEM && kind != secops.KindSonicWall {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown snapshot kind"})
	}

	payload, ok, err := h.loadSnapshotPayload(c, kind)
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no snapshot available"})
	}
	return c.Blob(http.StatusOK, "application/json", payload)
}

// HandleRefreshPost triggers a manual snapshot refresh.
func (h *Handlers) HandleRefreshPost(c *echo.Context) error {
	if h.Refresher == nil {
		setFlashToast(c, viewmodels.ToastViewData{
			Category:    "warning",
			Title:       "Refresh unavailable",
			Description: "No datasources are configured.",
		})
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.Refresher.RunOnce(c.Request().Context()); err != nil {
		c.Logger().Error("manual refresh failed", "error", err)
		setFlashToast(c, viewmodels.ToastViewData{
			Category:    "error",
			Title:       "Refresh failed",
			Description: "One or more datasources could not be reached.",
		})
	} else {
		setFlashToast(c, viewmodels.ToastViewData{
			Category: "success",
			Title:    "Snapshots refreshed",
		})
	}

	if isHX(c) {
		setHXRedirect(c, "/")
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
