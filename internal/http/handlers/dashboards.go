package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/soclens/soclens/internal/http/viewmodels"
	"github.com/soclens/soclens/internal/http/views"
)

// HandleSIEMDashboard renders the SIEM overview page. htmx polling
// requests get just the KPI grid back.
func (h *Handlers) HandleSIEMDashboard(c *echo.Context) (err error) {
	start := time.Now()
	defer func() { observePageRender("siem", start, err) }()

	data, ok, err := h.loadSIEM(c)
	if err != nil {
		return h.RenderError(c, err)
	}

	vm := viewmodels.SIEMViewData{
		Layout:     h.LayoutData(c, "SIEM"),
		Data:       data,
		NoData:     !ok,
		RenderedAt: time.Now().UTC(),
	}

	addVary(c, "HX-Request")
	if isHX(c) {
		return h.RenderComponent(c, views.SIEMKPIGrid(vm))
	}
	return h.RenderComponent(c, views.SIEMPage(vm))
}

// HandleSonicWallDashboard renders the firewall page. The theme query
// parameter switches between the modern and legacy chrome.
func (h *Handlers) HandleSonicWallDashboard(c *echo.Context) (err error) {
	start := time.Now()
	defer func() { observePageRender("sonicwall", start, err) }()

	data, ok, err := h.loadSonicWall(c)
	if err != nil {
		return h.RenderError(c, err)
	}

	vm := viewmodels.SonicWallViewData{
		Layout:     h.LayoutData(c, "SonicWall"),
		Data:       data,
		Theme:      viewmodels.NormalizeSonicWallTheme(c.QueryParam("theme")),
		NoData:     !ok,
		RenderedAt: time.Now().UTC(),
	}

	addVary(c, "HX-Request")
	if isHX(c) {
		return h.RenderComponent(c, views.SonicWallDashboard(vm))
	}
	return h.RenderComponent(c, views.SonicWallPage(vm))
}

// HandlePerformance renders the performance monitor placeholder page.
func (h *Handlers) HandlePerformance(c *echo.Context) (err error) {
	start := time.Now()
	defer func() { observePageRender("performance", start, err) }()

	return h.RenderComponent(c, views.PerformancePage(h.LayoutData(c, "Performance")))
}

// HandleHealthz returns a simple health check response.
func (h *Handlers) HandleHealthz(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
