package views

import (
	"github.com/a-h/templ"

	"github.com/soclens/soclens/internal/http/viewmodels"
)

// PerformancePage wraps the placeholder panel in the layout.
func PerformancePage(layout viewmodels.LayoutData) templ.Component {
	return Layout(layout, PerformanceMonitor())
}
