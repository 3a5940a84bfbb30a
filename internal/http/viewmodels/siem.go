package viewmodels

import (
	"time"

	"github.com/soclens/soclens/internal/secops"
)

// SIEMViewData drives the SIEM overview page. Data is the pre-shaped
// snapshot exactly as the data layer produced it.
type SIEMViewData struct {
	Layout     LayoutData
	Data       secops.SIEMData
	NoData     bool
	RenderedAt time.Time
}

// KPICardData is one counter tile on a dashboard.
type KPICardData struct {
	Key   string
	Label string
	Value string
	Hint  string
	Tone  string // "neutral", "ok", "warn", "alert"
}
