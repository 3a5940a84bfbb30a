package viewmodels

import (
	"time"

	"github.com/soclens/soclens/internal/secops"
)

// SonicWall dashboard themes. Legacy keeps the markup of the firewall's
// own status page for operators used to it.
const (
	SonicWallThemeModern = "modern"
	SonicWallThemeLegacy = "legacy"
)

type SonicWallViewData struct {
	Layout     LayoutData
	Data       secops.SonicWallData
	Theme      string
	NoData     bool
	RenderedAt time.Time
}

// NormalizeSonicWallTheme maps any input to a known theme.
func NormalizeSonicWallTheme(theme string) string {
	if theme == SonicWallThemeLegacy {
		return SonicWallThemeLegacy
	}
	return SonicWallThemeModern
}
