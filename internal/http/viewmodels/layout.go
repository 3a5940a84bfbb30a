// Package viewmodels holds the display-oriented structs the views render.
// They carry pre-shaped values only; no rendering logic lives here.
package viewmodels

type LayoutData struct {
	Title      string
	CSRFToken  string
	UserEmail  string
	UserRole   string
	IsAdmin    bool
	ActivePath string
	Toast      *ToastViewData
}

type ToastViewData struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
