package views

import (
	"testing"

	"github.com/soclens/soclens/internal/http/viewmodels"
)

func TestLoginPageSetupRequired(t *testing.T) {
	t.Parallel()

	out := renderViewComponent(t, LoginPage(viewmodels.LoginViewData{SetupRequired: true}))

	assertContains(t, out, "soclens users bootstrap-admin")
	assertNotContains(t, out, `role="alert"`)
}

func TestLoginPageShowsError(t *testing.T) {
	t.Parallel()

	out := renderViewComponent(t, LoginPage(viewmodels.LoginViewData{
		CSRFToken:    "tok",
		Email:        "ops@example.com",
		ErrorMessage: "Invalid email or password.",
	}))

	assertContains(t, out, `role="alert"`)
	assertContains(t, out, "Invalid email or password.")
	assertContains(t, out, `value="ops@example.com"`)
	assertContains(t, out, `name="csrf" value="tok"`)
}

func TestLoginPageCarriesNextTarget(t *testing.T) {
	t.Parallel()

	out := renderViewComponent(t, LoginPage(viewmodels.LoginViewData{Next: "/sonicwall"}))
	assertContains(t, out, `name="next" value="/sonicwall"`)

	out = renderViewComponent(t, LoginPage(viewmodels.LoginViewData{}))
	assertNotContains(t, out, `name="next"`)
}
