package providers

import (
	"context"

	"github.com/soclens/soclens/internal/auth"
)

type Provider interface {
	Name() string
	Authenticate(ctx context.Context, email, password string) (auth.Principal, error)
}
