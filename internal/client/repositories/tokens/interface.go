// Package tokens persists named client credentials (the refresh token and
// the last used login email) in the local SQLite database.
package tokens

import (
	"context"
)

type Repository interface {
	// Get returns "" and no error when name is absent.
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}
