// Package store keeps one view.State per session.
package store

import (
	"context"

	"cnpj-lookup/internal/view"
)

// Store is safe for concurrent use. Get returns errors.ErrSessionNotFound
// for unknown or expired sessions. Save overwrites; concurrent saves to
// the same session resolve as last write wins.
type Store interface {
	Get(ctx context.Context, id string) (view.State, error)
	Save(ctx context.Context, id string, s view.State) error
	Delete(ctx context.Context, id string) error
}
