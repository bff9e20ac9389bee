// Package credentials persists the authenticated session across restarts.
// The stored value is the {token, user} pair under the app's fixed storage
// keys; it is written and deleted as a whole, never field by field.
package credentials

import (
	"context"

	"github.com/stadtwache/patrol/internal/client/models"
)

type Repository interface {
	// Load returns the persisted credential, or nil when none is stored.
	Load(ctx context.Context) (*models.Credential, error)

	// Save persists the credential in a single transaction.
	Save(ctx context.Context, cred *models.Credential) error

	// Clear deletes the persisted credential. No-op when nothing is stored.
	Clear(ctx context.Context) error
}
