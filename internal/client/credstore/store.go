// Package credstore persists the session between process runs: a serialized
// user profile and token pair under two fixed keys in a local sqlite database.
package credstore

import (
	"context"

	"github.com/releve-app/releve/internal/client/models"
)

// Fixed storage keys. The store never holds anything else.
const (
	keyUser   = "user"
	keyTokens = "tokens"
)

// Store is the durable credential store consumed by the session manager.
//
// Contract:
//   - Save writes both records; an error means the session will not survive
//     a restart, in-memory state is unaffected.
//   - SaveUser rewrites only the user record (profile write-through).
//   - Load returns (nil, nil, nil) records for anything absent or
//     undecodable; only infrastructure failures return an error.
//   - Clear removes both records and is idempotent.
type Store interface {
	Save(ctx context.Context, user models.User, tokens models.TokenPair) error
	SaveUser(ctx context.Context, user models.User) error
	Load(ctx context.Context) (*models.User, *models.TokenPair, error)
	Clear(ctx context.Context) error
}
