// Package api implements the RELEVÉ HTTP client: JSON encoding, bearer token
// attachment and the error envelope contract every screen-level caller
// relies on.
package api

import (
	"context"

	"github.com/releve-app/releve/internal/client/models"
)

// TokenProvider supplies the current access token for outbound requests.
// An empty string means "no session": the request is sent unauthenticated
// and the server is expected to reject it with a 401-class status.
type TokenProvider interface {
	AccessToken() string
}

// BusinessFilter narrows GET /business results. Zero values mean no filter.
type BusinessFilter struct {
	Category string
	Query    string
}

// Client is the remote API surface consumed by the session manager and the
// terminal client.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error)
	Register(ctx context.Context, name, email, password string) (*models.User, *models.TokenPair, error)

	ListBusinesses(ctx context.Context, filter BusinessFilter) ([]models.Business, error)
	GetBusiness(ctx context.Context, id string) (*models.Business, error)
	ListSlots(ctx context.Context, businessID string) ([]models.Slot, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetWallet(ctx context.Context) (*models.Wallet, error)
	ListCities(ctx context.Context) ([]models.City, error)
	InfluencerStatus(ctx context.Context) (string, error)
	UpdateAvatar(ctx context.Context, avatarURL string) (string, error)
	ApplyCreator(ctx context.Context, app models.CreatorApplication) (*models.CreatorProfile, error)
}
