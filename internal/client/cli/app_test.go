package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/releve-app/releve/internal/client/api"
	"github.com/releve-app/releve/internal/client/credstore"
	"github.com/releve-app/releve/internal/client/models"
	"github.com/releve-app/releve/internal/client/session"
	"github.com/releve-app/releve/internal/logging"
)

// fakeClient implements api.Client with overridable behavior per method.
type fakeClient struct {
	loginFn      func(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error)
	registerFn   func(ctx context.Context, name, email, password string) (*models.User, *models.TokenPair, error)
	businessesFn func(ctx context.Context, f api.BusinessFilter) ([]models.Business, error)
	businessFn   func(ctx context.Context, id string) (*models.Business, error)
	slotsFn      func(ctx context.Context, id string) ([]models.Slot, error)
	categoriesFn func(ctx context.Context) ([]models.Category, error)
	walletFn     func(ctx context.Context) (*models.Wallet, error)
	citiesFn     func(ctx context.Context) ([]models.City, error)
	influencerFn func(ctx context.Context) (string, error)
	avatarFn     func(ctx context.Context, url string) (string, error)
	applyFn      func(ctx context.Context, app models.CreatorApplication) (*models.CreatorProfile, error)
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	return f.loginFn(ctx, email, password)
}
func (f *fakeClient) Register(ctx context.Context, name, email, password string) (*models.User, *models.TokenPair, error) {
	return f.registerFn(ctx, name, email, password)
}
func (f *fakeClient) ListBusinesses(ctx context.Context, filter api.BusinessFilter) ([]models.Business, error) {
	return f.businessesFn(ctx, filter)
}
func (f *fakeClient) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	return f.businessFn(ctx, id)
}
func (f *fakeClient) ListSlots(ctx context.Context, id string) ([]models.Slot, error) {
	return f.slotsFn(ctx, id)
}
func (f *fakeClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.categoriesFn(ctx)
}
func (f *fakeClient) GetWallet(ctx context.Context) (*models.Wallet, error) {
	return f.walletFn(ctx)
}
func (f *fakeClient) ListCities(ctx context.Context) ([]models.City, error) {
	return f.citiesFn(ctx)
}
func (f *fakeClient) InfluencerStatus(ctx context.Context) (string, error) {
	return f.influencerFn(ctx)
}
func (f *fakeClient) UpdateAvatar(ctx context.Context, url string) (string, error) {
	return f.avatarFn(ctx, url)
}
func (f *fakeClient) ApplyCreator(ctx context.Context, app models.CreatorApplication) (*models.CreatorProfile, error) {
	return f.applyFn(ctx, app)
}

func newTestApp(t *testing.T, f *fakeClient) (*App, *bytes.Buffer) {
	t.Helper()
	store, err := credstore.Open(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	out := &bytes.Buffer{}
	a := &App{
		api:    f,
		store:  store,
		log:    log,
		reader: bufio.NewReader(strings.NewReader("")),
		out:    out,
	}
	a.session = session.NewManager(f, store, log)
	a.session.Hydrate(context.Background())
	return a, out
}

func loginTestApp(t *testing.T, a *App) {
	t.Helper()
	_, err := a.session.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
}

func stubInputs(t *testing.T, lines ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

var anaLogin = func(context.Context, string, string) (*models.User, *models.TokenPair, error) {
	return &models.User{ID: "1", Name: "Ana", Email: "a@b.com"},
		&models.TokenPair{AccessToken: "t1", RefreshToken: "r1"}, nil
}
