package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/releve-app/releve/internal/client/models"
)

const defaultTimeout = 10 * time.Second

// HTTPClient talks JSON to the RELEVÉ backend over net/http.
// The base URL is injected at construction, never embedded in call sites.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenProvider
	timeout time.Duration
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-call timeout applied to every request.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithHTTPClient replaces the underlying transport (used in tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.httpc = h }
}

// NewHTTPClient builds a client for the given base URL. tokens may be nil for
// a client that only performs auth calls.
func NewHTTPClient(baseURL string, tokens TokenProvider, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
		timeout: defaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type errorEnvelope struct {
	Error string `json:"error"`
}

type authRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User   models.User      `json:"user"`
	Tokens models.TokenPair `json:"tokens"`
}

// do runs one JSON round trip. A non-2xx status is mapped to *APIError with
// the envelope message when the body carries one, otherwise fallback.
// Transport failures are wrapped in ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool, fallback string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed && c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return envelopeError(resp, fallback)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func envelopeError(resp *http.Response, fallback string) error {
	message := fallback
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
		message = env.Error
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}

func (c *HTTPClient) auth(ctx context.Context, path string, req authRequest, fallback string) (*models.User, *models.TokenPair, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, path, nil, req, &resp, false, fallback); err != nil {
		return nil, nil, err
	}
	if resp.User.ID == "" || resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		return nil, nil, errors.New("malformed auth response")
	}
	return &resp.User, &resp.Tokens, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	return c.auth(ctx, "/auth/login", authRequest{Email: email, Password: password}, "Login failed")
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.User, *models.TokenPair, error) {
	return c.auth(ctx, "/auth/register", authRequest{Name: name, Email: email, Password: password}, "Register failed")
}

func (c *HTTPClient) ListBusinesses(ctx context.Context, filter BusinessFilter) ([]models.Business, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	var out []models.Business
	if err := c.do(ctx, http.MethodGet, "/business", query, nil, &out, true, "failed to load businesses"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	var out models.Business
	if err := c.do(ctx, http.MethodGet, "/business/"+url.PathEscape(id), nil, nil, &out, true, "failed to load business"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListSlots(ctx context.Context, businessID string) ([]models.Slot, error) {
	var out []models.Slot
	if err := c.do(ctx, http.MethodGet, "/business/"+url.PathEscape(businessID)+"/slots", nil, nil, &out, true, "failed to load slots"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/business-categories", nil, nil, &out, true, "failed to load categories"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetWallet(ctx context.Context) (*models.Wallet, error) {
	var out models.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallet", nil, nil, &out, true, "failed to load wallet"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListCities(ctx context.Context) ([]models.City, error) {
	var out []models.City
	if err := c.do(ctx, http.MethodGet, "/cities", nil, nil, &out, true, "failed to load cities"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) InfluencerStatus(ctx context.Context) (string, error) {
	var out struct {
		InfluencerStatus string `json:"influencer_status"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/influencer", nil, nil, &out, true, "failed to load influencer status"); err != nil {
		return "", err
	}
	return out.InfluencerStatus, nil
}

func (c *HTTPClient) UpdateAvatar(ctx context.Context, avatarURL string) (string, error) {
	body := map[string]string{"avatar_url": avatarURL}
	var out struct {
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.do(ctx, http.MethodPut, "/user/avatar", nil, body, &out, true, "failed to update avatar"); err != nil {
		return "", err
	}
	return out.AvatarURL, nil
}

func (c *HTTPClient) ApplyCreator(ctx context.Context, app models.CreatorApplication) (*models.CreatorProfile, error) {
	var out struct {
		Profile models.CreatorProfile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodPost, "/apply/creator", nil, app, &out, true, "failed to submit application"); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}
