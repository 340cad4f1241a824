package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"plantmate/internal/model"
	"plantmate/internal/pm"
)

// DefaultTimeout bounds each request. The loader performs a single attempt,
// so without this an unresponsive backend would stall the whole command.
const DefaultTimeout = 15 * time.Second

// HTTPFetcher fetches collections from the PlantMate backend over HTTP:
// GET <base>/api/<collection> with a bearer token read from the local store
// on every request, mirroring how the browser client reads its stored token.
type HTTPFetcher struct {
	base   string
	client *http.Client
	store  pm.Store
}

// NewHTTPFetcher creates a fetcher for the given base URL. timeout <= 0
// selects DefaultTimeout.
func NewHTTPFetcher(base string, timeout time.Duration, store pm.Store) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
		store:  store,
	}
}

// FetchCollection performs a single authenticated GET for the collection and
// returns the raw body. Non-2xx statuses are errors; the loader decides what
// failure means.
func (f *HTTPFetcher) FetchCollection(ctx context.Context, collection string) ([]byte, error) {
	url := f.base + "/api/" + collection

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if token, ok := pm.ReadValue[string](f.store, pm.KeyToken); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: status %d", collection, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", collection, err)
	}
	return body, nil
}

// loginResponse is the backend's login payload.
type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login authenticates against the backend and returns the session token and
// profile. Unlike collection fetches, login failures are surfaced: there is
// no meaningful fallback for authentication.
func (f *HTTPFetcher) Login(ctx context.Context, email, password string) (string, model.User, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", model.User{}, fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.base+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", model.User{}, fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", model.User{}, fmt.Errorf("logging in: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", model.User{}, fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", model.User{}, fmt.Errorf("decoding login response: %w", err)
	}
	if lr.Token == "" {
		return "", model.User{}, fmt.Errorf("login response carried no token")
	}
	return lr.Token, lr.User, nil
}

// Compile-time check that HTTPFetcher implements the pm.Fetcher interface
var _ pm.Fetcher = (*HTTPFetcher)(nil)
