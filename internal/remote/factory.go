package remote

import (
	"context"
	"fmt"
	"time"

	pmconfig "plantmate/internal/config"
	"plantmate/internal/pm"
)

// NewFetcherFromConfig creates a Fetcher implementation based on the remote
// config type. Type "none" returns nil: the loader treats a nil fetcher as a
// permanently unreachable backend and goes straight to cache/seed.
func NewFetcherFromConfig(ctx context.Context, cfg pmconfig.RemoteConfig, store pm.Store) (pm.Fetcher, error) {
	switch cfg.Type {
	case "http", "":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("http remote requires base_url to be set")
		}
		return NewHTTPFetcher(cfg.BaseURL, time.Duration(cfg.TimeoutSec)*time.Second, store), nil
	case "s3":
		return NewS3Fetcher(ctx, cfg)
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown remote type: %s", cfg.Type)
	}
}
