package remote

import (
	"context"
	"testing"

	"plantmate/internal/config"
	"plantmate/internal/store"
)

func TestNewFetcherFromConfig(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	t.Run("http", func(t *testing.T) {
		f, err := NewFetcherFromConfig(ctx, config.RemoteConfig{Type: "http", BaseURL: "http://localhost:7777"}, st)
		if err != nil {
			t.Fatalf("NewFetcherFromConfig() error = %v", err)
		}
		if _, ok := f.(*HTTPFetcher); !ok {
			t.Errorf("fetcher type = %T, want *HTTPFetcher", f)
		}
	})

	t.Run("empty type defaults to http", func(t *testing.T) {
		f, err := NewFetcherFromConfig(ctx, config.RemoteConfig{BaseURL: "http://localhost:7777"}, st)
		if err != nil {
			t.Fatalf("NewFetcherFromConfig() error = %v", err)
		}
		if _, ok := f.(*HTTPFetcher); !ok {
			t.Errorf("fetcher type = %T, want *HTTPFetcher", f)
		}
	})

	t.Run("http without base_url", func(t *testing.T) {
		if _, err := NewFetcherFromConfig(ctx, config.RemoteConfig{Type: "http"}, st); err == nil {
			t.Fatal("NewFetcherFromConfig() expected error")
		}
	})

	t.Run("none yields nil fetcher", func(t *testing.T) {
		f, err := NewFetcherFromConfig(ctx, config.RemoteConfig{Type: "none"}, st)
		if err != nil {
			t.Fatalf("NewFetcherFromConfig() error = %v", err)
		}
		if f != nil {
			t.Errorf("fetcher = %v, want nil", f)
		}
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		if _, err := NewFetcherFromConfig(ctx, config.RemoteConfig{Type: "s3"}, st); err == nil {
			t.Fatal("NewFetcherFromConfig() expected error")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := NewFetcherFromConfig(ctx, config.RemoteConfig{Type: "carrier-pigeon"}, st); err == nil {
			t.Fatal("NewFetcherFromConfig() expected error")
		}
	})
}
