package pm

import (
	"context"
	"encoding/json"
)

// Source tags which branch of the fallback chain produced a result, so tests
// and callers can observe the transition that was taken instead of guessing.
type Source string

const (
	SourceRemote Source = "remote"
	SourceCache  Source = "cache"
	SourceSeed   Source = "seed"
)

// Result is a loaded collection snapshot plus the branch that produced it.
type Result[T any] struct {
	Items  []T
	Source Source
}

// LoadCollection resolves a collection with the remote-or-cache fallback
// chain: one remote attempt, then the cached store value, then the seed.
//
// A successful, parseable remote response is authoritative: it is mirrored to
// the store verbatim, replacing any cached value. Any fetch or parse failure
// is absorbed and falls through to the cache; a non-empty cache is returned
// as-is without a store write. When the cache is also empty the seed is
// returned and persisted, so a second load under the same failing fetcher
// finds it in the cache. LoadCollection never returns an error.
//
// collection is the remote name of the collection (the <collection> path
// segment of the API), which may differ from the store key. field names the
// envelope member holding the collection when the remote body is an object
// rather than a bare array (e.g. {"waterTasks": [...]}).
func LoadCollection[T any](ctx context.Context, st Store, key, collection, field string, fetcher Fetcher, seed []T, log Logger) Result[T] {
	if fetcher != nil {
		body, err := fetcher.FetchCollection(ctx, collection)
		if err == nil && ctx.Err() == nil {
			if items, ok := decodeCollection[T](body, field); ok {
				if len(items) == 0 {
					if cached := ReadCollection[T](st, key); len(cached) > 0 {
						log.Warn("empty remote collection replaces non-empty cache", "key", key, "cached", len(cached))
					}
				}
				if werr := WriteCollection(st, key, items); werr != nil {
					log.Warn("caching remote collection failed", "key", key, "error", werr)
				}
				return Result[T]{Items: items, Source: SourceRemote}
			}
			log.Debug("remote collection unparseable, falling back", "key", key)
		} else if err != nil {
			log.Debug("remote fetch failed, falling back", "key", key, "error", err)
		}
	}

	if cached := ReadCollection[T](st, key); len(cached) > 0 {
		return Result[T]{Items: cached, Source: SourceCache}
	}

	if err := WriteCollection(st, key, seed); err != nil {
		log.Warn("persisting seed collection failed", "key", key, "error", err)
	}
	return Result[T]{Items: seed, Source: SourceSeed}
}

// decodeCollection accepts either a bare JSON array or an envelope object
// holding the array under field. Any other shape is a parse failure.
func decodeCollection[T any](body []byte, field string) ([]T, bool) {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items, true
	}
	if field == "" {
		return nil, false
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}
	raw, ok := envelope[field]
	if !ok {
		return nil, false
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}
