package pm

import "context"

// Fetcher retrieves a collection from the remote backend.
// Implementations live in internal/remote; the loader treats every error the
// same way, as a trigger for the cache/seed fallback chain.
type Fetcher interface {
	// FetchCollection performs a single attempt to fetch the named collection
	// and returns the raw response body. No retries are performed here.
	FetchCollection(ctx context.Context, collection string) ([]byte, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, collection string) ([]byte, error)

func (f FetchFunc) FetchCollection(ctx context.Context, collection string) ([]byte, error) {
	return f(ctx, collection)
}
