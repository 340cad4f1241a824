package pm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plantmate/internal/model"
)

// fakeStore is an in-memory Store for tests.
type fakeStore struct {
	data    map[string][]byte
	failPut bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Put(key string, value []byte) error {
	if s.failPut {
		return errors.New("put failed")
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func (s *fakeStore) Close() error { return nil }

// fixedClock always returns the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// seqIDs generates id-1, id-2, ...
type seqIDs struct {
	n int
}

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var testTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// failingFetcher simulates an unreachable backend.
var failingFetcher = FetchFunc(func(ctx context.Context, collection string) ([]byte, error) {
	return nil, errors.New("connection refused")
})

// staticFetcher serves canned bodies per collection name and errors on
// anything else.
func staticFetcher(bodies map[string]string) Fetcher {
	return FetchFunc(func(ctx context.Context, collection string) ([]byte, error) {
		body, ok := bodies[collection]
		if !ok {
			return nil, fmt.Errorf("no such collection %q", collection)
		}
		return []byte(body), nil
	})
}

func newTestService(st Store, fetcher Fetcher) *PlantService {
	return NewPlantService(st, fetcher, NewEngine(DefaultWeights()), NewNopLogger(), fixedClock{now: testTime}, &seqIDs{})
}

func spaceFixture(id, name string) model.Space {
	return model.Space{
		ID:            id,
		Name:          name,
		Type:          model.SpaceBalcony,
		Direction:     model.South,
		SunlightHours: 6,
		AreaSqM:       1.8,
	}
}
