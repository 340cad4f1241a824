package pm

import "encoding/json"

// Storage keys. Two collections must never share a key; the underlying store
// is process-wide and keyed by plain strings.
const (
	KeySpaces     = "spaces"
	KeyUserPlants = "pm_user_plants"
	KeyCatalog    = "pm_catalog"
	KeyWaterTasks = "pm_water_tasks"
	KeyUser       = "user"
	KeyToken      = "token"
)

// Store is a persistent key-value store for serialized collections.
// Individual keys are read and written atomically; there are no transactional
// guarantees across keys.
type Store interface {
	// Get returns the raw value for key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)

	// Put persists value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any resources held by the store.
	Close() error
}

// ReadCollection reads and decodes the collection stored under key.
// A missing key, a store error, or malformed bytes all degrade to the empty
// collection: the store adapter never surfaces a parse failure to callers.
func ReadCollection[T any](st Store, key string) []T {
	raw, ok, err := st.Get(key)
	if err != nil || !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// WriteCollection serializes items and persists them under key.
func WriteCollection[T any](st Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return st.Put(key, raw)
}

// ReadValue reads and decodes a single stored object (e.g. the user profile).
// Missing or malformed data yields (zero, false).
func ReadValue[T any](st Store, key string) (T, bool) {
	var v T
	raw, ok, err := st.Get(key)
	if err != nil || !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// WriteValue serializes v and persists it under key.
func WriteValue[T any](st Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return st.Put(key, raw)
}
