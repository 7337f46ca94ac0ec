package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// EmbeddingLoader supplies the phrase -> vector map. Tests inject a fake;
// production uses FileLoader.
type EmbeddingLoader func() (map[string][]float32, error)

// EmbeddingCache memoizes the expansion-phrase embeddings for the process
// lifetime. The load happens at most once, on first lookup, guarded so
// concurrent first access from multiple goroutines is safe.
type EmbeddingCache struct {
	loader EmbeddingLoader

	once    sync.Once
	vectors map[string][]float32
	loadErr error
}

// NewEmbeddingCache creates a cache backed by the given loader.
func NewEmbeddingCache(loader EmbeddingLoader) *EmbeddingCache {
	return &EmbeddingCache{loader: loader}
}

// FileLoader returns a loader that reads a JSON object of phrase -> vector
// from path.
func FileLoader(path string) EmbeddingLoader {
	return func() (map[string][]float32, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read embeddings file: %w", err)
		}
		var vectors map[string][]float32
		if err := json.Unmarshal(data, &vectors); err != nil {
			return nil, fmt.Errorf("parse embeddings file: %w", err)
		}
		return vectors, nil
	}
}

// Lookup returns the embedding for a phrase, keyed by its lower-cased
// trimmed form. The first call triggers the load; later calls reuse the
// memoized map. Unknown phrases return ok=false.
func (c *EmbeddingCache) Lookup(phrase string) ([]float32, bool) {
	c.once.Do(func() {
		c.vectors, c.loadErr = c.loader()
	})
	if c.loadErr != nil {
		return nil, false
	}

	v, ok := c.vectors[lowerName(phrase)]
	return v, ok
}

// Err returns the load error, if the one-time load failed. Callers that want
// to distinguish "phrase missing" from "file unreadable" check this after a
// failed Lookup.
func (c *EmbeddingCache) Err() error {
	c.once.Do(func() {
		c.vectors, c.loadErr = c.loader()
	})
	return c.loadErr
}
