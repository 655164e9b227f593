// Package store is the key-value document layer every ledger persists
// through. Each logical collection is one JSON document under a key of the
// form "<entity>_v1:<userId>"; reads and writes are whole-document and
// synchronous, with no isolation beyond sequential execution.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is a minimal namespaced document store. Get returns (nil, nil) when
// the key is absent so callers can fall back to their zero document.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Load unmarshals the document at key into out. The boolean reports whether
// a document existed; when false, out is left untouched.
func Load(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("store get %q: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("store decode %q: %w", key, err)
	}
	return true, nil
}

// Save marshals v and writes it as the whole document at key.
func Save(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store encode %q: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("store put %q: %w", key, err)
	}
	return nil
}
