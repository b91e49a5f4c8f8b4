// Package store holds the three state containers of the application:
// TaskStore (dashboard tasks), ProjectStore (projects plus
// project-scoped tasks) and AuthStore (current user and local user
// registry). Each store owns its collection exclusively, mutates it in
// place and serializes its full state after every mutation through the
// StateStore port.
//
// Stores are not safe for concurrent use. The host is assumed to be a
// single-threaded event loop: every operation runs to completion before
// the next one is invoked.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	apperrors "taskboard/internal/domain/errors"
)

// StateStore persists a store's full state as a named blob. Load returns
// apperrors.ErrStateNotFound when no blob exists under the key.
type StateStore interface {
	Save(key string, blob []byte) error
	Load(key string) ([]byte, error)
}

// Identity is the payload returned by an external identity provider
// after an interactive sign-in.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
	PhotoURL    string
}

// IdentityProvider is the external sign-in capability consumed by
// AuthStore.LoginWithGoogle. Failures carry one of the sentinel reasons
// from the domain errors package.
type IdentityProvider interface {
	SignIn(ctx context.Context) (*Identity, error)
}

// One stable key per store.
const (
	taskStateKey    = "task-storage"
	projectStateKey = "project-storage"
	authStateKey    = "auth-storage"
)

const stateVersion = 0

// stateEnvelope wraps a persisted state blob. The version tag is written
// and accepted on load but never acted upon.
type stateEnvelope struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// saveState serializes state under key. Failures are logged and
// swallowed: client-local storage gives no durability guarantee and a
// failed write must not undo the in-memory mutation.
func saveState(states StateStore, key string, state any) {
	raw, err := json.Marshal(state)
	if err != nil {
		log.Printf("[WARN] failed to serialize %s: %v", key, err)
		return
	}
	blob, err := json.Marshal(stateEnvelope{State: raw, Version: stateVersion})
	if err != nil {
		log.Printf("[WARN] failed to serialize %s: %v", key, err)
		return
	}
	if err := states.Save(key, blob); err != nil {
		log.Printf("[WARN] failed to persist %s: %v", key, err)
	}
}

// loadState rehydrates state from key. An absent key leaves state
// untouched and returns nil; a corrupt blob is an error so the caller
// can fall back to another backend.
func loadState(states StateStore, key string, state any) error {
	blob, err := states.Load(key)
	if err != nil {
		if errors.Is(err, apperrors.ErrStateNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	var envelope stateEnvelope
	if err := json.Unmarshal(blob, &envelope); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if len(envelope.State) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.State, state); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}
