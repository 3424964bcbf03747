// Package repositories binds each domain type to its own document store
// and adds the domain-specific read paths on top.
package repositories

import (
	"github.com/arjunm-dev/cipherpost/internal/logger"
)

// Repositories bundles every repository of the service, each owning one
// collection under the same data directory.
type Repositories struct {
	Users    *UserRepository
	Messages *MessageRepository
}

// New constructs and loads all repositories. A failed load aborts
// construction: the process must not serve requests over a store whose
// state is unknown.
func New(dataDir string) (*Repositories, error) {
	users, err := NewUserRepository(dataDir)
	if err != nil {
		return nil, err
	}

	messages, err := NewMessageRepository(dataDir)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("repositories initialized")
	return &Repositories{Users: users, Messages: messages}, nil
}
