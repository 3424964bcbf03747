package repositories

import (
	"fmt"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
	"github.com/arjunm-dev/cipherpost/internal/docstore"
	"github.com/arjunm-dev/cipherpost/internal/models"
)

// UserRepository stores registered users in the "users" collection.
//
// Unlike the store, Read fails loudly: a missing user id is a not-found
// error here, not an empty result.
type UserRepository struct {
	store *docstore.Store[models.User]
}

// NewUserRepository binds and loads the users collection.
func NewUserRepository(dataDir string) (*UserRepository, error) {
	store := docstore.New[models.User](dataDir, "users")
	if err := store.Load(); err != nil {
		return nil, err
	}
	return &UserRepository{store: store}, nil
}

// Create registers a user. Usernames are unique: registering a taken
// username fails with a conflict.
func (r *UserRepository) Create(user models.User) (docstore.Entity[models.User], error) {
	existing, err := r.ReadByUsername(user.Username)
	if err != nil {
		return docstore.Entity[models.User]{}, err
	}
	if existing != nil {
		return docstore.Entity[models.User]{}, apperror.Conflict(
			fmt.Sprintf("username %s is already taken", user.Username))
	}

	return r.store.Create(user)
}

func (r *UserRepository) Read(id string) (docstore.Entity[models.User], error) {
	user, ok := r.store.Read(id)
	if !ok {
		return docstore.Entity[models.User]{}, apperror.NotFound("user not found")
	}
	return user, nil
}

func (r *UserRepository) List() ([]docstore.Entity[models.User], error) {
	return r.store.ReadAll(nil)
}

// ReadByUsername returns the first user with the given username, or nil
// when no such user exists.
func (r *UserRepository) ReadByUsername(username string) (*docstore.Entity[models.User], error) {
	users, err := r.store.ReadByField("username", username)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) Update(id string, patch models.UserPatch) (docstore.Entity[models.User], error) {
	return r.store.Update(id, patch.Apply)
}

func (r *UserRepository) Delete(id string) error {
	return r.store.Delete(id)
}
