package repositories

import (
	"github.com/arjunm-dev/cipherpost/internal/docstore"
	"github.com/arjunm-dev/cipherpost/internal/models"
)

// MessageRepository stores encrypted messages in the "messages"
// collection. Absence is a normal outcome on every read path.
type MessageRepository struct {
	store *docstore.Store[models.Message]
}

// NewMessageRepository binds and loads the messages collection.
func NewMessageRepository(dataDir string) (*MessageRepository, error) {
	store := docstore.New[models.Message](dataDir, "messages")
	if err := store.Load(); err != nil {
		return nil, err
	}
	return &MessageRepository{store: store}, nil
}

func (r *MessageRepository) Create(message models.Message) (docstore.Entity[models.Message], error) {
	return r.store.Create(message)
}

func (r *MessageRepository) Read(id string) (docstore.Entity[models.Message], bool) {
	return r.store.Read(id)
}

func (r *MessageRepository) ReadAll() ([]docstore.Entity[models.Message], error) {
	return r.store.ReadAll(nil)
}

// ReadByField serves lookups such as "messages addressed to user X".
func (r *MessageRepository) ReadByField(field string, value any) ([]docstore.Entity[models.Message], error) {
	return r.store.ReadByField(field, value)
}

func (r *MessageRepository) Update(id string, patch models.MessagePatch) (docstore.Entity[models.Message], error) {
	return r.store.Update(id, patch.Apply)
}

func (r *MessageRepository) Delete(id string) error {
	return r.store.Delete(id)
}
