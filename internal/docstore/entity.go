package docstore

import (
	"encoding/json"
	"time"
)

// Entity wraps a domain payload with the identity and timestamps the
// store assigns. On the wire and on disk the domain fields sit flat next
// to id/createdAt/updatedAt, matching the persisted layout:
//
//	{"id": "…", "createdAt": "…", "username": "alice", "publicKey": "…"}
//
// T must marshal to a JSON object.
type Entity[T any] struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt *time.Time
	Doc       T
}

const (
	fieldID        = "id"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

func (e Entity[T]) MarshalJSON() ([]byte, error) {
	doc, err := json.Marshal(e.Doc)
	if err != nil {
		return nil, err
	}

	flat := map[string]json.RawMessage{}
	if err := json.Unmarshal(doc, &flat); err != nil {
		return nil, err
	}

	if flat[fieldID], err = json.Marshal(e.ID); err != nil {
		return nil, err
	}
	if flat[fieldCreatedAt], err = json.Marshal(e.CreatedAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt != nil {
		if flat[fieldUpdatedAt], err = json.Marshal(e.UpdatedAt); err != nil {
			return nil, err
		}
	}

	return json.Marshal(flat)
}

func (e *Entity[T]) UnmarshalJSON(data []byte) error {
	flat := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	if raw, ok := flat[fieldID]; ok {
		if err := json.Unmarshal(raw, &e.ID); err != nil {
			return err
		}
		delete(flat, fieldID)
	}
	if raw, ok := flat[fieldCreatedAt]; ok {
		if err := json.Unmarshal(raw, &e.CreatedAt); err != nil {
			return err
		}
		delete(flat, fieldCreatedAt)
	}
	if raw, ok := flat[fieldUpdatedAt]; ok {
		if err := json.Unmarshal(raw, &e.UpdatedAt); err != nil {
			return err
		}
		delete(flat, fieldUpdatedAt)
	}

	rest, err := json.Marshal(flat)
	if err != nil {
		return err
	}
	return json.Unmarshal(rest, &e.Doc)
}

// fields flattens the entity to its wire form, used for criteria
// matching over domain and metadata fields alike.
func (e Entity[T]) fields() (map[string]json.RawMessage, error) {
	data, err := e.MarshalJSON()
	if err != nil {
		return nil, err
	}

	flat := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}
