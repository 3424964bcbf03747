package models

// Message is an end-to-end encrypted message between two users. The
// ciphertext and the wrapped key are opaque strings produced by the
// sender; the server never inspects them.
type Message struct {
	To           string `json:"to"`
	From         string `json:"from"`
	Encrypted    string `json:"encrypted"`
	EncryptedKey string `json:"encryptedKey"`
}

// MessagePatch is a partial update; only non-nil fields overwrite.
type MessagePatch struct {
	To           *string `json:"to,omitempty"`
	From         *string `json:"from,omitempty"`
	Encrypted    *string `json:"encrypted,omitempty"`
	EncryptedKey *string `json:"encryptedKey,omitempty"`
}

// Apply merges the patch onto m field by field.
func (p MessagePatch) Apply(m Message) Message {
	if p.To != nil {
		m.To = *p.To
	}
	if p.From != nil {
		m.From = *p.From
	}
	if p.Encrypted != nil {
		m.Encrypted = *p.Encrypted
	}
	if p.EncryptedKey != nil {
		m.EncryptedKey = *p.EncryptedKey
	}
	return m
}
