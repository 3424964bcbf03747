package models

// User is the domain payload of a registered user. Identity and
// timestamps are owned by the document store, not the model.
type User struct {
	Username  string `json:"username"`
	PublicKey string `json:"publicKey"`
}

// UserPatch is a partial update; only non-nil fields overwrite.
type UserPatch struct {
	Username  *string `json:"username,omitempty"`
	PublicKey *string `json:"publicKey,omitempty"`
}

// Apply merges the patch onto u field by field.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.PublicKey != nil {
		u.PublicKey = *p.PublicKey
	}
	return u
}
