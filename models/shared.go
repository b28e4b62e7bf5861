package models

// Security carries credential material for an account. Plaintext fields are
// request-only and never persisted; hashes are persisted and never served.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // "patient" or "professional"
	Token string `json:"token"`
}
