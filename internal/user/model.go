package user

import "context"

// Roles carried by identity records and token claims.
const (
	RoleSignedOut = "SignedOut"
	RoleRegular   = "Regular"
	RoleArtist    = "Artist"
)

// User is a read-only copy of an identity row owned by the store.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Service interface {
	// GetUser resolves a user id to an identity record.
	// A missing user is (nil, nil), not an error.
	GetUser(ctx context.Context, id string) (*User, error)
}
