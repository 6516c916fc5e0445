package auth

import "context"

// Service defines the interface for staff authentication.
type Service interface {
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
}
