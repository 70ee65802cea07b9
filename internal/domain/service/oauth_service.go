package service

import "context"

// OAuthUser is the identity extracted from a verified Google ID token.
type OAuthUser struct {
	ID            string
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthAuthService validates a Google ID token client-side before it is
// handed to the backend. Verification here is structural (claims, audience,
// expiry); the backend performs the authoritative check.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
