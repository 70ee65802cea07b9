package usecase

import (
	"context"

	"smilelink/internal/domain/entity"
)

// AuthUsecase drives the sign-in flows and keeps the session store in step:
// every successful login persists the profile, logout clears it.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*entity.Sponsor, error)
	Register(ctx context.Context, input *RegisterInput) (*entity.Sponsor, error)

	// LoginWithGoogle validates the ID token structurally, then exchanges it
	// at the backend, which registers the account on first sight.
	LoginWithGoogle(ctx context.Context, idToken string) (*entity.Sponsor, error)

	// CurrentSponsor re-fetches the persisted principal's profile so edits
	// made elsewhere become visible. ErrNotLoggedIn when no session exists.
	CurrentSponsor(ctx context.Context) (*entity.Sponsor, error)

	IsLoggedIn() bool
	Logout(ctx context.Context) error
}

// LoginInput defines the email/password credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterInput defines the data required to create a sponsor account.
type RegisterInput struct {
	Name     string `json:"nombre" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
}
