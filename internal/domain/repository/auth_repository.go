package repository

import (
	"context"

	"smilelink/internal/domain/entity"
)

// RegisterInput is the payload for /auth/register/.
type RegisterInput struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
}

// AuthRepository wraps the backend's authentication endpoints. The backend
// returns the denormalized sponsor profile on success; no tokens or cookies
// are modeled at this layer.
//
// Error mapping follows the endpoint context: login maps 401 to
// domainerrors.ErrIncorrectPassword and 404 to ErrEmailNotRegistered;
// register maps 400 to ErrEmailTaken.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.Sponsor, error)
	Register(ctx context.Context, input RegisterInput) (*entity.Sponsor, error)

	// GoogleLogin exchanges a Google ID token for the sponsor profile,
	// registering the account on first sight.
	GoogleLogin(ctx context.Context, idToken string) (*entity.Sponsor, error)

	// Me re-fetches the current sponsor profile by id.
	Me(ctx context.Context, sponsorID string) (*entity.Sponsor, error)

	Logout(ctx context.Context, sponsorID string) error
}
