package api

import (
	"context"
	"net/http"
	"net/url"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

// authResponse is the backend's auth success envelope.
type authResponse struct {
	Message string          `json:"message"`
	Sponsor *entity.Sponsor `json:"padrino"`
}

type authRepository struct {
	client *Client
}

// NewAuthRepository returns the live implementation backed by /auth/.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

// Login maps the backend statuses to endpoint-specific errors: 401 means the
// email exists but the password is wrong, 404 means the email is unknown.
func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.Sponsor, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	err := r.client.postJSON(ctx, "/auth/login/", body, &resp, nil)
	if err != nil {
		switch domainerrors.StatusOf(err) {
		case http.StatusUnauthorized:
			return nil, domainerrors.ErrIncorrectPassword
		case http.StatusNotFound:
			return nil, domainerrors.ErrEmailNotRegistered
		}

		return nil, err
	}

	return r.sponsorFrom(&resp)
}

// Register maps a 400 to ErrEmailTaken: the backend's only validation
// rejection on this endpoint is a duplicate email.
func (r *authRepository) Register(ctx context.Context, input repository.RegisterInput) (*entity.Sponsor, error) {
	var resp authResponse
	err := r.client.postJSON(ctx, "/auth/register/", input, &resp, nil)
	if err != nil {
		if domainerrors.StatusOf(err) == http.StatusBadRequest {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, err
	}

	return r.sponsorFrom(&resp)
}

func (r *authRepository) GoogleLogin(ctx context.Context, idToken string) (*entity.Sponsor, error) {
	body := map[string]string{"id_token": idToken}

	var resp authResponse
	err := r.client.postJSON(ctx, "/auth/google/", body, &resp, nil)
	if err != nil {
		if domainerrors.StatusOf(err) == http.StatusBadRequest {
			return nil, domainerrors.ErrGoogleTokenInvalid
		}

		return nil, err
	}

	return r.sponsorFrom(&resp)
}

func (r *authRepository) Me(ctx context.Context, sponsorID string) (*entity.Sponsor, error) {
	path := "/auth/me/?padrino_id=" + url.QueryEscape(sponsorID)

	var resp authResponse
	if err := r.client.getJSON(ctx, path, &resp, domainerrors.ErrSponsorNotFound); err != nil {
		return nil, err
	}

	return r.sponsorFrom(&resp)
}

func (r *authRepository) Logout(ctx context.Context, sponsorID string) error {
	body := map[string]string{"padrino_id": sponsorID}

	return r.client.postJSON(ctx, "/auth/logout/", body, nil, nil)
}

func (r *authRepository) sponsorFrom(resp *authResponse) (*entity.Sponsor, error) {
	if resp.Sponsor == nil {
		return nil, domainerrors.ErrInternalError.WithDetails("auth response without padrino payload")
	}

	normalizeSponsor(r.client, resp.Sponsor)

	return resp.Sponsor, nil
}
