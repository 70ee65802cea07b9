package mock

import (
	"context"
	"strings"
	"time"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type authRepository struct {
	store *Store
}

// NewAuthRepository returns the in-memory auth implementation. Seeded
// accounts all accept DemoPassword; registered accounts get a real bcrypt
// hash the way the backend stores them.
func NewAuthRepository(store *Store) repository.AuthRepository {
	return &authRepository{store: store}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sponsor := r.findByEmail(email)
	if sponsor == nil {
		return nil, domainerrors.ErrEmailNotRegistered
	}

	// Google-only accounts carry no password hash and cannot log in here.
	if sponsor.PasswordHash == nil || !r.store.hasher.Check(password, *sponsor.PasswordHash) {
		return nil, domainerrors.ErrIncorrectPassword
	}

	out := *sponsor

	return &out, nil
}

func (r *authRepository) Register(ctx context.Context, input repository.RegisterInput) (*entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.findByEmail(input.Email) != nil {
		return nil, domainerrors.ErrEmailTaken
	}

	hash, err := r.store.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(r.store.sponsors))
	for i := range r.store.sponsors {
		ids = append(ids, r.store.sponsors[i].ID)
	}

	sponsor := entity.Sponsor{
		ID:                    nextID("P", ids),
		Name:                  input.Name,
		Email:                 input.Email,
		PasswordHash:          &hash,
		RegistrationDate:      entity.Today(time.Now()),
		Address:               input.Address,
		Phone:                 input.Phone,
		SponsorshipHistoryIDs: []string{},
	}

	r.store.sponsors = append(r.store.sponsors, sponsor)
	out := sponsor

	return &out, nil
}

// GoogleLogin cannot reach Google in mock mode; any non-empty token signs in
// the seeded Google-linked account so the flow stays demoable offline.
func (r *authRepository) GoogleLogin(ctx context.Context, idToken string) (*entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrGoogleTokenInvalid
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsors {
		if r.store.sponsors[i].GoogleAuthID != nil {
			out := r.store.sponsors[i]

			return &out, nil
		}
	}

	return nil, domainerrors.ErrGoogleTokenInvalid
}

func (r *authRepository) Me(ctx context.Context, sponsorID string) (*entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsors {
		if r.store.sponsors[i].ID == sponsorID {
			out := r.store.sponsors[i]

			return &out, nil
		}
	}

	return nil, domainerrors.ErrSponsorNotFound
}

func (r *authRepository) Logout(ctx context.Context, sponsorID string) error {
	// The backend keeps no server-side session either; logout is a no-op
	// acknowledged for symmetry with the live endpoint.
	return r.store.wait(ctx)
}

// findByEmail requires the caller to hold the store lock.
func (r *authRepository) findByEmail(email string) *entity.Sponsor {
	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range r.store.sponsors {
		if strings.ToLower(r.store.sponsors[i].Email) == needle {
			return &r.store.sponsors[i]
		}
	}

	return nil
}
