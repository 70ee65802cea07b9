package impl

import (
	"context"
	"testing"

	"smilelink/config"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/service"
	"smilelink/internal/infra/mock"
	"smilelink/internal/infra/session"
	"smilelink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOAuthService struct {
	user *service.OAuthUser
	err  error
}

func (f *fakeOAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	return f.user, f.err
}

func newAuthService(t *testing.T, oauth service.OAuthAuthService) usecase.AuthUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()

	store := newSeededStore(t)

	return NewAuthService(
		mock.NewAuthRepository(store),
		session.NewFileStore(cfg, testLogger()),
		oauth,
		testLogger(),
	)
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	svc := newAuthService(t, &fakeOAuthService{})
	ctx := context.Background()

	assert.False(t, svc.IsLoggedIn())

	sponsor, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "juan@smilelink.org",
		Password: mock.DemoPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "P001", sponsor.ID)
	assert.True(t, svc.IsLoggedIn())

	current, err := svc.CurrentSponsor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P001", current.ID)
}

func TestAuthService_LoginValidation(t *testing.T) {
	svc := newAuthService(t, &fakeOAuthService{})

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "no-es-email", Password: "secreto"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_FailedLoginLeavesSessionEmpty(t *testing.T) {
	svc := newAuthService(t, &fakeOAuthService{})

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "juan@smilelink.org",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	assert.False(t, svc.IsLoggedIn())
}

func TestAuthService_RegisterLogsIn(t *testing.T) {
	svc := newAuthService(t, &fakeOAuthService{})

	sponsor, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Laura Medina",
		Email:    "laura@example.com",
		Password: "clave-segura-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sponsor.ID)
	assert.True(t, svc.IsLoggedIn())
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	t.Run("invalid token is rejected locally", func(t *testing.T) {
		svc := newAuthService(t, &fakeOAuthService{err: context.DeadlineExceeded})

		_, err := svc.LoginWithGoogle(context.Background(), "bad-token")
		assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
		assert.False(t, svc.IsLoggedIn())
	})

	t.Run("valid token signs in", func(t *testing.T) {
		svc := newAuthService(t, &fakeOAuthService{user: &service.OAuthUser{
			ID:            "google_12345",
			Email:         "juan@smilelink.org",
			EmailVerified: true,
		}})

		sponsor, err := svc.LoginWithGoogle(context.Background(), "good-token")
		require.NoError(t, err)
		assert.NotNil(t, sponsor.GoogleAuthID)
		assert.True(t, svc.IsLoggedIn())
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc := newAuthService(t, &fakeOAuthService{})
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "juan@smilelink.org",
		Password: mock.DemoPassword,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsLoggedIn())

	_, err = svc.CurrentSponsor(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}
