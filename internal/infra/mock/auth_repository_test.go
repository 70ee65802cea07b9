package mock

import (
	"context"
	"testing"

	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRepository_Login(t *testing.T) {
	repo := NewAuthRepository(newTestStore())
	ctx := context.Background()

	t.Run("demo password works for seeded accounts", func(t *testing.T) {
		sponsor, err := repo.Login(ctx, "juan@smilelink.org", DemoPassword)
		require.NoError(t, err)
		assert.Equal(t, "P001", sponsor.ID)
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		sponsor, err := repo.Login(ctx, "JUAN@smilelink.org", DemoPassword)
		require.NoError(t, err)
		assert.Equal(t, "P001", sponsor.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := repo.Login(ctx, "juan@smilelink.org", "nope")
		assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.Login(ctx, "nadie@example.com", DemoPassword)
		assert.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
	})
}

func TestAuthRepository_RegisterThenLogin(t *testing.T) {
	repo := NewAuthRepository(newTestStore())
	ctx := context.Background()

	created, err := repo.Register(ctx, repository.RegisterInput{
		Name:     "Laura Medina",
		Email:    "laura@example.com",
		Password: "clave-segura-1",
		Address:  "Calle 10 #22",
		Phone:    "449-555-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "P004", created.ID)
	require.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "clave-segura-1", *created.PasswordHash)

	logged, err := repo.Login(ctx, "laura@example.com", "clave-segura-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
}

func TestAuthRepository_RegisterDuplicateEmail(t *testing.T) {
	repo := NewAuthRepository(newTestStore())

	_, err := repo.Register(context.Background(), repository.RegisterInput{
		Name:     "Otro Juan",
		Email:    "juan@smilelink.org",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthRepository_GoogleLogin(t *testing.T) {
	repo := NewAuthRepository(newTestStore())
	ctx := context.Background()

	sponsor, err := repo.GoogleLogin(ctx, "opaque-token")
	require.NoError(t, err)
	assert.NotNil(t, sponsor.GoogleAuthID)

	_, err = repo.GoogleLogin(ctx, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
}

func TestAuthRepository_Me(t *testing.T) {
	repo := NewAuthRepository(newTestStore())
	ctx := context.Background()

	sponsor, err := repo.Me(ctx, "P002")
	require.NoError(t, err)
	assert.Equal(t, "María González López", sponsor.Name)

	_, err = repo.Me(ctx, "P999")
	assert.ErrorIs(t, err, domainerrors.ErrSponsorNotFound)
}
