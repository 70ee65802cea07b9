package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repositoryRegisterInput() repository.RegisterInput {
	return repository.RegisterInput{
		Name:     "María García",
		Email:    "maria@example.com",
		Password: "secreto123",
		Address:  "Av. Central 123",
		Phone:    "555-0101",
	}
}

func TestAuthRepository_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")

		switch {
		case body["email"] != "maria@example.com":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Email no registrado"}`))
		case body["password"] != "secreto123":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Contraseña incorrecta"}`))
		default:
			_, _ = w.Write([]byte(`{"message":"Login exitoso","padrino":{"id_padrino":"P001","nombre":"María García","email":"maria@example.com"}}`))
		}
	}))
	defer server.Close()

	repo := NewAuthRepository(newTestClient(server.URL, ""))
	ctx := context.Background()

	t.Run("success returns profile", func(t *testing.T) {
		sponsor, err := repo.Login(ctx, "maria@example.com", "secreto123")
		require.NoError(t, err)
		assert.Equal(t, "P001", sponsor.ID)
		assert.Equal(t, "María García", sponsor.Name)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		sponsor, err := repo.Login(ctx, "maria@example.com", "wrong")
		assert.Nil(t, sponsor)
		require.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
		assert.Equal(t, http.StatusUnauthorized, domainerrors.StatusOf(err))
	})

	t.Run("unknown email is 404", func(t *testing.T) {
		sponsor, err := repo.Login(ctx, "nadie@example.com", "secreto123")
		assert.Nil(t, sponsor)
		require.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
		assert.Equal(t, http.StatusNotFound, domainerrors.StatusOf(err))
	})
}

func TestAuthRepository_Register_EmailTaken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register/", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Este email ya está registrado"}`))
	}))
	defer server.Close()

	repo := NewAuthRepository(newTestClient(server.URL, ""))

	sponsor, err := repo.Register(context.Background(), repositoryRegisterInput())
	assert.Nil(t, sponsor)
	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthRepository_Me(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me/", r.URL.Path)
		require.Equal(t, "P001", r.URL.Query().Get("padrino_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","padrino":{"id_padrino":"P001","nombre":"María García","email":"maria@example.com"}}`))
	}))
	defer server.Close()

	repo := NewAuthRepository(newTestClient(server.URL, ""))

	sponsor, err := repo.Me(context.Background(), "P001")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", sponsor.Email)
}

func TestAuthRepository_MissingSponsorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Login exitoso"}`))
	}))
	defer server.Close()

	repo := NewAuthRepository(newTestClient(server.URL, ""))

	sponsor, err := repo.Login(context.Background(), "maria@example.com", "secreto123")
	assert.Nil(t, sponsor)
	assert.Error(t, err)
}
