package impl

import (
	"context"
	"log/slog"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
	"smilelink/internal/domain/service"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
)

type authService struct {
	authRepo     repository.AuthRepository
	sessionStore repository.SessionStore
	oauthSvc     service.OAuthAuthService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	authRepo repository.AuthRepository,
	sessionStore repository.SessionStore,
	oauthSvc service.OAuthAuthService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		authRepo:     authRepo,
		sessionStore: sessionStore,
		oauthSvc:     oauthSvc,
		logger:       logger,
	}
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Sponsor, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sponsor, err := srv.authRepo.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	if err := srv.sessionStore.Save(sponsor); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	srv.logger.Info("sponsor logged in", slog.String("sponsorID", sponsor.ID))

	return sponsor, nil
}

func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Sponsor, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sponsor, err := srv.authRepo.Register(ctx, repository.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
		Phone:    input.Phone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "register")
	}

	if err := srv.sessionStore.Save(sponsor); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	srv.logger.Info("sponsor registered", slog.String("sponsorID", sponsor.ID))

	return sponsor, nil
}

func (srv *authService) LoginWithGoogle(ctx context.Context, idToken string) (*entity.Sponsor, error) {
	// Structural check first: a malformed or expired token never leaves the
	// device.
	if _, err := srv.oauthSvc.VerifyIDToken(ctx, idToken); err != nil {
		return nil, errors.Wrap(domainerrors.ErrGoogleTokenInvalid, err.Error())
	}

	sponsor, err := srv.authRepo.GoogleLogin(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "google login")
	}

	if err := srv.sessionStore.Save(sponsor); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	srv.logger.Info("sponsor logged in with Google", slog.String("sponsorID", sponsor.ID))

	return sponsor, nil
}

func (srv *authService) CurrentSponsor(ctx context.Context) (*entity.Sponsor, error) {
	id, ok := srv.sessionStore.CurrentID()
	if !ok {
		return nil, domainerrors.ErrNotLoggedIn
	}

	sponsor, err := srv.authRepo.Me(ctx, id)
	if err != nil {
		// Fall back to the persisted profile when the backend is unreachable
		// so the app still knows who is signed in offline.
		if domainerrors.StatusOf(err) == 0 {
			cached, cacheErr := srv.sessionStore.Current()
			if cacheErr == nil && cached != nil {
				return cached, nil
			}
		}

		return nil, errors.Wrap(err, "refresh current sponsor")
	}

	if err := srv.sessionStore.Save(sponsor); err != nil {
		srv.logger.Warn("session refresh not persisted", slog.Any("error", err))
	}

	return sponsor, nil
}

func (srv *authService) IsLoggedIn() bool {
	return srv.sessionStore.IsLoggedIn()
}

// Logout clears the local session even when the backend call fails; staying
// signed in locally after the user asked to leave is the worse failure.
func (srv *authService) Logout(ctx context.Context) error {
	if id, ok := srv.sessionStore.CurrentID(); ok {
		if err := srv.authRepo.Logout(ctx, id); err != nil {
			srv.logger.Warn("backend logout failed", slog.Any("error", err))
		}
	}

	if err := srv.sessionStore.Clear(); err != nil {
		return errors.Wrap(err, "clear session")
	}

	return nil
}
