package impl

import (
	"context"
	"io"
	"log/slog"

	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"
	"smilelink/internal/domain/service"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
)

type childService struct {
	childRepo repository.ChildRepository
	uploader  service.Uploader
	logger    *slog.Logger
}

// NewChildService is the constructor for childService.
func NewChildService(
	childRepo repository.ChildRepository,
	uploader service.Uploader,
	logger *slog.Logger,
) usecase.ChildUsecase {
	return &childService{
		childRepo: childRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

func (srv *childService) ListChildren(ctx context.Context) ([]entity.Child, error) {
	children, err := srv.childRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list children")
	}

	return children, nil
}

func (srv *childService) GetChild(ctx context.Context, id string) (*entity.Child, error) {
	child, err := srv.childRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get child %s", id)
	}

	return child, nil
}

func (srv *childService) CreateChild(ctx context.Context, input *usecase.CreateChildInput) (*entity.Child, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	created, err := srv.childRepo.Create(ctx, entity.Child{
		Name:             input.Name,
		Age:              input.Age,
		Gender:           input.Gender,
		Description:      input.Description,
		Needs:            input.Needs,
		SponsorshipState: entity.SponsorshipAvailable,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create child")
	}

	srv.logger.Info("child registered", slog.String("childID", created.ID))

	return created, nil
}

func (srv *childService) UpdateChild(ctx context.Context, id string, upd entity.ChildUpdate) (*entity.Child, error) {
	updated, err := srv.childRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, errors.Wrapf(err, "update child %s", id)
	}

	return updated, nil
}

func (srv *childService) DeleteChild(ctx context.Context, id string) error {
	if err := srv.childRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete child %s", id)
	}

	return nil
}

func (srv *childService) AvailableChildren(ctx context.Context) ([]entity.Child, error) {
	children, err := srv.childRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list children")
	}

	available := make([]entity.Child, 0, len(children))
	for i := range children {
		if children[i].Available() {
			available = append(available, children[i])
		}
	}

	return available, nil
}

func (srv *childService) UploadAvatar(ctx context.Context, childID, filename string, content io.Reader) (string, error) {
	url, err := srv.uploader.UploadAvatar(ctx, childID, filename, content)
	if err != nil {
		return "", errors.Wrapf(err, "upload avatar for child %s", childID)
	}

	srv.logger.Info("avatar uploaded",
		slog.String("childID", childID),
		slog.String("url", url))

	return url, nil
}
