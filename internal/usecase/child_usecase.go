// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"smilelink/internal/domain/entity"
)

// ChildUsecase defines the child-facing business operations. Derived queries
// fetch the full collection and filter client-side so mock and live modes
// behave identically.
type ChildUsecase interface {
	ListChildren(ctx context.Context) ([]entity.Child, error)
	GetChild(ctx context.Context, id string) (*entity.Child, error)
	CreateChild(ctx context.Context, input *CreateChildInput) (*entity.Child, error)
	UpdateChild(ctx context.Context, id string, upd entity.ChildUpdate) (*entity.Child, error)
	DeleteChild(ctx context.Context, id string) error

	// AvailableChildren returns the subset eligible for a new sponsorship.
	AvailableChildren(ctx context.Context) ([]entity.Child, error)

	// UploadAvatar stores the image and returns the reachable URL.
	UploadAvatar(ctx context.Context, childID, filename string, content io.Reader) (string, error)
}

// CreateChildInput defines the data required to register a child.
type CreateChildInput struct {
	Name        string   `json:"nombre" validate:"required,min=2,max=100"`
	Age         int      `json:"edad" validate:"required,gte=0,lte=17"`
	Gender      string   `json:"genero" validate:"required,oneof=Masculino Femenino"`
	Description string   `json:"descripcion"`
	Needs       []string `json:"necesidades"`
}
