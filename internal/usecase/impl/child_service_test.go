package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/infra/mock"
	"smilelink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChildService(t *testing.T) (usecase.ChildUsecase, *mock.Store) {
	t.Helper()

	store := newSeededStore(t)

	return NewChildService(mock.NewChildRepository(store), mock.NewUploader(store), testLogger()), store
}

func TestChildService_AvailableIsSubsetOfAll(t *testing.T) {
	svc, _ := newChildService(t)
	ctx := context.Background()

	all, err := svc.ListChildren(ctx)
	require.NoError(t, err)

	available, err := svc.AvailableChildren(ctx)
	require.NoError(t, err)

	assert.Less(t, len(available), len(all))

	ids := map[string]struct{}{}
	for _, c := range all {
		ids[c.ID] = struct{}{}
	}
	for _, c := range available {
		assert.Contains(t, ids, c.ID)
		assert.True(t, c.Available())
	}
}

func TestChildService_CreateValidation(t *testing.T) {
	svc, _ := newChildService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.CreateChildInput
	}{
		{name: "missing name", input: usecase.CreateChildInput{Age: 8, Gender: "Femenino"}},
		{name: "age out of range", input: usecase.CreateChildInput{Name: "Pedro", Age: 30, Gender: "Masculino"}},
		{name: "unknown gender", input: usecase.CreateChildInput{Name: "Pedro", Age: 8, Gender: "otro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateChild(ctx, &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestChildService_CreateAndFetch(t *testing.T) {
	svc, _ := newChildService(t)
	ctx := context.Background()

	created, err := svc.CreateChild(ctx, &usecase.CreateChildInput{
		Name:   "Pedro Aguilar",
		Age:    11,
		Gender: "Masculino",
		Needs:  []string{"Bicicleta"},
	})
	require.NoError(t, err)
	assert.True(t, created.Available())

	fetched, err := svc.GetChild(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
}

func TestChildService_UploadAvatar(t *testing.T) {
	svc, _ := newChildService(t)
	ctx := context.Background()

	url, err := svc.UploadAvatar(ctx, "N001", "cara.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Contains(t, url, "N001")

	child, err := svc.GetChild(ctx, "N001")
	require.NoError(t, err)
	require.NotNil(t, child.AvatarURL)
	assert.Equal(t, url, *child.AvatarURL)
}
