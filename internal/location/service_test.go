package location_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/conectando/internal/location"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    location.CreateParams
		setupMock func(m *location.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: location.CreateParams{Name: "  Santa Rita ", Population: 1000},
			setupMock: func(m *location.MockRepository) {
				m.EXPECT().
					CreateLocation(gomock.Any(), &location.Location{Name: "Santa Rita", Population: 1000}).
					Return(nil)
			},
		},
		{
			name:      "EmptyName",
			params:    location.CreateParams{Name: " ", Population: 1000},
			setupMock: func(*location.MockRepository) {},
			wantErr:   location.ErrInvalid,
		},
		{
			name:      "NegativePopulation",
			params:    location.CreateParams{Name: "Cruz Azul", Population: -1},
			setupMock: func(*location.MockRepository) {},
			wantErr:   location.ErrInvalid,
		},
		{
			name:   "RepoError",
			params: location.CreateParams{Name: "Cruz Azul", Population: 10},
			setupMock: func(m *location.MockRepository) {
				m.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Return(errRepo)
			},
			wantErr: errRepo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := location.NewMockRepository(ctrl)
			tt.setupMock(repo)

			loc, err := location.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Santa Rita", loc.Name)
		})
	}
}

var errRepo = errors.New("repo error")

func TestService_ImportBatch(t *testing.T) {
	t.Run("UpsertsAll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := location.NewMockRepository(ctrl)

		repo.EXPECT().UpsertLocations(gomock.Any(), []*location.Location{
			{Name: "Santa Rita", Population: 1000},
			{Name: "Rio Tercero", Population: 2500},
		}).Return(nil)

		got, err := location.NewService(repo).ImportBatch(context.Background(), []location.CreateParams{
			{Name: "Santa Rita", Population: 1000},
			{Name: "Rio Tercero ", Population: 2500},
		})

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("InvalidRowStoresNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := location.NewMockRepository(ctrl)

		_, err := location.NewService(repo).ImportBatch(context.Background(), []location.CreateParams{
			{Name: "Santa Rita", Population: 1000},
			{Name: "", Population: 5},
		})

		assert.True(t, errors.Is(err, location.ErrInvalid))
	})

	t.Run("Empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := location.NewMockRepository(ctrl)

		got, err := location.NewService(repo).ImportBatch(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := location.NewMockRepository(ctrl)

	repo.EXPECT().GetLocation(gomock.Any(), "Nowhere").Return(nil, location.ErrNotFound)

	_, err := location.NewService(repo).Get(context.Background(), "Nowhere")

	assert.True(t, errors.Is(err, location.ErrNotFound))
}
