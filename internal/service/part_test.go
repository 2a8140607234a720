package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/internal/service/mocks"
)

func TestServiceCreatePart(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	type testCase struct {
		name   string
		part   *models.Component
		setup  func(d deps)
		assert func(t *testing.T, res *models.Component, err error, d deps)
	}

	name := gofakeit.ProductName()
	price := gofakeit.Price(1000, 50000)

	tests := []testCase{
		{
			name: "validation error: missing name",
			part: &models.Component{Type: models.TypeCPU, Price: price},
			assert: func(t *testing.T, res *models.Component, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrInvalidArgument)
				assert.ErrorIs(t, err, models.ErrPartFieldsRequired)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "validation error: zero price",
			part: &models.Component{Name: name, Type: models.TypeCPU},
			assert: func(t *testing.T, res *models.Component, err error, d deps) {
				assert.ErrorIs(t, err, models.ErrPartFieldsRequired)
				assert.Nil(t, res)
			},
		},
		{
			name: "validation error: missing type",
			part: &models.Component{Name: name, Price: price},
			assert: func(t *testing.T, res *models.Component, err error, d deps) {
				assert.ErrorIs(t, err, models.ErrPartFieldsRequired)
			},
		},
		{
			name: "validation error: unknown type",
			part: &models.Component{Name: name, Type: "Toaster", Price: price},
			assert: func(t *testing.T, res *models.Component, err error, d deps) {
				assert.ErrorIs(t, err, models.ErrInvalidArgument)
				assert.ErrorIs(t, err, models.ErrUnknownPartType)
				assert.NotErrorIs(t, err, models.ErrPartFieldsRequired)
			},
		},
		{
			name: "validation error: nil part",
			part: nil,
			assert: func(t *testing.T, res *models.Component, err error, d deps) {
				assert.ErrorIs(t, err, models.ErrInvalidArgument)
			},
		},
		{
			name: "repository error",
			part: &models.Component{Name: name, Type: models.TypeGPU, Price: price},
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, mock.AnythingOfType("*models.Component")).
					Return(nil, errors.New("db write failed")).
					Once()
			},
			assert: func(t *testing.T, res *models.Component, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db write failed")
				assert.ErrorContains(t, err, "service.CreatePart")
				assert.Nil(t, res)
			},
		},
		{
			name: "success: alias type is normalised",
			part: &models.Component{Name: "  " + name + " ", Type: "ram", Price: price},
			setup: func(d deps) {
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(c *models.Component) bool {
						return c.Type == models.TypeMemory && c.Name == name
					})).
					Return(&models.Component{ID: 42, Name: name, Type: models.TypeMemory, Price: price}, nil).
					Once()
			},
			assert: func(t *testing.T, res *models.Component, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, int64(42), res.ID)
				assert.Equal(t, models.TypeMemory, res.Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockPartRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewPartService(d.repository, time.Second)

			res, err := svc.CreatePart(context.Background(), tt.part)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServicePart(t *testing.T) {
	t.Parallel()

	want := &models.Component{ID: 7, Name: gofakeit.ProductName(), Type: models.TypePSU, Price: 5800}

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		_, err := NewPartService(repo, time.Second).Part(context.Background(), 0)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	})

	t.Run("not found is passed through", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		repo.On("ByID", mock.Anything, int64(404)).Return(nil, models.ErrPartNotFound).Once()

		_, err := NewPartService(repo, time.Second).Part(context.Background(), 404)
		assert.ErrorIs(t, err, models.ErrPartNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		repo.On("ByID", mock.Anything, int64(7)).Return(want, nil).Once()

		got, err := NewPartService(repo, time.Second).Part(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestServicePartsByType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    models.ComponentType
		wantErr error
	}{
		{name: "exact", raw: "GPU", want: models.TypeGPU},
		{name: "lower case", raw: "cpu cooler", want: models.TypeCPUCooler},
		{name: "alias", raw: "Power Supply", want: models.TypePSU},
		{name: "unknown", raw: "Toaster", wantErr: models.ErrUnknownPartType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockPartRepository(t)
			if tt.wantErr == nil {
				repo.On("ByType", mock.Anything, tt.want).Return([]*models.Component{}, nil).Once()
			}

			parts, err := NewPartService(repo, time.Second).PartsByType(context.Background(), tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, models.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, parts)
		})
	}
}

func TestServiceComparePrices(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockPartRepository(t)
	quotes := []models.PriceQuote{{Name: "AMD Ryzen 5 5600", Price: 8500, Retailer: "PC Express"}}
	repo.On("ComparePrices", mock.Anything, "ryzen").Return(quotes, nil).Once()

	svc := NewPartService(repo, time.Second)

	got, err := svc.ComparePrices(context.Background(), "  ryzen ")
	require.NoError(t, err)
	assert.Equal(t, quotes, got)

	_, err = svc.ComparePrices(context.Background(), "   ")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestServiceUpdateAndDeletePart(t *testing.T) {
	t.Parallel()

	t.Run("update sets the path id", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		repo.
			On("Update", mock.Anything, mock.MatchedBy(func(c *models.Component) bool { return c.ID == 9 })).
			Return(&models.Component{ID: 9, Name: "GTX 1660", Type: models.TypeGPU, Price: 11000}, nil).
			Once()

		got, err := NewPartService(repo, time.Second).
			UpdatePart(context.Background(), 9, &models.Component{ID: 1, Name: "GTX 1660", Type: models.TypeGPU, Price: 11000})
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
	})

	t.Run("update of a missing part", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil, models.ErrPartNotFound).Once()

		_, err := NewPartService(repo, time.Second).
			UpdatePart(context.Background(), 404, &models.Component{Name: "x", Type: models.TypeGPU, Price: 1})
		assert.ErrorIs(t, err, models.ErrPartNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPartRepository(t)
		repo.On("Delete", mock.Anything, int64(3)).Return(&models.Component{ID: 3}, nil).Once()
		repo.On("Delete", mock.Anything, int64(4)).Return(nil, models.ErrPartNotFound).Once()

		svc := NewPartService(repo, time.Second)

		got, err := svc.DeletePart(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)

		_, err = svc.DeletePart(context.Background(), 4)
		assert.ErrorIs(t, err, models.ErrPartNotFound)

		_, err = svc.DeletePart(context.Background(), -1)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	})
}
