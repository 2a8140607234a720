package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

type MockPartRepository struct {
	mock.Mock
}

// NewMockPartRepository registers AssertExpectations on t's cleanup.
func NewMockPartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPartRepository {
	m := &MockPartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPartRepository) List(ctx context.Context) ([]*models.Component, error) {
	args := m.Called(ctx)
	return components(args.Get(0)), args.Error(1)
}

func (m *MockPartRepository) ByID(ctx context.Context, id int64) (*models.Component, error) {
	args := m.Called(ctx, id)
	return component(args.Get(0)), args.Error(1)
}

func (m *MockPartRepository) ByType(ctx context.Context, t models.ComponentType) ([]*models.Component, error) {
	args := m.Called(ctx, t)
	return components(args.Get(0)), args.Error(1)
}

func (m *MockPartRepository) ComparePrices(ctx context.Context, name string) ([]models.PriceQuote, error) {
	args := m.Called(ctx, name)
	quotes, _ := args.Get(0).([]models.PriceQuote)
	return quotes, args.Error(1)
}

func (m *MockPartRepository) Create(ctx context.Context, c *models.Component) (*models.Component, error) {
	args := m.Called(ctx, c)
	return component(args.Get(0)), args.Error(1)
}

func (m *MockPartRepository) Update(ctx context.Context, c *models.Component) (*models.Component, error) {
	args := m.Called(ctx, c)
	return component(args.Get(0)), args.Error(1)
}

func (m *MockPartRepository) Delete(ctx context.Context, id int64) (*models.Component, error) {
	args := m.Called(ctx, id)
	return component(args.Get(0)), args.Error(1)
}

func component(v interface{}) *models.Component {
	c, _ := v.(*models.Component)
	return c
}

func components(v interface{}) []*models.Component {
	cs, _ := v.([]*models.Component)
	return cs
}
