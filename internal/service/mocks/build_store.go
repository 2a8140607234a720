package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

type MockBuildStore struct {
	mock.Mock
}

func NewMockBuildStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBuildStore {
	m := &MockBuildStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBuildStore) Create() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockBuildStore) Load(id string) (models.Selection, error) {
	args := m.Called(id)
	return selection(args.Get(0)), args.Error(1)
}

func (m *MockBuildStore) Add(id string, c *models.Component) (models.Selection, error) {
	args := m.Called(id, c)
	return selection(args.Get(0)), args.Error(1)
}

func (m *MockBuildStore) Remove(id string, t models.ComponentType) (models.Selection, error) {
	args := m.Called(id, t)
	return selection(args.Get(0)), args.Error(1)
}

func (m *MockBuildStore) Clear(id string) (models.Selection, error) {
	args := m.Called(id)
	return selection(args.Get(0)), args.Error(1)
}

func (m *MockBuildStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func selection(v interface{}) models.Selection {
	sel, _ := v.(models.Selection)
	return sel
}
