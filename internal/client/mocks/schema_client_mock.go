package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pasevin/hubspot-properties-import/internal/client"
	"github.com/pasevin/hubspot-properties-import/internal/models"
)

// MockSchemaClient is a mock implementation of client.SchemaClient
type MockSchemaClient struct {
	mock.Mock
}

// Compile-time check to ensure interface compliance
var _ client.SchemaClient = (*MockSchemaClient)(nil)

func (m *MockSchemaClient) GetGroups() ([]models.PropertyGroup, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PropertyGroup), args.Error(1)
}

func (m *MockSchemaClient) CreateGroup(group models.PropertyGroup) (*models.PropertyGroup, error) {
	args := m.Called(group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyGroup), args.Error(1)
}

func (m *MockSchemaClient) DeleteGroup(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockSchemaClient) GetProperties() ([]models.PropertyDefinition, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PropertyDefinition), args.Error(1)
}

func (m *MockSchemaClient) GetAllProperties() ([]models.PropertyDefinition, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PropertyDefinition), args.Error(1)
}

func (m *MockSchemaClient) GetProperty(name string) (*models.PropertyDefinition, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyDefinition), args.Error(1)
}

func (m *MockSchemaClient) CreateProperty(def models.PropertyDefinition) (*models.PropertyDefinition, error) {
	args := m.Called(def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyDefinition), args.Error(1)
}

func (m *MockSchemaClient) UpdateProperty(def models.PropertyDefinition) (*models.PropertyDefinition, error) {
	args := m.Called(def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyDefinition), args.Error(1)
}

func (m *MockSchemaClient) DeleteProperty(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
