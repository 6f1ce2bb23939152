package client

import "github.com/pasevin/hubspot-properties-import/internal/models"

type GroupClient interface {
	GetGroups() ([]models.PropertyGroup, error)
	CreateGroup(group models.PropertyGroup) (*models.PropertyGroup, error)
	DeleteGroup(name string) error
}

type PropertyClient interface {
	// GetProperties returns custom property definitions only; HubSpot-defined
	// properties are filtered out.
	GetProperties() ([]models.PropertyDefinition, error)
	// GetAllProperties returns every property definition, built-in included.
	GetAllProperties() ([]models.PropertyDefinition, error)
	// GetProperty returns nil without an error when no property has the name.
	GetProperty(name string) (*models.PropertyDefinition, error)
	CreateProperty(def models.PropertyDefinition) (*models.PropertyDefinition, error)
	UpdateProperty(def models.PropertyDefinition) (*models.PropertyDefinition, error)
	DeleteProperty(name string) error
}

type SchemaClient interface {
	GroupClient
	PropertyClient
}
