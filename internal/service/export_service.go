package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pasevin/hubspot-properties-import/internal/client"
	"github.com/pasevin/hubspot-properties-import/internal/csv"
	"github.com/pasevin/hubspot-properties-import/internal/models"
)

type ExportService struct {
	propertyClient client.PropertyClient
	log            *logrus.Logger
}

func NewExportService(propertyClient client.PropertyClient, log *logrus.Logger) *ExportService {
	return &ExportService{
		propertyClient: propertyClient,
		log:            log,
	}
}

// ExportProperties writes every remote property definition, built-in ones
// included, to a file that can be fed back into the import.
func (s *ExportService) ExportProperties(filename string) error {
	defs, err := s.propertyClient.GetAllProperties()
	if err != nil {
		return fmt.Errorf("list properties: %w", err)
	}

	rows := make([]models.PropertyRow, len(defs))
	for i, def := range defs {
		rows[i] = models.RowFromPropertyDefinition(def)
	}

	if err := csv.Write(filename, rows); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	s.log.Infof("Exported %d properties to %s", len(rows), filename)
	return nil
}
