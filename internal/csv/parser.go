package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/pasevin/hubspot-properties-import/internal/models"
)

// Parser reads property rows from a HubSpot export file. Each call to
// ParseRows reopens the file, so one Parser can back several workflow runs.
type Parser struct {
	filename string
}

func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// ParseRows decodes every record of the export into typed rows. Columns are
// matched by header name; unknown columns are ignored and absent ones come
// back empty. A header-only file yields zero rows and no error.
func (p *Parser) ParseRows() ([]models.PropertyRow, error) {
	file, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	defer file.Close()

	decoder, err := csvutil.NewDecoder(csv.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("read export header: %w", err)
	}

	// The decoder reports EOF when no records follow the header; a
	// header-only export is the valid empty sequence, not an error.
	var rows []models.PropertyRow
	if err := decoder.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode export rows: %w", err)
	}

	return rows, nil
}
