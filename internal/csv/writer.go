package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/pasevin/hubspot-properties-import/internal/models"
)

// Write renders rows into an export file in the canonical column order, so
// the result can be fed straight back into the import and delete commands.
func Write(filename string, rows []models.PropertyRow) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	encoder := csvutil.NewEncoder(w)

	// Emit the header even for an empty listing so the file stays a valid
	// import input.
	if err := encoder.EncodeHeader(models.PropertyRow{}); err != nil {
		return fmt.Errorf("encode export header: %w", err)
	}
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("encode export rows: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export file: %w", err)
	}

	return nil
}
