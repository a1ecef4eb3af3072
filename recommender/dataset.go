package recommender

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Required dataset header columns. Matching is case-insensitive.
const (
	columnName     = "Restaurant_Name"
	columnCuisines = "Cuisines"
	columnLocality = "Locality"
	columnAddress  = "Detail_address"
	columnRating   = "Ratings_out_of_5"
	columnVotes    = "Number of votes"
)

// LoadDataset reads the restaurant CSV into an immutable Table.
//
// A missing file is a recoverable condition: an empty table is returned
// together with an error wrapping ErrDataFileMissing so the caller can keep
// running and report it on screen. A present file with a header that lacks a
// required column fails with ErrSchemaMismatch naming the column.
func LoadDataset(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewTable(nil), fmt.Errorf("%w: %s", ErrDataFileMissing, path)
		}
		return NewTable(nil), fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return NewTable(nil), fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return NewTable(nil), fmt.Errorf("%w: empty file %s", ErrSchemaMismatch, filepath.Base(path))
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}
	cols, err := resolveDatasetColumns(header)
	if err != nil {
		return NewTable(nil), err
	}

	records := make([]Restaurant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Restaurant{
			Name:     cellAt(row, cols.name),
			Cuisines: cellAt(row, cols.cuisines),
			Locality: cellAt(row, cols.locality),
			Address:  cellAt(row, cols.address),
		}
		// Malformed numeric cells stay at zero; the row itself is kept.
		if v := cellAt(row, cols.rating); v != "" {
			rec.Rating, _ = strconv.ParseFloat(v, 64)
		}
		if v := cellAt(row, cols.votes); v != "" {
			rec.Votes, _ = strconv.Atoi(v)
		}
		rec.CombinedText = CombinedText(rec)
		records = append(records, rec)
	}
	return NewTable(records), nil
}

type datasetColumns struct {
	name     int
	cuisines int
	locality int
	address  int
	rating   int
	votes    int
}

func resolveDatasetColumns(header []string) (datasetColumns, error) {
	cols := datasetColumns{}
	var err error
	if cols.name, err = requireColumn(header, columnName); err != nil {
		return cols, err
	}
	if cols.cuisines, err = requireColumn(header, columnCuisines); err != nil {
		return cols, err
	}
	if cols.locality, err = requireColumn(header, columnLocality); err != nil {
		return cols, err
	}
	if cols.address, err = requireColumn(header, columnAddress); err != nil {
		return cols, err
	}
	if cols.rating, err = requireColumn(header, columnRating); err != nil {
		return cols, err
	}
	if cols.votes, err = requireColumn(header, columnVotes); err != nil {
		return cols, err
	}
	return cols, nil
}

func requireColumn(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.EqualFold(col, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: column %q not found", ErrSchemaMismatch, name)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cleanCell(row[idx])
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}
