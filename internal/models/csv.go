package models

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// readCsvFile parses a whole delimited file into a header plus one map per
// row keyed by column name. Values and header cells are trimmed, mirroring
// how the seed pipeline writes them.
func (cr *CsvRepo) readCsvFile(name string) ([]string, []map[string]string, error) {
	f, err := os.Open(filepath.Join(cr.dataDir, name))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %v", name, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty, expected a header row", name)
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// writeCsvFile serializes every row back to disk, changed and unchanged
// alike. Mutations are whole-file rewrites; there is no partial update path
// and no cross-process locking, so the last writer wins.
func (cr *CsvRepo) writeCsvFile(name string, header []string, rows []map[string]string) error {
	f, err := os.Create(filepath.Join(cr.dataDir, name))
	if err != nil {
		return fmt.Errorf("failed to open %s for rewrite: %v", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %v", name, err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write %s row: %v", name, err)
		}
	}
	w.Flush()
	return w.Error()
}

// appendCsvRows appends records to a file, writing the given header first
// when the file is absent or zero-byte (a touched-but-empty file would
// otherwise never get one and every read would fail the header check). The
// csv writer quotes values containing the delimiter.
func (cr *CsvRepo) appendCsvRows(name string, header []string, records [][]string) error {
	path := filepath.Join(cr.dataDir, name)

	info, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %v", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if os.IsNotExist(statErr) || (statErr == nil && info.Size() == 0) {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write %s header: %v", name, err)
		}
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to append %s row: %v", name, err)
		}
	}
	w.Flush()
	return w.Error()
}
