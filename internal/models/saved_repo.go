package models

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// ToggleSaved upserts the saved flag for a (user, entity) pair and rewrites
// the whole ledger file. Rows load into a map keyed by the composite id, so
// repeated toggles always land on the same row: the ledger holds at most
// one row per pair regardless of the toggle sequence.
func (cr *CsvRepo) ToggleSaved(ctx context.Context, kind SavedKind, entityID, userID string, saved bool) (string, error) {
	header := []string{"ID", "UserID", kind.idColumn(), "Saved"}
	compositeID := CompositeID(userID, entityID)

	_, rows, err := cr.readCsvFile(kind.fileName())
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read %s: %v", kind.fileName(), err)
		}
		rows = nil
	}

	byID := make(map[string]map[string]string, len(rows))
	for _, row := range rows {
		byID[row["ID"]] = row
	}

	if row, ok := byID[compositeID]; ok {
		row["Saved"] = strconv.FormatBool(saved)
	} else {
		rows = append(rows, map[string]string{
			"ID":            compositeID,
			"UserID":        userID,
			kind.idColumn(): entityID,
			"Saved":         strconv.FormatBool(saved),
		})
	}

	if err := cr.writeCsvFile(kind.fileName(), header, rows); err != nil {
		return "", err
	}
	return compositeID, nil
}

// IsSaved scans the ledger for the composite id. Absence, an empty user id
// (unauthenticated caller) and read errors all answer false rather than an
// error, so public pages render without a session.
func (cr *CsvRepo) IsSaved(ctx context.Context, kind SavedKind, entityID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	_, rows, err := cr.readCsvFile(kind.fileName())
	if err != nil {
		if !os.IsNotExist(err) {
			cr.logger.Error("failed to read saved ledger", "kind", string(kind), "error", err)
		}
		return false, nil
	}

	compositeID := CompositeID(userID, entityID)
	for _, row := range rows {
		if row["ID"] == compositeID {
			saved, _ := strconv.ParseBool(row["Saved"])
			return saved, nil
		}
	}
	return false, nil
}

// ListSaved returns the entity ids a user currently has saved.
func (cr *CsvRepo) ListSaved(ctx context.Context, kind SavedKind, userID string) ([]string, error) {
	if userID == "" {
		return []string{}, nil
	}

	_, rows, err := cr.readCsvFile(kind.fileName())
	if err != nil {
		if !os.IsNotExist(err) {
			cr.logger.Error("failed to read saved ledger", "kind", string(kind), "error", err)
		}
		return []string{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row["UserID"] != userID {
			continue
		}
		if saved, _ := strconv.ParseBool(row["Saved"]); saved {
			ids = append(ids, row[kind.idColumn()])
		}
	}
	return ids, nil
}
