package models

import "context"

// Tag is one row of tags.csv: a curated genre/style label offered as a
// filter facet alongside the comma-joined tag strings on venues and hosts.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TagsRepo interface {
	LoadTags(ctx context.Context) ([]Tag, error)
}

// LoadTags re-reads tags.csv on every call; the collection is small and
// uncached, like hosts.
func (cr *CsvRepo) LoadTags(ctx context.Context) ([]Tag, error) {
	_, rows, err := cr.readCsvFile(TagsFile)
	if err != nil {
		cr.logger.Error("failed to read tags file", "error", err)
		return []Tag{}, nil
	}

	tags := make([]Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, Tag{
			ID:   row["ID"],
			Name: row["Name"],
		})
	}
	return tags, nil
}
