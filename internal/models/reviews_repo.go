package models

import (
	"context"
	"os"
	"strconv"
)

// ReviewTimeLayout is the stored SubmitDate format. One-second resolution,
// which doubles as the bundle grouping key.
const ReviewTimeLayout = "2006-01-02 15:04:05"

var reviewsHeader = []string{"UserID", "EventID", "EntityType", "EntityID", "Rating", "Comment", "PrivacyLevel", "SubmitDate"}

type ReviewsRepo interface {
	SubmitReview(ctx context.Context, row ReviewRow) error
	ListReviewBundles(ctx context.Context, eventID string) ([]ReviewBundle, error)
}

// SubmitReview appends one row to the reviews file. Rows are append-only
// and never rewritten. Callers submitting several rows as one bundle must
// stamp them with a shared SubmitDate; an empty stamp falls back to the
// repo clock per row. Two bundles from the same user inside the same
// second will merge on read.
func (cr *CsvRepo) SubmitReview(ctx context.Context, row ReviewRow) error {
	if row.SubmitDate == "" {
		row.SubmitDate = cr.now().Format(ReviewTimeLayout)
	}
	record := []string{
		row.UserID,
		row.EventID,
		row.EntityType,
		row.EntityID,
		strconv.Itoa(row.Rating),
		row.Comment,
		row.PrivacyLevel,
		row.SubmitDate,
	}
	return cr.appendCsvRows(ReviewsFile, reviewsHeader, [][]string{record})
}

// ListReviewBundles reads every row for the event and reduces rows sharing
// (UserID, SubmitDate) into one bundle, in first-seen order: the
// event-typed row becomes the general comment, the venue-typed row the
// venue sub-review, dj-typed rows the per-host list.
func (cr *CsvRepo) ListReviewBundles(ctx context.Context, eventID string) ([]ReviewBundle, error) {
	_, rows, err := cr.readCsvFile(ReviewsFile)
	if err != nil {
		if !os.IsNotExist(err) {
			cr.logger.Error("failed to read reviews file", "error", err)
		}
		return []ReviewBundle{}, nil
	}

	byKey := make(map[string]*ReviewBundle)
	order := make([]string, 0)

	for _, row := range rows {
		if row["EventID"] != eventID {
			continue
		}

		key := row["UserID"] + "|" + row["SubmitDate"]
		bundle, ok := byKey[key]
		if !ok {
			bundle = &ReviewBundle{
				UserID:       row["UserID"],
				EventID:      eventID,
				SubmitDate:   row["SubmitDate"],
				PrivacyLevel: row["PrivacyLevel"],
			}
			byKey[key] = bundle
			order = append(order, key)
		}

		rating, _ := strconv.Atoi(row["Rating"])
		switch row["EntityType"] {
		case EntityEvent:
			bundle.MainComment = row["Comment"]
		case EntityVenue:
			bundle.VenueReview = &SubReview{
				EntityID: row["EntityID"],
				Rating:   rating,
				Comments: row["Comment"],
			}
		case EntityDJ:
			bundle.DJReviews = append(bundle.DJReviews, SubReview{
				EntityID: row["EntityID"],
				Rating:   rating,
				Comments: row["Comment"],
			})
		}
	}

	bundles := make([]ReviewBundle, 0, len(order))
	for _, key := range order {
		bundles = append(bundles, *byKey[key])
	}
	return bundles, nil
}
