package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dancedispatch/server/internal/models"
)

// ReviewEntry is one sub-review in a submission payload, as sent by the
// review form: the general comment, the venue rating or one DJ rating.
type ReviewEntry struct {
	EntityType   string `json:"entityType" validate:"required"`
	EntityID     string `json:"entityId" validate:"required"`
	Rating       int    `json:"rating" validate:"min=0,max=5"`
	Comment      string `json:"comment" validate:"max=1000"`
	PrivacyLevel string `json:"privacyLevel"`
}

type ReviewService struct {
	reviewsRepo models.ReviewsRepo
	userRepo    models.UserRepo
	logger      *slog.Logger
	now         func() time.Time
}

func NewReviewService(reviewsRepo models.ReviewsRepo, userRepo models.UserRepo, logger *slog.Logger) *ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		reviewsRepo: reviewsRepo,
		userRepo:    userRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit sanitizes and validates every entry before persisting any of
// them, so a malformed entry rejects the whole submission instead of
// leaving a partial bundle behind. The timestamp is taken once here and
// stamped on every row: it is the bundle grouping key, and per-row stamps
// could split a submission straddling a second boundary.
func (rs *ReviewService) Submit(ctx context.Context, entries []ReviewEntry, userID, eventID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user must be authenticated to submit reviews")
	}
	if strings.TrimSpace(eventID) == "" {
		return fmt.Errorf("event ID cannot be empty")
	}
	if len(entries) == 0 {
		return fmt.Errorf("at least one review entry must be provided")
	}

	submitDate := rs.now().Format(models.ReviewTimeLayout)

	rows := make([]models.ReviewRow, 0, len(entries))
	for i, entry := range entries {
		if err := models.Validate.Struct(entry); err != nil {
			return fmt.Errorf("review %d: %v", i+1, err)
		}
		row := models.ReviewRow{
			UserID:       userID,
			EventID:      eventID,
			EntityType:   entry.EntityType,
			EntityID:     entry.EntityID,
			Rating:       entry.Rating,
			Comment:      entry.Comment,
			PrivacyLevel: entry.PrivacyLevel,
			SubmitDate:   submitDate,
		}
		row.Sanitize()
		if err := row.ValidateEntry(); err != nil {
			return fmt.Errorf("review %d: %v", i+1, err)
		}
		rows = append(rows, row)
	}

	for _, row := range rows {
		if err := rs.reviewsRepo.SubmitReview(ctx, row); err != nil {
			return fmt.Errorf("failed to persist review: %v", err)
		}
	}
	return nil
}

// ListForEvent returns grouped bundles with reviewer usernames resolved
// from the hosted profiles table. A failed lookup falls back to the raw
// user id so the page still renders.
func (rs *ReviewService) ListForEvent(ctx context.Context, eventID string) ([]models.ReviewBundle, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, fmt.Errorf("event ID cannot be empty")
	}

	bundles, err := rs.reviewsRepo.ListReviewBundles(ctx, eventID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	for i := range bundles {
		if bundles[i].PrivacyLevel == models.PrivacyAnonymous {
			continue
		}
		userID := bundles[i].UserID
		name, ok := names[userID]
		if !ok {
			name, err = rs.userRepo.GetUsername(ctx, userID)
			if err != nil {
				rs.logger.Info("username lookup failed, using user id", "user_id", userID, "error", err)
				name = userID
			}
			names[userID] = name
		}
		bundles[i].Username = name
	}
	return bundles, nil
}
