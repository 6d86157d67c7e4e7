package models

import (
	"fmt"
	"strings"
)

const (
	EntityEvent = "event"
	EntityVenue = "venue"
	EntityDJ    = "dj"

	PrivacyPublic    = "public"
	PrivacyPrivate   = "private"
	PrivacyAnonymous = "anonymous"

	maxReviewCommentLen = 1000
)

// ReviewRow is one line of reviews.csv: a single rating/comment against one
// target entity. Rows sharing UserID and SubmitDate belong to the same
// submission bundle. Rating 0 means comment-only.
type ReviewRow struct {
	UserID       string `json:"userId"`
	EventID      string `json:"eventId"`
	EntityType   string `json:"entityType"`
	EntityID     string `json:"entityId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	PrivacyLevel string `json:"privacyLevel"`
	SubmitDate   string `json:"submitDate"`
}

// Sanitize normalizes a row before validation: trims strings, lowercases
// the entity type, clamps the rating into 0..5 and truncates oversized
// comments.
func (r *ReviewRow) Sanitize() {
	r.EntityType = strings.ToLower(strings.TrimSpace(r.EntityType))
	r.EntityID = strings.TrimSpace(r.EntityID)
	r.Comment = strings.TrimSpace(r.Comment)
	r.PrivacyLevel = strings.ToLower(strings.TrimSpace(r.PrivacyLevel))
	if r.PrivacyLevel == "" {
		r.PrivacyLevel = PrivacyPublic
	}
	if r.Rating < 0 {
		r.Rating = 0
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	if len(r.Comment) > maxReviewCommentLen {
		r.Comment = r.Comment[:maxReviewCommentLen]
	}
}

func (r ReviewRow) ValidateEntry() error {
	switch r.EntityType {
	case EntityEvent, EntityVenue, EntityDJ:
	default:
		return fmt.Errorf("entity type must be one of: event, venue, dj")
	}
	if r.EntityID == "" {
		return fmt.Errorf("entity ID cannot be empty")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	switch r.PrivacyLevel {
	case PrivacyPublic, PrivacyPrivate, PrivacyAnonymous:
	default:
		return fmt.Errorf("privacy level must be one of: public, private, anonymous")
	}
	return nil
}

// SubReview is a single rating/comment inside a bundle.
type SubReview struct {
	EntityID string `json:"entityId"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// ReviewBundle is one user's submission for one event: an optional general
// comment, an optional venue sub-review and zero or more DJ sub-reviews,
// all sharing a privacy level.
type ReviewBundle struct {
	UserID       string      `json:"userId"`
	Username     string      `json:"username,omitempty"`
	EventID      string      `json:"eventId"`
	SubmitDate   string      `json:"submitDate"`
	PrivacyLevel string      `json:"privacyLevel"`
	MainComment  string      `json:"mainComment,omitempty"`
	VenueReview  *SubReview  `json:"venueReview,omitempty"`
	DJReviews    []SubReview `json:"djReviews,omitempty"`
}
