package models

import "context"

// SavedKind selects which saved-relation ledger a call operates on. Each
// kind persists to its own file.
type SavedKind string

const (
	SavedEvents SavedKind = "events"
	SavedVenues SavedKind = "venues"
	SavedHosts  SavedKind = "hosts"
)

func (k SavedKind) fileName() string {
	switch k {
	case SavedVenues:
		return "user_saved_venues.csv"
	case SavedHosts:
		return "user_saved_hosts.csv"
	default:
		return "user_saved_events.csv"
	}
}

func (k SavedKind) idColumn() string {
	switch k {
	case SavedVenues:
		return "VenueID"
	case SavedHosts:
		return "HostID"
	default:
		return "EventID"
	}
}

func (k SavedKind) Valid() bool {
	return k == SavedEvents || k == SavedVenues || k == SavedHosts
}

// SavedRelation is one ledger row: a user's saved flag for one entity.
// Rows are created on first toggle and updated in place afterwards; an
// unsave stores false, the row is never removed.
type SavedRelation struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	EntityID string `json:"entityId"`
	Saved    bool   `json:"saved"`
}

// CompositeID builds the ledger key for a (user, entity) pair.
func CompositeID(userID, entityID string) string {
	return userID + "-" + entityID
}

type SavedRepo interface {
	ToggleSaved(ctx context.Context, kind SavedKind, entityID, userID string, saved bool) (string, error)
	IsSaved(ctx context.Context, kind SavedKind, entityID, userID string) (bool, error)
	ListSaved(ctx context.Context, kind SavedKind, userID string) ([]string, error)
}
