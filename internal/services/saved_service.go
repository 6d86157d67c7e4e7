package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dancedispatch/server/internal/models"
)

type SavedService struct {
	savedRepo models.SavedRepo
}

func NewSavedService(savedRepo models.SavedRepo) *SavedService {
	return &SavedService{
		savedRepo: savedRepo,
	}
}

// Toggle writes the saved flag for a (user, entity) pair. Writes require
// an authenticated user; the handler fails the request before reaching
// here, but the user id is checked again because this is a mutation.
func (ss *SavedService) Toggle(ctx context.Context, kind models.SavedKind, entityID, userID string, saved bool) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown saved entity kind: %s", kind)
	}
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("user must be authenticated to save items")
	}
	if strings.TrimSpace(entityID) == "" {
		return "", fmt.Errorf("entity ID cannot be empty")
	}
	return ss.savedRepo.ToggleSaved(ctx, kind, entityID, userID, saved)
}

// IsSaved answers false for unauthenticated callers rather than erroring.
func (ss *SavedService) IsSaved(ctx context.Context, kind models.SavedKind, entityID, userID string) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("unknown saved entity kind: %s", kind)
	}
	if strings.TrimSpace(entityID) == "" {
		return false, fmt.Errorf("entity ID cannot be empty")
	}
	return ss.savedRepo.IsSaved(ctx, kind, entityID, userID)
}

func (ss *SavedService) ListSaved(ctx context.Context, kind models.SavedKind, userID string) ([]string, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown saved entity kind: %s", kind)
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user must be authenticated to list saved items")
	}
	return ss.savedRepo.ListSaved(ctx, kind, userID)
}
