package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dancedispatch/server/internal/models"
)

type EventService struct {
	eventsRepo models.EventsRepo
}

func NewEventService(eventsRepo models.EventsRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
	}
}

func (es *EventService) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, fmt.Errorf("invalid time window: to is before from")
	}
	return es.eventsRepo.LoadEvents(ctx, filter)
}

func (es *EventService) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("event ID cannot be empty")
	}
	return es.eventsRepo.GetEventByID(ctx, id)
}

// UpdateEvent applies a partial field set to one event. Unknown field
// names are ignored by the store; an empty set is rejected here.
func (es *EventService) UpdateEvent(ctx context.Context, id string, fields map[string]string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("event ID cannot be empty")
	}
	if len(fields) == 0 {
		return "", fmt.Errorf("no fields to update")
	}
	return es.eventsRepo.UpdateEvent(ctx, id, fields)
}
