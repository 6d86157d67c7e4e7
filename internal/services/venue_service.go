package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dancedispatch/server/internal/models"
)

type VenueService struct {
	venuesRepo models.VenuesRepo
}

func NewVenueService(venuesRepo models.VenuesRepo) *VenueService {
	return &VenueService{
		venuesRepo: venuesRepo,
	}
}

// ListVenues returns the cached venue collection, optionally narrowed by
// type and with one id excluded (the venue page excludes itself from its
// "nearby" list).
func (vs *VenueService) ListVenues(ctx context.Context, venueType, exclude string, forceRefresh bool) ([]models.Venue, error) {
	venues, err := vs.venuesRepo.LoadVenues(ctx, forceRefresh)
	if err != nil {
		return nil, err
	}
	if venueType == "" && exclude == "" {
		return venues, nil
	}

	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if venueType != "" && v.Type != venueType {
			continue
		}
		if exclude != "" && v.ID == exclude {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (vs *VenueService) GetVenueByID(ctx context.Context, id string) (*models.Venue, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("venue ID cannot be empty")
	}
	return vs.venuesRepo.GetVenueByID(ctx, id)
}
