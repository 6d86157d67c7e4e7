package models

import (
	"context"
)

type VenuesRepo interface {
	LoadVenues(ctx context.Context, forceRefresh bool) ([]Venue, error)
	GetVenueByID(ctx context.Context, id string) (*Venue, error)
}

type HostsRepo interface {
	LoadHosts(ctx context.Context) ([]Host, error)
	GetHostByID(ctx context.Context, id string) (*Host, error)
}

// LoadVenues reads venues.csv once and serves the cached set afterwards.
// The collection is read-only from the app's perspective, so there is no
// TTL; pass forceRefresh to re-parse after an out-of-band edit.
func (cr *CsvRepo) LoadVenues(ctx context.Context, forceRefresh bool) ([]Venue, error) {
	if !forceRefresh {
		if cached, ok := cr.venues.get(); ok {
			return cached, nil
		}
	}

	_, rows, err := cr.readCsvFile(VenuesFile)
	if err != nil {
		cr.logger.Error("failed to read venues file", "error", err)
		return []Venue{}, nil
	}

	venues := make([]Venue, 0, len(rows))
	for _, row := range rows {
		venues = append(venues, Venue{
			ID:        row["ID"],
			Name:      row["Name"],
			Address:   row["Address"],
			Type:      row["Type"],
			Bio:       row["Bio"],
			Tags:      row["Tags"],
			Residents: row["Residents"],
			PhotoURLs: row["PhotoURLs"],
		})
	}

	cr.venues.set(venues)
	return venues, nil
}

func (cr *CsvRepo) GetVenueByID(ctx context.Context, id string) (*Venue, error) {
	venues, err := cr.LoadVenues(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range venues {
		if venues[i].ID == id {
			return &venues[i], nil
		}
	}
	return nil, nil
}

// LoadHosts re-reads hosts.csv on every call; the collection is small and
// uncached.
func (cr *CsvRepo) LoadHosts(ctx context.Context) ([]Host, error) {
	_, rows, err := cr.readCsvFile(HostsFile)
	if err != nil {
		cr.logger.Error("failed to read hosts file", "error", err)
		return []Host{}, nil
	}

	hosts := make([]Host, 0, len(rows))
	for _, row := range rows {
		hosts = append(hosts, Host{
			ID:       row["ID"],
			Name:     row["Name"],
			Bio:      row["Bio"],
			PhotoURL: row["PhotoURL"],
			Tags:     row["Tags"],
		})
	}
	return hosts, nil
}

func (cr *CsvRepo) GetHostByID(ctx context.Context, id string) (*Host, error) {
	hosts, err := cr.LoadHosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range hosts {
		if hosts[i].ID == id {
			return &hosts[i], nil
		}
	}
	return nil, nil
}
