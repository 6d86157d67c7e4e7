package models

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// EventFilter narrows a load. Zero value means the whole collection.
type EventFilter struct {
	VenueID      string
	HostID       string
	UpcomingOnly bool
	From         time.Time
	To           time.Time
}

func (f EventFilter) unfiltered() bool {
	return f.VenueID == "" && f.HostID == "" && f.From.IsZero() && f.To.IsZero()
}

type EventsRepo interface {
	LoadEvents(ctx context.Context, filter EventFilter) ([]Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, fields map[string]string) (string, error)
}

// LoadEvents parses events.csv into resolved Event records, applies the
// filter and sorts ascending by start date+time. Unfiltered loads are
// served from the events cache while it is fresh; any venue/host/window
// filter always re-reads the file. Read failures are non-fatal: they are
// logged and an empty collection is returned so pages can still render.
func (cr *CsvRepo) LoadEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.unfiltered() {
		if cached, ok := cr.events.get(cr.now()); ok {
			return cr.applyUpcoming(cached, filter.UpcomingOnly), nil
		}
	}

	_, rows, err := cr.readCsvFile(EventsFile)
	if err != nil {
		cr.logger.Error("failed to read events file", "error", err)
		return []Event{}, nil
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, cr.eventFromRow(ctx, row))
	}

	sort.SliceStable(events, func(i, j int) bool {
		ti, _ := events[i].StartsAt()
		tj, _ := events[j].StartsAt()
		return ti.Before(tj)
	})

	if filter.unfiltered() {
		cr.events.set(events, cr.now())
		return cr.applyUpcoming(events, filter.UpcomingOnly), nil
	}

	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if filter.VenueID != "" && ev.LocationID != filter.VenueID {
			continue
		}
		if filter.HostID != "" && !containsString(ev.HostIDs, filter.HostID) {
			continue
		}
		start, ok := ev.StartsAt()
		if filter.UpcomingOnly && (!ok || start.Before(cr.now())) {
			continue
		}
		if !filter.From.IsZero() && (!ok || start.Before(filter.From)) {
			continue
		}
		if !filter.To.IsZero() && (!ok || start.After(filter.To)) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// GetEventByID returns the matching event or nil. Absence is not an error.
func (cr *CsvRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	events, err := cr.LoadEvents(ctx, EventFilter{})
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, nil
}

// UpdateEvent applies a partial field set to the row matching id and
// rewrites the whole file. Field names are matched case-insensitively
// against the stored column names; unknown names are ignored. Returns
// ErrNotFound when no row matches.
func (cr *CsvRepo) UpdateEvent(ctx context.Context, id string, fields map[string]string) (string, error) {
	header, rows, err := cr.readCsvFile(EventsFile)
	if err != nil {
		return "", fmt.Errorf("failed to read events file: %v", err)
	}

	columns := make(map[string]string, len(header))
	for _, col := range header {
		columns[strings.ToLower(col)] = col
	}

	found := false
	for _, row := range rows {
		if row["ID"] != id {
			continue
		}
		found = true
		for name, value := range fields {
			if col, ok := columns[strings.ToLower(name)]; ok {
				row[col] = value
			}
		}
		break
	}
	if !found {
		return "", ErrNotFound
	}

	if err := cr.writeCsvFile(EventsFile, header, rows); err != nil {
		return "", err
	}

	cr.InvalidateEvents()
	return id, nil
}

func (cr *CsvRepo) eventFromRow(ctx context.Context, row map[string]string) Event {
	hostIDs := splitHostRefs(row["Hosts"])
	hostNames := make([]string, 0, len(hostIDs))
	for _, ref := range hostIDs {
		hostNames = append(hostNames, cr.ResolveHostName(ctx, ref))
	}

	return Event{
		ID:           row["ID"],
		Title:        row["Title"],
		StartDate:    row["StartDate"],
		StartTime:    row["StartTime"],
		EndDate:      row["EndDate"],
		EndTime:      row["EndTime"],
		Location:     cr.ResolveLocation(ctx, row["Location"]),
		LocationID:   row["Location"],
		Description:  row["Description"],
		Price:        parsePrice(row["Price"]),
		PhotoURL:     row["PhotoURL"],
		ExternalURLs: row["ExternalURLs"],
		Hosts:        hostNames,
		HostIDs:      hostIDs,
	}
}

func (cr *CsvRepo) applyUpcoming(events []Event, upcomingOnly bool) []Event {
	if !upcomingOnly {
		return events
	}
	now := cr.now()
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if start, ok := ev.StartsAt(); ok && !start.Before(now) {
			out = append(out, ev)
		}
	}
	return out
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
