package models

import (
	"context"
	"strconv"
	"strings"
)

const (
	UnknownVenueName = "Unknown Venue"
	UnknownHostName  = "Unknown Host"
)

// ResolveLocation turns an event Location field into a display name. The
// field holds either a literal venue string or a numeric venue id; numeric
// values are looked up in the venues collection (served from its cache),
// literals pass through unchanged. A dangling reference yields the Unknown
// sentinel rather than an error.
func (cr *CsvRepo) ResolveLocation(ctx context.Context, raw string) string {
	ref := strings.TrimSpace(raw)
	if _, err := strconv.Atoi(ref); err != nil {
		return raw
	}

	venues, err := cr.LoadVenues(ctx, false)
	if err != nil {
		return UnknownVenueName
	}
	for _, v := range venues {
		if v.ID == ref {
			return v.Name
		}
	}
	return UnknownVenueName
}

// ResolveHostName resolves a Hosts reference the same way, scanning
// hosts.csv by id. Hosts are uncached, so every reference costs a file
// read.
func (cr *CsvRepo) ResolveHostName(ctx context.Context, raw string) string {
	ref := strings.TrimSpace(raw)
	if _, err := strconv.Atoi(ref); err != nil {
		return raw
	}

	hosts, err := cr.LoadHosts(ctx)
	if err != nil {
		return UnknownHostName
	}
	for _, h := range hosts {
		if h.ID == ref {
			return h.Name
		}
	}
	return UnknownHostName
}
