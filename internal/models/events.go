package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Event is one row of events.csv with its venue and host references
// resolved to display names. LocationID and HostIDs carry the raw
// references so clients can link to the venue/host pages.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	StartDate    string   `json:"startdate"`
	StartTime    string   `json:"starttime"`
	EndDate      string   `json:"enddate"`
	EndTime      string   `json:"endtime"`
	Location     string   `json:"location"`
	LocationID   string   `json:"locationid"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	PhotoURL     string   `json:"imageurl"`
	ExternalURLs string   `json:"externalurls"`
	Hosts        []string `json:"hosts"`
	HostIDs      []string `json:"hostids"`
}

var startLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
}

// StartsAt combines StartDate and StartTime into a wall-clock instant.
// Rows with unparseable dates report ok=false and sort first.
func (e *Event) StartsAt() (time.Time, bool) {
	raw := strings.TrimSpace(e.StartDate + " " + e.StartTime)
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parsePrice tolerates missing or malformed prices: the seed files carry
// blanks and non-numeric placeholders, which surface as null in JSON.
func parsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		// ParseFloat accepts "NaN" and "Inf", neither of which JSON can
		// encode; treat them like the other placeholders.
		return nil
	}
	return &p
}

// splitHostRefs parses the Hosts column: a comma-joined list of host ids,
// optionally wrapped in bracket notation like "[3, 7]".
func splitHostRefs(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), "'\"")
		if p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}
