// Package timezones carries the curated list of IANA zones offered in
// profile settings. The list is deliberately short: one representative
// zone per office region, not the full tz database.
package timezones

import "sort"

type Zone struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var zones = []Zone{
	{ID: "America/Los_Angeles", Label: "Pacific Time (US)"},
	{ID: "America/Denver", Label: "Mountain Time (US)"},
	{ID: "America/Chicago", Label: "Central Time (US)"},
	{ID: "America/New_York", Label: "Eastern Time (US)"},
	{ID: "America/Sao_Paulo", Label: "São Paulo"},
	{ID: "Europe/London", Label: "London"},
	{ID: "Europe/Berlin", Label: "Berlin"},
	{ID: "Europe/Kyiv", Label: "Kyiv"},
	{ID: "Asia/Dubai", Label: "Dubai"},
	{ID: "Asia/Kolkata", Label: "India"},
	{ID: "Asia/Singapore", Label: "Singapore"},
	{ID: "Asia/Tokyo", Label: "Tokyo"},
	{ID: "Asia/Seoul", Label: "Seoul"},
	{ID: "Australia/Sydney", Label: "Sydney"},
	{ID: "Pacific/Auckland", Label: "Auckland"},
	{ID: "UTC", Label: "UTC"},
}

var byID = func() map[string]Zone {
	m := make(map[string]Zone, len(zones))
	for _, z := range zones {
		m[z.ID] = z
	}
	return m
}()

// Zones returns the offered zones sorted by label.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Valid reports whether id is one of the offered zones. The empty string
// is valid: it means the user never picked one.
func Valid(id string) bool {
	if id == "" {
		return true
	}
	_, ok := byID[id]
	return ok
}

// Label returns the display label for a zone id, or the id itself when it
// is not in the offered list (documents written by older clients).
func Label(id string) string {
	if z, ok := byID[id]; ok {
		return z.Label
	}
	return id
}
