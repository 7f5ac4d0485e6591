package model

import "strings"

// LocationKind classifies the overloaded location field: it is either a
// custodian (team member or client) or a status keyword.
type LocationKind int

const (
	LocationUnassigned LocationKind = iota
	LocationLost
	LocationDamaged
	LocationStock // stock / available / returned
	LocationTeam
	LocationClient
)

// ClassifyLocation maps a location string to its kind using the configured
// team-member and client lists. Matching is case-insensitive; custodian
// names match as substrings ("Ahmed (office)" is still Ahmed). Anything
// unrecognized is treated as an external client.
func ClassifyLocation(location string, teamMembers, clients []string) LocationKind {
	lower := strings.ToLower(strings.TrimSpace(location))
	if lower == "" {
		return LocationUnassigned
	}

	switch lower {
	case "lost":
		return LocationLost
	case "damaged":
		return LocationDamaged
	case "returned", "stock", "available":
		return LocationStock
	}

	for _, member := range teamMembers {
		if m := strings.ToLower(member); m != "" && strings.Contains(lower, m) {
			return LocationTeam
		}
	}
	for _, client := range clients {
		if c := strings.ToLower(client); c != "" && strings.Contains(lower, c) {
			return LocationClient
		}
	}
	return LocationClient
}
