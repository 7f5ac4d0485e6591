package model

import "testing"

func TestClassifyLocation(t *testing.T) {
	team := []string{"Ahmed", "Luca"}
	clients := []string{"Spire", "HAUHSU"}

	cases := []struct {
		location string
		want     LocationKind
	}{
		{"", LocationUnassigned},
		{"   ", LocationUnassigned},
		{"Lost", LocationLost},
		{"lost", LocationLost},
		{"Damaged", LocationDamaged},
		{"Stock", LocationStock},
		{"Available", LocationStock},
		{"Returned", LocationStock},
		{"Ahmed", LocationTeam},
		{"ahmed (office)", LocationTeam},
		{"Spire", LocationClient},
		{"spire warehouse", LocationClient},
		{"Dr. Somebody", LocationClient}, // unknown defaults to client
	}
	for _, tc := range cases {
		if got := ClassifyLocation(tc.location, team, clients); got != tc.want {
			t.Errorf("ClassifyLocation(%q) = %v, want %v", tc.location, got, tc.want)
		}
	}
}

func TestClassifyLocation_EmptyLists(t *testing.T) {
	if got := ClassifyLocation("Anyone", nil, nil); got != LocationClient {
		t.Fatalf("ClassifyLocation with empty lists = %v, want LocationClient", got)
	}
}
