package testutil

import (
	"encoding/json"
	"testing"
)

// SightingFixture is a test data structure for sighting records.
// This is separate from sightings.Sighting to avoid import cycles.
type SightingFixture struct {
	Species  string `json:"species"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
	Count    int    `json:"count"`
}

// SampleSightings returns a small log with a duplicate and mixed-case names.
func SampleSightings() []SightingFixture {
	return []SightingFixture{
		{Species: "American Robin", Location: "Central Park", Notes: "Singing in tree", Count: 2},
		{Species: "Blue Jay", Location: "Backyard", Count: 1},
		{Species: "american robin", Location: "Backyard", Count: 3},
		{Species: "Northern Cardinal", Location: "Central Park", Notes: "Pair at feeder", Count: 2},
		{Species: "Blue Jay", Location: "Backyard", Count: 1},
	}
}

// SightingsJSON encodes fixtures in the storage file format.
func SightingsJSON(t *testing.T, fixtures []SightingFixture) string {
	t.Helper()

	data, err := json.MarshalIndent(fixtures, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal fixtures: %v", err)
	}
	return string(data)
}

// WriteSightings writes fixtures to a project-relative storage file.
func (e *TestEnv) WriteSightings(path string, fixtures []SightingFixture) {
	e.t.Helper()
	e.CreateFile(path, SightingsJSON(e.t, fixtures))
}
