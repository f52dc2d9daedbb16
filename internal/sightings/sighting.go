package sightings

import (
	"encoding/json"
	"fmt"
)

// DefaultCount is the number of birds recorded when the caller gives none.
const DefaultCount = 1

// Sighting is one logged observation
type Sighting struct {
	Species  string `json:"species"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
	Count    int    `json:"count"`
}

// Collection is the full ordered log, the unit of persistence
type Collection []Sighting

// UnmarshalJSON fills in the defaults for records written without a count or notes.
func (s *Sighting) UnmarshalJSON(data []byte) error {
	type alias Sighting
	var raw struct {
		alias
		Count *int `json:"count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Sighting(raw.alias)
	s.Count = DefaultCount
	if raw.Count != nil {
		s.Count = *raw.Count
	}
	return nil
}

// String renders the sighting the way the log command reports it.
func (s Sighting) String() string {
	return fmt.Sprintf("%d %s at %s", s.Count, s.Species, s.Location)
}
