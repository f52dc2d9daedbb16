package sightings

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Catalog implements log, list and export on top of a Store
type Catalog struct {
	Store Store

	// ExportDir is where default-named exports are written
	ExportDir string

	// Now is the clock used for export file names and row timestamps
	Now func() time.Time
}

// NewCatalog creates a catalog over store using the local clock
func NewCatalog(store Store) *Catalog {
	return &Catalog{
		Store:     store,
		ExportDir: ".",
		Now:       time.Now,
	}
}

// LogRequest holds the fields of a new sighting. A nil Count means DefaultCount.
type LogRequest struct {
	Species  string
	Location string
	Notes    string
	Count    *int
}

// Log appends a sighting built from req exactly as given and saves the log
func (c *Catalog) Log(req LogRequest) (Sighting, error) {
	coll, err := c.Store.Load()
	if err != nil {
		return Sighting{}, err
	}

	sg := Sighting{
		Species:  req.Species,
		Location: req.Location,
		Notes:    req.Notes,
		Count:    DefaultCount,
	}
	if req.Count != nil {
		sg.Count = *req.Count
	}

	coll = append(coll, sg)
	if err := c.Store.Save(coll); err != nil {
		return Sighting{}, err
	}

	return sg, nil
}

// Filter narrows a listing. Empty fields are not applied.
type Filter struct {
	Species  string
	Location string
}

// Active reports whether any field is set
func (f Filter) Active() bool {
	return f.Species != "" || f.Location != ""
}

// Match reports whether s equals every set field, ignoring case
func (f Filter) Match(s Sighting) bool {
	if f.Species != "" && !strings.EqualFold(s.Species, f.Species) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(s.Location, f.Location) {
		return false
	}
	return true
}

// String names the active filters, e.g. "species: Robin and location: Park"
func (f Filter) String() string {
	var parts []string
	if f.Species != "" {
		parts = append(parts, "species: "+f.Species)
	}
	if f.Location != "" {
		parts = append(parts, "location: "+f.Location)
	}
	return strings.Join(parts, " and ")
}

// Outcome distinguishes the terminal states of a listing
type Outcome int

const (
	OutcomeListed Outcome = iota
	OutcomeNoSightings
	OutcomeNoMatches
)

func (o Outcome) String() string {
	switch o {
	case OutcomeListed:
		return "listed"
	case OutcomeNoSightings:
		return "no_sightings"
	case OutcomeNoMatches:
		return "no_matches"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Listing is the result of List
type Listing struct {
	Outcome   Outcome
	Filter    Filter
	Sightings []Sighting
}

// Message returns the heading or terminal message for the listing
func (l *Listing) Message() string {
	switch l.Outcome {
	case OutcomeNoSightings:
		return "No sightings logged yet."
	case OutcomeNoMatches:
		return "No sightings found for " + l.Filter.String()
	default:
		return "Logged sightings:"
	}
}

// Lines renders one numbered line per sighting, plus an indented notes line
// when the sighting has notes.
func (l *Listing) Lines() []string {
	lines := make([]string, 0, len(l.Sightings))
	for i, s := range l.Sightings {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
		if s.Notes != "" {
			lines = append(lines, "   Notes: "+s.Notes)
		}
	}
	return lines
}

// List loads the log and applies f. It never writes.
func (c *Catalog) List(f Filter) (*Listing, error) {
	coll, err := c.Store.Load()
	if err != nil {
		return nil, err
	}

	if len(coll) == 0 {
		return &Listing{Outcome: OutcomeNoSightings, Filter: f}, nil
	}

	if !f.Active() {
		return &Listing{Outcome: OutcomeListed, Filter: f, Sightings: coll}, nil
	}

	var matched []Sighting
	for _, s := range coll {
		if f.Match(s) {
			matched = append(matched, s)
		}
	}

	if len(matched) == 0 {
		return &Listing{Outcome: OutcomeNoMatches, Filter: f}, nil
	}
	return &Listing{Outcome: OutcomeListed, Filter: f, Sightings: matched}, nil
}

// resolveExportPath applies the default file name and export directory.
func (c *Catalog) resolveExportPath(filename string) string {
	if filename != "" {
		return filename
	}
	return filepath.Join(c.ExportDir, DefaultExportFilename(c.Now()))
}
