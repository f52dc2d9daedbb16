// Package sightings keeps a personal log of bird sightings.
//
// The whole log is a Collection: an ordered list of Sighting records that is
// loaded in full, changed in memory and written back in full. There are no
// record identifiers; insertion order is storage order is display order, and
// logging the same species at the same place twice yields two records.
//
// # Storage
//
// A Store moves a Collection to and from durable storage. Two are provided:
//
//   - JSONStore keeps the log in a single JSON file (sightings.json by
//     default). A missing file reads as an empty Collection. Save writes a
//     temporary sibling file and renames it over the target, so readers see
//     either the old log or the new one.
//
//   - SQLiteStore keeps the same Collection in a SQLite table and replaces
//     the table contents inside one transaction on Save.
//
// Neither store locks across processes. Two "log" commands racing on the
// same file can lose one of the two records; the last writer wins.
//
// # Storage Format
//
//	[
//	  {
//	    "species": "American Robin",
//	    "location": "Central Park",
//	    "notes": "Singing in tree",
//	    "count": 2
//	  }
//	]
//
// # Operations
//
// Catalog implements the three user-facing operations on top of a Store:
//
//	cat := sightings.NewCatalog(sightings.NewJSONStore("sightings.json"))
//
//	// Append a record
//	s, err := cat.Log(sightings.LogRequest{Species: "American Robin", Location: "Central Park"})
//
//	// Filter and render
//	listing, err := cat.List(sightings.Filter{Species: "american robin"})
//	fmt.Println(listing.Message())
//	for _, line := range listing.Lines() {
//	    fmt.Println(line)
//	}
//
//	// Export to CSV
//	res, err := cat.Export("")
//
// Filters compare whole values case-insensitively; "Rob" does not match
// "Robin". Export writes the header
//
//	species,location,count,notes,export_timestamp
//
// and one row per record, stamping each row with the local time.
package sightings
