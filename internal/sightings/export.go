package sightings

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const (
	// ExportTimestampLayout formats the export_timestamp column
	ExportTimestampLayout = "2006-01-02 15:04:05"

	exportFilenameLayout = "20060102_150405"
)

// ExportHeader is the fixed CSV header row; column order is part of the file format.
var ExportHeader = []string{"species", "location", "count", "notes", "export_timestamp"}

// DefaultExportFilename names an export made at t
func DefaultExportFilename(t time.Time) string {
	return fmt.Sprintf("bird_sightings_%s.csv", t.Format(exportFilenameLayout))
}

// ExportResult describes a finished export. Count is zero and Filename empty
// when there was nothing to export.
type ExportResult struct {
	Filename string
	Count    int
}

// ExportError reports a failed export write. No file is left at Filename.
type ExportError struct {
	Filename string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s failed: %v", e.Filename, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Export writes the whole log as CSV to filename, or to a timestamped file in
// ExportDir when filename is empty. Load failures are returned as-is; write
// failures are returned as *ExportError.
func (c *Catalog) Export(filename string) (*ExportResult, error) {
	coll, err := c.Store.Load()
	if err != nil {
		return nil, err
	}

	if len(coll) == 0 {
		return &ExportResult{}, nil
	}

	path := c.resolveExportPath(filename)
	if err := c.writeExportFile(path, coll); err != nil {
		return nil, &ExportError{Filename: path, Err: err}
	}

	return &ExportResult{Filename: path, Count: len(coll)}, nil
}

// writeExportFile writes rows to a temp sibling and renames it into place
// only once every row has been flushed.
func (c *Catalog) writeExportFile(path string, coll Collection) error {
	tmpPath := tempPath(path)
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, coll, c.Now); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}

// WriteExport loads the log and writes it as CSV to w, returning the number
// of rows. Nothing is written for an empty log.
func (c *Catalog) WriteExport(w io.Writer) (int, error) {
	coll, err := c.Store.Load()
	if err != nil {
		return 0, err
	}
	if len(coll) == 0 {
		return 0, nil
	}

	if err := WriteCSV(w, coll, c.Now); err != nil {
		return 0, err
	}
	return len(coll), nil
}

// WriteCSV writes the header and one row per sighting. now is read once per
// row, so rows of a slow export may carry slightly different timestamps.
func WriteCSV(w io.Writer, coll Collection, now func() time.Time) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeader); err != nil {
		return err
	}

	for _, s := range coll {
		row := []string{
			s.Species,
			s.Location,
			strconv.Itoa(s.Count),
			s.Notes,
			now().Format(ExportTimestampLayout),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
