// Package export writes Spotify datasets to timestamped CSV files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// DefaultBaseFilename is used when no base filename is configured.
const DefaultBaseFilename = "data_export"

const timestampLayout = "20060102_150405"

// ErrInvalidTimezone reports an unrecognized timezone name.
var ErrInvalidTimezone = errors.New("Invalid timezone specified")

// Writer generates timestamped CSV files under a base filename.
type Writer struct {
	base string
	loc  *time.Location
}

// NewWriter returns a Writer stamping filenames in the given timezone.
// An empty base falls back to DefaultBaseFilename, an empty timezone to
// UTC.
func NewWriter(base, timezone string) (*Writer, error) {
	if base == "" {
		base = DefaultBaseFilename
	}
	loc := time.UTC
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, timezone)
		}
	}
	return &Writer{base: base, loc: loc}, nil
}

// Filename returns the base filename with the current timestamp and the
// given suffix appended, e.g. data_export_20240131_235959_tracks.csv.
func (w *Writer) Filename(suffix string) string {
	timestamp := time.Now().In(w.loc).Format(timestampLayout)
	return fmt.Sprintf("%s_%s%s.csv", w.base, timestamp, suffix)
}

// Export writes the header and rows to filename as CSV. An empty
// filename generates a timestamped one. The filename written to is
// returned.
func (w *Writer) Export(filename string, header []string, rows [][]string) (string, error) {
	if filename == "" {
		filename = w.Filename("")
	}
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", filename, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			f.Close()
			return "", fmt.Errorf("writing %s: %w", filename, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	return filename, nil
}

// ReadFile reads back a CSV file, header row included. The file must
// already exist.
func ReadFile(path string) ([][]string, error) {
	if err := validateFileExists(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

func validateFileExists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("The file %s does not exist.", path)
	}
	return nil
}
