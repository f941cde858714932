// Package report serializes engine output for persistence and
// re-display.
//
// Distance records and page-usage summaries are written as JSON side
// files next to the model so viewers can re-open results without
// recomputing them. The formats are stable and round-trip cleanly:
// write -> read produces identical values.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// Distances is the canonical serialization of a batch distance
// computation. Records are sorted by page name for deterministic
// output.
type Distances struct {
	ComputedAt time.Time            `json:"computedAt,omitempty" bson:"computed_at,omitempty"`
	Records    []nav.DistanceRecord `json:"records" bson:"records"`
}

// NewDistances wraps batch records with a computation timestamp.
// The input slice is cloned and sorted; the caller's copy is untouched.
func NewDistances(records []nav.DistanceRecord, at time.Time) Distances {
	out := Distances{ComputedAt: at, Records: slices.Clone(records)}
	slices.SortFunc(out.Records, func(a, b nav.DistanceRecord) int {
		switch {
		case a.Page < b.Page:
			return -1
		case a.Page > b.Page:
			return 1
		default:
			return 0
		}
	})
	return out
}

// MarshalDistances converts distance records to JSON bytes.
func MarshalDistances(d Distances) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDistancesTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDistances writes distance records as JSON to an io.Writer.
func WriteDistances(d Distances, w io.Writer) error {
	return writeDistancesTo(d, w)
}

// WriteDistancesFile writes distance records to a JSON file.
// The file is created with 0644 permissions.
func WriteDistancesFile(d Distances, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDistancesTo(d, f)
}

// ReadDistances decodes distance records from an io.Reader.
func ReadDistances(r io.Reader) (Distances, error) {
	var d Distances
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Distances{}, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// ReadDistancesFile reads a JSON file and returns the decoded records.
func ReadDistancesFile(path string) (Distances, error) {
	f, err := os.Open(path)
	if err != nil {
		return Distances{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDistances(f)
}

func writeDistancesTo(d Distances, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
