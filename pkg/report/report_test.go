package report

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

func TestNewDistancesSortsRecords(t *testing.T) {
	records := []nav.DistanceRecord{
		{Page: "Zebra", Distance: 3},
		{Page: "Alpha", Distance: 1},
		{Page: "Mid", Distance: nav.Unreachable},
	}

	d := NewDistances(records, time.Now())

	want := []string{"Alpha", "Mid", "Zebra"}
	for i, rec := range d.Records {
		if rec.Page != want[i] {
			t.Errorf("record[%d] = %s, want %s", i, rec.Page, want[i])
		}
	}

	// Caller's slice must be untouched.
	if records[0].Page != "Zebra" {
		t.Error("input slice was mutated")
	}
}

func TestDistancesRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	d := NewDistances([]nav.DistanceRecord{
		{Page: "Home", Distance: 0},
		{Page: "Island", Distance: nav.Unreachable},
		{Page: "Orders", Distance: 2},
	}, at)

	var buf bytes.Buffer
	if err := WriteDistances(d, &buf); err != nil {
		t.Fatalf("WriteDistances: %v", err)
	}

	got, err := ReadDistances(&buf)
	if err != nil {
		t.Fatalf("ReadDistances: %v", err)
	}

	if !got.ComputedAt.Equal(at) {
		t.Errorf("computedAt = %v, want %v", got.ComputedAt, at)
	}
	if !reflect.DeepEqual(got.Records, d.Records) {
		t.Errorf("records = %v, want %v", got.Records, d.Records)
	}
}

func TestDistancesWireFormat(t *testing.T) {
	d := NewDistances([]nav.DistanceRecord{{Page: "Home", Distance: 2}}, time.Time{})

	data, err := MarshalDistances(d)
	if err != nil {
		t.Fatalf("MarshalDistances: %v", err)
	}

	// The side file uses the destinationPage/distance field names that
	// other tooling reads.
	for _, want := range []string{`"destinationPage": "Home"`, `"distance": 2`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %s:\n%s", want, data)
		}
	}
}

func TestDistancesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distances.json")
	d := NewDistances([]nav.DistanceRecord{{Page: "A", Distance: 0}}, time.Now())

	if err := WriteDistancesFile(d, path); err != nil {
		t.Fatalf("WriteDistancesFile: %v", err)
	}
	got, err := ReadDistancesFile(path)
	if err != nil {
		t.Fatalf("ReadDistancesFile: %v", err)
	}
	if len(got.Records) != 1 || got.Records[0].Page != "A" {
		t.Errorf("records = %v", got.Records)
	}
}

func TestReadDistancesInvalid(t *testing.T) {
	if _, err := ReadDistances(strings.NewReader("{bad json")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestReadDistancesFileNotFound(t *testing.T) {
	if _, err := ReadDistancesFile("nonexistent.json"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}
