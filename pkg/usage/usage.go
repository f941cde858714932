// Package usage derives page-usage analytics from user-story journeys.
//
// A journey is the realized shortest path a user story takes from its
// start page to its target page. Every page along a journey's path
// counts one usage; summing over all journeys yields the per-page
// usage distribution.
package usage

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/google/uuid"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// Journey is one user story's traversal intent: from a start page to a
// target page. IDs identify journeys across recomputations; journeys
// loaded without one are assigned a fresh UUID.
type Journey struct {
	ID     string `json:"id,omitempty"`
	Story  string `json:"story,omitempty"` // user-story text, display only
	Start  string `json:"startPage"`
	Target string `json:"targetPage"`
}

// JourneyPath is a journey's realized page sequence. Unreachable
// journeys carry an empty Pages list and Reachable false.
type JourneyPath struct {
	JourneyID string   `json:"journeyId"`
	Pages     []string `json:"pages,omitempty"`
	Reachable bool     `json:"reachable"`
}

// PageUsage is the number of journeys that pass through a page.
type PageUsage struct {
	Page  string `json:"page"`
	Count int    `json:"count"`
}

// Result holds the realized paths and the per-page usage counts of one
// computation. Usage is sorted by page name.
type Result struct {
	Paths []JourneyPath `json:"paths"`
	Usage []PageUsage   `json:"usage"`
}

// AssignIDs fills in a UUID for every journey that has none and returns
// the updated slice. Existing IDs are preserved so results stay
// correlated with their journeys across runs.
func AssignIDs(journeys []Journey) []Journey {
	for i := range journeys {
		if journeys[i].ID == "" {
			journeys[i].ID = uuid.NewString()
		}
	}
	return journeys
}

// Compute resolves every journey's shortest path over the graph and
// tallies per-page usage counts.
//
// A journey whose start or target is absent from the graph, or whose
// target is unreachable, is reported with Reachable false and
// contributes no counts; one broken journey never aborts the batch.
// Pages on no journey are omitted from the usage list.
func Compute(g *nav.Graph, journeys []Journey) Result {
	counts := make(map[string]int)
	result := Result{Paths: make([]JourneyPath, 0, len(journeys))}

	for _, j := range journeys {
		path := g.Path(j.Start, j.Target)
		jp := JourneyPath{JourneyID: j.ID, Pages: path, Reachable: len(path) > 0}
		result.Paths = append(result.Paths, jp)

		for _, page := range path {
			counts[page]++
		}
	}

	for _, page := range slices.Sorted(maps.Keys(counts)) {
		result.Usage = append(result.Usage, PageUsage{Page: page, Count: counts[page]})
	}

	return result
}

// ReadJourneys decodes a journey list from r and assigns IDs to entries
// lacking one.
func ReadJourneys(r io.Reader) ([]Journey, error) {
	var journeys []Journey
	if err := json.NewDecoder(r).Decode(&journeys); err != nil {
		return nil, fmt.Errorf("decode journeys: %w", err)
	}
	return AssignIDs(journeys), nil
}

// ReadJourneysFile reads the journey list at path.
func ReadJourneysFile(path string) ([]Journey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJourneys(f)
}

// WriteResult writes a usage result as indented JSON to w.
func WriteResult(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteResultFile writes a usage result to a JSON file at path.
func WriteResultFile(res Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(res, f)
}
