package nav

import (
	"slices"
	"testing"
)

// chain builds the reference graph used throughout:
// A -> B, B -> C, A -> D, with C and D terminal.
func chain() *Graph {
	return Build([]Page{
		{Name: "A", Targets: []string{"B", "D"}},
		{Name: "B", Targets: []string{"C"}},
		{Name: "C"},
		{Name: "D"},
	})
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name            string
		pages           []Page
		wantPages       int
		wantTransitions int
		check           func(t *testing.T, g *Graph)
	}{
		{
			name:            "Empty",
			pages:           nil,
			wantPages:       0,
			wantTransitions: 0,
		},
		{
			name: "IsolatedPageIsNode",
			pages: []Page{
				{Name: "Lonely"},
			},
			wantPages:       1,
			wantTransitions: 0,
			check: func(t *testing.T, g *Graph) {
				if !g.HasPage("Lonely") {
					t.Error("page with no transitions must still be a node")
				}
			},
		},
		{
			name: "UnknownTargetDropped",
			pages: []Page{
				{Name: "A", Targets: []string{"B", "Ghost"}},
				{Name: "B"},
			},
			wantPages:       2,
			wantTransitions: 1,
			check: func(t *testing.T, g *Graph) {
				if got := g.Neighbors("A"); !slices.Equal(got, []string{"B"}) {
					t.Errorf("Neighbors(A) = %v, want [B]", got)
				}
			},
		},
		{
			name: "DuplicateEdgesCollapse",
			pages: []Page{
				{Name: "A", Targets: []string{"B", "B", "B"}},
				{Name: "B"},
			},
			wantPages:       2,
			wantTransitions: 1,
		},
		{
			name: "SelfLoopPreserved",
			pages: []Page{
				{Name: "A", Targets: []string{"A"}},
			},
			wantPages:       1,
			wantTransitions: 1,
			check: func(t *testing.T, g *Graph) {
				if got := g.Neighbors("A"); !slices.Equal(got, []string{"A"}) {
					t.Errorf("Neighbors(A) = %v, want [A]", got)
				}
			},
		},
		{
			name: "NeighborsSorted",
			pages: []Page{
				{Name: "Hub", Targets: []string{"Zeta", "Alpha", "Mid"}},
				{Name: "Zeta"},
				{Name: "Alpha"},
				{Name: "Mid"},
			},
			wantPages:       4,
			wantTransitions: 3,
			check: func(t *testing.T, g *Graph) {
				want := []string{"Alpha", "Mid", "Zeta"}
				if got := g.Neighbors("Hub"); !slices.Equal(got, want) {
					t.Errorf("Neighbors(Hub) = %v, want %v", got, want)
				}
			},
		},
		{
			name: "RoleRecorded",
			pages: []Page{
				{Name: "AdminHome", Role: "Admin"},
				{Name: "Public"},
			},
			wantPages:       2,
			wantTransitions: 0,
			check: func(t *testing.T, g *Graph) {
				if got := g.Role("AdminHome"); got != "Admin" {
					t.Errorf("Role(AdminHome) = %q, want Admin", got)
				}
				if got := g.Role("Public"); got != "" {
					t.Errorf("Role(Public) = %q, want empty", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.pages)

			if got := g.PageCount(); got != tt.wantPages {
				t.Errorf("pages = %d, want %d", got, tt.wantPages)
			}
			if got := g.TransitionCount(); got != tt.wantTransitions {
				t.Errorf("transitions = %d, want %d", got, tt.wantTransitions)
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestPagesSorted(t *testing.T) {
	g := Build([]Page{{Name: "C"}, {Name: "A"}, {Name: "B"}})
	want := []string{"A", "B", "C"}
	if got := g.Pages(); !slices.Equal(got, want) {
		t.Errorf("Pages() = %v, want %v", got, want)
	}
}
