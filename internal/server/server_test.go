package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/derivative-programming/pagenav/pkg/nav"
	"github.com/derivative-programming/pagenav/pkg/pipeline"
)

const testModel = `{
  "root": {
    "namespace": [
      {
        "name": "Tac",
        "object": [
          {
            "name": "Customer",
            "objectWorkflow": [
              {
                "name": "TacLogin",
                "isPage": "true",
                "roleRequired": "User",
                "objectWorkflowButton": [
                  {"buttonText": "Home", "destinationTargetName": "TacDashboard"}
                ]
              },
              {
                "name": "TacDashboard",
                "isPage": "true",
                "roleRequired": "User",
                "objectWorkflowButton": [
                  {"buttonText": "Orders", "destinationTargetName": "OrderList"}
                ]
              }
            ],
            "report": [
              {"name": "OrderList", "roleRequired": "User"}
            ]
          }
        ]
      }
    ]
  }
}`

func newTestServer(t *testing.T, starts nav.StartPages) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app-dna.json")
	if err := os.WriteFile(path, []byte(testModel), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(Config{
		Runner:  pipeline.NewRunner(nil, nil, nil),
		Options: pipeline.Options{ModelPath: path, Starts: starts},
	})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPages(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/api/pages")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var body struct {
		Pages []struct {
			Name    string   `json:"name"`
			Role    string   `json:"role"`
			Targets []string `json:"targets"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(body.Pages))
	}
	// Pages come back sorted.
	if body.Pages[0].Name != "OrderList" {
		t.Errorf("first page = %q", body.Pages[0].Name)
	}
}

func TestDistances(t *testing.T) {
	srv := newTestServer(t, nav.StartPages{"User": "TacLogin"})
	rec := get(t, srv.Router(), "/api/distances")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var body struct {
		GraphHash string               `json:"graphHash"`
		Records   []nav.DistanceRecord `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.GraphHash == "" {
		t.Error("graphHash missing")
	}
	want := map[string]int{"TacLogin": 0, "TacDashboard": 1, "OrderList": 2}
	for _, r := range body.Records {
		if want[r.Page] != r.Distance {
			t.Errorf("distance[%s] = %d, want %d", r.Page, r.Distance, want[r.Page])
		}
	}
}

func TestDistancesRequireStartPages(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/api/distances")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestPath(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := get(t, srv.Router(), "/api/paths?from=TacLogin&to=OrderList")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var body struct {
		Path     []string `json:"path"`
		Distance int      `json:"distance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Distance != 2 || len(body.Path) != 3 {
		t.Errorf("path = %v, distance = %d", body.Path, body.Distance)
	}
}

func TestPathMissingParams(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/api/paths?from=TacLogin")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPathUnreachable(t *testing.T) {
	rec := get(t, newTestServer(t, nil).Router(), "/api/paths?from=OrderList&to=TacLogin")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Path     []string `json:"path"`
		Distance int      `json:"distance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Distance != nav.Unreachable {
		t.Errorf("distance = %d, want %d", body.Distance, nav.Unreachable)
	}
	if len(body.Path) != 0 {
		t.Errorf("path = %v, want empty", body.Path)
	}
}

func TestUsage(t *testing.T) {
	journeys := `[{"story": "place order", "startPage": "TacLogin", "targetPage": "OrderList"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/usage", strings.NewReader(journeys))
	rec := httptest.NewRecorder()
	newTestServer(t, nil).Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var body struct {
		Paths []struct {
			Pages     []string `json:"pages"`
			Reachable bool     `json:"reachable"`
		} `json:"paths"`
		Usage []struct {
			Page  string `json:"page"`
			Count int    `json:"count"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Paths) != 1 || !body.Paths[0].Reachable {
		t.Fatalf("paths = %+v", body.Paths)
	}
	if len(body.Usage) == 0 {
		t.Error("usage counts missing")
	}
}

func TestUsageRejectsBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/usage", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newTestServer(t, nil).Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
