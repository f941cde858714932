package nav_test

import (
	"fmt"
	"strings"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// Build a small navigation graph and query a distance.
func ExampleGraph_Distance() {
	g := nav.Build([]nav.Page{
		{Name: "TacLogin", Targets: []string{"TacDashboard"}},
		{Name: "TacDashboard", Targets: []string{"CustomerList"}},
		{Name: "CustomerList"},
	})

	fmt.Println(g.Distance("TacLogin", "CustomerList"))
	fmt.Println(g.Distance("CustomerList", "TacLogin"))
	// Output:
	// 2
	// -1
}

// Retrieve the full page sequence for a journey.
func ExampleGraph_Path() {
	g := nav.Build([]nav.Page{
		{Name: "Home", Targets: []string{"Customers", "Orders"}},
		{Name: "Customers", Targets: []string{"CustomerDetail"}},
		{Name: "CustomerDetail"},
		{Name: "Orders"},
	})

	fmt.Println(strings.Join(g.Path("Home", "CustomerDetail"), " -> "))
	// Output:
	// Home -> Customers -> CustomerDetail
}

// Compute one distance record per page from the role start pages.
func ExampleComputeDistances() {
	g := nav.Build([]nav.Page{
		{Name: "AdminHome", Role: "Admin", Targets: []string{"UserList"}},
		{Name: "GuestHome", Role: "Guest", Targets: []string{"Catalog"}},
		{Name: "UserList"},
		{Name: "Catalog", Targets: []string{"UserList"}},
	})

	result, _ := nav.ComputeDistances(g, nav.StartPages{
		"Admin": "AdminHome",
		"Guest": "GuestHome",
	})
	for _, rec := range result.Records {
		fmt.Printf("%s %d\n", rec.Page, rec.Distance)
	}
	// Output:
	// AdminHome 0
	// Catalog 1
	// GuestHome 0
	// UserList 1
}
