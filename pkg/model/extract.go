package model

import (
	"github.com/derivative-programming/pagenav/pkg/nav"
)

// isTrue reports whether a string-typed model flag is set.
func isTrue(s string) bool { return s == "true" }

// pageWorkflow reports whether a workflow is exposed as a page.
// Workflows are pages only when explicitly flagged.
func pageWorkflow(w Workflow) bool { return isTrue(w.IsPage) }

// pageReport reports whether a report is exposed as a page.
// Reports are visualization surfaces, so they default to pages unless
// the model turns them off.
func pageReport(r Report) bool { return r.IsPage != "false" }

// ExtractPages walks the model and returns one nav.Page per form or
// report flagged as a page, carrying the role requirement and the
// destination names of its buttons.
//
// Buttons with no destination, and buttons marked with
// isIgnoreButtonPressed "true", contribute no transition. Destinations
// naming pages that do not exist in the model are passed through
// unchanged - the graph builder drops them.
func ExtractPages(doc *Document) []nav.Page {
	var pages []nav.Page

	for _, ns := range doc.Root.Namespaces {
		for _, obj := range ns.Objects {
			for _, w := range obj.Workflows {
				if !pageWorkflow(w) {
					continue
				}
				pages = append(pages, nav.Page{
					Name:    w.Name,
					Role:    w.RoleRequired,
					Targets: buttonTargets(w.Buttons),
				})
			}
			for _, r := range obj.Reports {
				if !pageReport(r) {
					continue
				}
				pages = append(pages, nav.Page{
					Name:    r.Name,
					Role:    r.RoleRequired,
					Targets: buttonTargets(r.Buttons),
				})
			}
		}
	}

	return pages
}

// buttonTargets collects the destination page names of the buttons that
// actually navigate.
func buttonTargets(buttons []Button) []string {
	var targets []string
	for _, b := range buttons {
		if b.DestinationTargetName == "" || isTrue(b.IgnoreButtonPressed) {
			continue
		}
		targets = append(targets, b.DestinationTargetName)
	}
	return targets
}

// ExtractFile is a convenience that reads the model at path and extracts
// its pages in one call.
func ExtractFile(path string) ([]nav.Page, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractPages(doc), nil
}
