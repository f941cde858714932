// Package model reads AppDNA application-description files and extracts
// the page set consumed by the navigation engine.
//
// An AppDNA model is a single JSON document describing the whole
// application: namespaces containing data objects, each carrying form
// workflows and reports. Forms and reports flagged with isPage "true"
// are the navigable pages; their buttons name destination pages and
// induce the navigation transitions.
//
// Boolean-ish model attributes are strings ("true"/"false") rather than
// JSON booleans - the format is produced by external tooling and this
// package follows it as-is.
package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/derivative-programming/pagenav/pkg/errors"
)

// Document is the root of an AppDNA model file.
type Document struct {
	Root Root `json:"root"`
}

// Root holds the application namespaces.
type Root struct {
	Name       string      `json:"name,omitempty"`
	Namespaces []Namespace `json:"namespace"`
}

// Namespace groups the data objects of one application area.
type Namespace struct {
	Name    string   `json:"name"`
	Objects []Object `json:"object"`
}

// Object is a modeled data object. Its workflows and reports are the
// candidate pages.
type Object struct {
	Name      string     `json:"name"`
	Workflows []Workflow `json:"objectWorkflow,omitempty"`
	Reports   []Report   `json:"report,omitempty"`
}

// Workflow is a form workflow attached to an object. It is a page when
// IsPage is "true".
type Workflow struct {
	Name         string   `json:"name"`
	IsPage       string   `json:"isPage,omitempty"`
	RoleRequired string   `json:"roleRequired,omitempty"`
	TitleText    string   `json:"titleText,omitempty"`
	Buttons      []Button `json:"objectWorkflowButton,omitempty"`
}

// Report is a report attached to an object. Reports default to being
// pages unless IsPage is explicitly "false".
type Report struct {
	Name         string   `json:"name"`
	IsPage       string   `json:"isPage,omitempty"`
	RoleRequired string   `json:"roleRequired,omitempty"`
	TitleText    string   `json:"titleText,omitempty"`
	Buttons      []Button `json:"reportButton,omitempty"`
}

// Button is an interactive element on a form or report. A button with a
// DestinationTargetName induces a navigation transition to that page.
type Button struct {
	ButtonText            string `json:"buttonText,omitempty"`
	ButtonType            string `json:"buttonType,omitempty"`
	DestinationTargetName string `json:"destinationTargetName,omitempty"`
	IgnoreButtonPressed   string `json:"isIgnoreButtonPressed,omitempty"`
}

// Read decodes an AppDNA model from r.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "decode model")
	}
	return &doc, nil
}

// ReadFile reads and decodes the AppDNA model at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeModelNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
