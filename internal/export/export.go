// Package export writes a snapshot of the store, grouped by status.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/projboard/internal/model"
)

// Format names accepted by Write.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the exported shape. Lists are never null.
type Document struct {
	Active   []model.Project `json:"active" yaml:"active"`
	Finished []model.Project `json:"finished" yaml:"finished"`
}

// Group splits projects by status, keeping insertion order inside each group.
func Group(projects []model.Project) Document {
	doc := Document{Active: []model.Project{}, Finished: []model.Project{}}
	for _, p := range projects {
		switch p.Status {
		case model.Finished:
			doc.Finished = append(doc.Finished, p)
		default:
			doc.Active = append(doc.Active, p)
		}
	}
	return doc
}

// Write encodes projects to w in the given format.
func Write(w io.Writer, format string, projects []model.Project) error {
	doc := Group(projects)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	return nil
}
