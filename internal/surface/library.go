package surface

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplatesYAML []byte

type libraryYAML struct {
	Templates map[string]*Node `yaml:"templates"`
}

// Library holds the template fragments views are built from.
type Library struct {
	templates map[string]*Node
}

// ParseLibrary reads a YAML template document.
func ParseLibrary(data []byte) (*Library, error) {
	var doc libraryYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling templates: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, errors.New("template document has no templates")
	}
	for id, n := range doc.Templates {
		if n == nil || n.Kind == "" {
			return nil, fmt.Errorf("template %q: missing kind", id)
		}
	}
	return &Library{templates: doc.Templates}, nil
}

// DefaultLibrary returns the built-in templates.
func DefaultLibrary() (*Library, error) {
	return ParseLibrary(defaultTemplatesYAML)
}

// LoadLibrary returns the built-in templates with any template defined in the
// file at path replacing the built-in one of the same id. An empty path
// returns the defaults.
func LoadLibrary(path string) (*Library, error) {
	lib, err := DefaultLibrary()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	override, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	maps.Copy(lib.templates, override.templates)
	return lib, nil
}

// Template returns the fragment registered under id. Clone it before use;
// the returned node is shared.
func (l *Library) Template(id string) (*Node, error) {
	n, ok := l.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %q: %w", id, ErrNotFound)
	}
	return n, nil
}

// IDs lists the template ids in sorted order.
func (l *Library) IDs() []string {
	return slices.Sorted(maps.Keys(l.templates))
}
