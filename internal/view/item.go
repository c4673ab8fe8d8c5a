package view

import (
	"fmt"

	"github.com/idilsaglam/projboard/internal/model"
	"github.com/idilsaglam/projboard/internal/surface"
)

// ProjectItem is one rendered row. It is drawn once and never updated.
type ProjectItem struct {
	project model.Project

	element     *surface.Node
	title       *surface.Node
	people      *surface.Node
	description *surface.Node
}

// NewProjectItem appends a row for p to the node hostID.
func NewProjectItem(env *Env, hostID string, p model.Project) (*ProjectItem, error) {
	v := &ProjectItem{project: p}
	err := construct(env, mount{
		templateID: "single-project",
		hostID:     hostID,
		position:   surface.BeforeEnd,
		elementID:  p.ID,
	}, func(el *surface.Node) (Component, error) {
		v.element = el
		var err error
		if v.title, err = find(el, "project-title"); err != nil {
			return nil, err
		}
		if v.people, err = find(el, "project-people"); err != nil {
			return nil, err
		}
		if v.description, err = find(el, "project-description"); err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// checkRowTemplate fails fast when rows could not be built later, inside a
// store notification.
func checkRowTemplate(env *Env) error {
	tmpl, err := env.Templates.Template("single-project")
	if err != nil {
		return err
	}
	for _, id := range []string{"project-title", "project-people", "project-description"} {
		if _, err := find(tmpl, id); err != nil {
			return fmt.Errorf("single-project: %w", err)
		}
	}
	return nil
}

func (v *ProjectItem) Configure() error { return nil }

func (v *ProjectItem) RenderContent() {
	v.title.SetText(v.project.Title)
	v.people.SetText(v.project.Persons() + " assigned")
	v.description.SetText(v.project.Description)
}

// Element is the row's root node.
func (v *ProjectItem) Element() *surface.Node { return v.element }
