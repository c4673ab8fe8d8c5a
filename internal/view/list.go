package view

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/projboard/internal/model"
	"github.com/idilsaglam/projboard/internal/surface"
)

// ListID is the element id of the list section for status.
func ListID(status model.Status) string { return status.String() + "-projects" }

// RowsID is the id of the node holding a list's rows.
func RowsID(status model.Status) string { return status.String() + "-projects-list" }

// ProjectList shows the projects of one status. It rebuilds every row on each
// store notification.
//
// Projects never change status here; a move between lists would arrive as a
// store notification like any other and needs no change in this view.
type ProjectList struct {
	env    *Env
	status model.Status

	element  *surface.Node
	rows     *surface.Node
	heading  *surface.Node
	projects []model.Project
}

// NewProjectList attaches a list after the existing content of host "app".
func NewProjectList(env *Env, status model.Status) (*ProjectList, error) {
	v := &ProjectList{env: env, status: status}
	err := construct(env, mount{
		templateID: "project-list",
		hostID:     "app",
		position:   surface.BeforeEnd,
		elementID:  ListID(status),
	}, func(el *surface.Node) (Component, error) {
		v.element = el
		v.rows = findKind(el, surface.KindList)
		v.heading = findKind(el, surface.KindHeading)
		if v.rows == nil || v.heading == nil {
			return nil, fmt.Errorf("project-list needs a list and a heading: %w", surface.ErrNotFound)
		}
		if err := checkRowTemplate(env); err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Configure subscribes to the store.
func (v *ProjectList) Configure() error {
	v.env.Store.AddListener(func(projects []model.Project) {
		relevant := make([]model.Project, 0, len(projects))
		for _, p := range projects {
			if p.Status == v.status {
				relevant = append(relevant, p)
			}
		}
		v.projects = relevant
		v.renderProjects()
	})
	return nil
}

// RenderContent sets the list id and header once.
func (v *ProjectList) RenderContent() {
	v.rows.ID = RowsID(v.status)
	v.heading.SetText(strings.ToUpper(v.status.String()) + " PROJECTS")
}

// Status is the status this list shows.
func (v *ProjectList) Status() model.Status { return v.status }

// Projects returns the cached projects in display order.
func (v *ProjectList) Projects() []model.Project { return v.projects }

// Element is the list's root node.
func (v *ProjectList) Element() *surface.Node { return v.element }

// Rows returns the rendered row nodes.
func (v *ProjectList) Rows() []*surface.Node { return v.rows.Children }

func (v *ProjectList) renderProjects() {
	v.rows.Clear()
	for _, p := range v.projects {
		if _, err := NewProjectItem(v.env, RowsID(v.status), p); err != nil {
			// Unreachable with the templates checked in NewProjectList.
			v.env.logger().Error("render project row", "id", p.ID, "error", err)
		}
	}
}
