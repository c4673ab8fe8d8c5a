package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/idilsaglam/projboard/internal/surface"
	"github.com/idilsaglam/projboard/internal/validate"
)

// Element and field ids of the project form.
const (
	InputID          = "user-input"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
)

// InvalidInputMessage is the single notice shown for any rejected submission.
const InvalidInputMessage = "Invalid input, please try again!"

// ProjectInput is the form that gates new projects.
type ProjectInput struct {
	env *Env

	element     *surface.Node
	title       *surface.Node
	description *surface.Node
	people      *surface.Node
}

// NewProjectInput attaches the form at the top of host "app".
func NewProjectInput(env *Env) (*ProjectInput, error) {
	v := &ProjectInput{env: env}
	err := construct(env, mount{
		templateID: "project-input",
		hostID:     "app",
		position:   surface.AfterBegin,
		elementID:  InputID,
	}, func(el *surface.Node) (Component, error) {
		v.element = el
		var err error
		if v.title, err = find(el, FieldTitle); err != nil {
			return nil, err
		}
		if v.description, err = find(el, FieldDescription); err != nil {
			return nil, err
		}
		if v.people, err = find(el, FieldPeople); err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Configure wires the form's submit event to this view.
func (v *ProjectInput) Configure() error {
	v.element.On(surface.EventSubmit, func() { v.Submit() })
	return nil
}

// RenderContent has nothing to add; the form template is complete.
func (v *ProjectInput) RenderContent() {}

// Element is the form's root node.
func (v *ProjectInput) Element() *surface.Node { return v.element }

// Submit validates the three fields and, when all pass, adds the project and
// clears the form. It reports whether a project was added.
func (v *ProjectInput) Submit() bool {
	title, description, people, ok := v.gather()
	if !ok {
		v.env.Alert.Alert(InvalidInputMessage)
		return false
	}
	p := v.env.Store.AddProject(title, description, people)
	v.env.logger().Debug("project submitted",
		"id", p.ID,
		"title", title,
		"description", description,
		"people", people,
	)
	v.clear()
	return true
}

func (v *ProjectInput) gather() (string, string, int, bool) {
	title := v.title.FieldValue()
	description := v.description.FieldValue()
	rawPeople := v.people.FieldValue()

	// Unparseable headcount becomes NaN, which never passes a numeric bound.
	peopleValue := math.NaN()
	people, err := strconv.Atoi(strings.TrimSpace(rawPeople))
	if err == nil {
		peopleValue = float64(people)
	}

	checks := []validate.Validatable{
		{Value: title, Required: true},
		{Value: description, Required: true, MinLength: validate.Len(5)},
		{Value: peopleValue, Required: true, Min: validate.Bound(1), Max: validate.Bound(5)},
	}
	for _, c := range checks {
		if !validate.Validate(c) {
			return "", "", 0, false
		}
	}
	return title, description, people, true
}

func (v *ProjectInput) clear() {
	v.title.SetFieldValue("")
	v.description.SetFieldValue("")
	v.people.SetFieldValue("")
}
