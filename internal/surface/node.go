// Package surface is the render surface views draw into: a small node tree,
// a template library to clone fragments from, and a page that hosts them.
package surface

import (
	"errors"
	"slices"
)

// ErrNotFound is returned when a template, host or element id does not exist.
var ErrNotFound = errors.New("not found")

// Kind tells renderers how to draw a node.
type Kind string

const (
	KindSection Kind = "section"
	KindHeader  Kind = "header"
	KindHeading Kind = "heading"
	KindList    Kind = "list"
	KindItem    Kind = "item"
	KindForm    Kind = "form"
	KindField   Kind = "field"
	KindText    Kind = "text"
	KindButton  Kind = "button"
)

// Event names dispatched to nodes.
const (
	EventSubmit = "submit"
)

// Node is one element of a render surface.
type Node struct {
	ID       string  `yaml:"id,omitempty"`
	Kind     Kind    `yaml:"kind"`
	Text     string  `yaml:"text,omitempty"`
	Label    string  `yaml:"label,omitempty"`
	Value    string  `yaml:"value,omitempty"`
	Children []*Node `yaml:"children,omitempty"`

	handlers map[string][]func()
}

// Find returns the first node in n's subtree (n included) with the given id.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Prepend inserts c before n's existing children.
func (n *Node) Prepend(c *Node) { n.Children = slices.Insert(n.Children, 0, c) }

// Append inserts c after n's existing children.
func (n *Node) Append(c *Node) { n.Children = append(n.Children, c) }

// Clear removes every child.
func (n *Node) Clear() { n.Children = nil }

// SetText replaces the node's text content.
func (n *Node) SetText(s string) { n.Text = s }

// FieldValue returns the current text of a field node.
func (n *Node) FieldValue() string { return n.Value }

// SetFieldValue replaces the text of a field node.
func (n *Node) SetFieldValue(s string) { n.Value = s }

// On registers fn for event on this node.
func (n *Node) On(event string, fn func()) {
	if n.handlers == nil {
		n.handlers = map[string][]func(){}
	}
	n.handlers[event] = append(n.handlers[event], fn)
}

// Dispatch runs the handlers for event in registration order and reports
// whether any ran.
func (n *Node) Dispatch(event string) bool {
	hs := slices.Clone(n.handlers[event])
	for _, fn := range hs {
		fn()
	}
	return len(hs) > 0
}

// Clone deep-copies the subtree. Event handlers are not copied.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		ID:    n.ID,
		Kind:  n.Kind,
		Text:  n.Text,
		Label: n.Label,
		Value: n.Value,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}
