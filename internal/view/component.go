// Package view holds the on-screen components of the board. Every component
// is built the same way: clone a template, attach it to a host, bind handles,
// Configure, RenderContent.
package view

import (
	"fmt"
	"log/slog"

	"github.com/idilsaglam/projboard/internal/store"
	"github.com/idilsaglam/projboard/internal/surface"
)

// Component is what a view supplies to the shared construction sequence.
// Both methods are called exactly once, in this order, after the view's
// surface is attached.
type Component interface {
	Configure() error
	RenderContent()
}

// Alerter is the user-visible failure channel. One call per rejected action.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a plain function to Alerter.
type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

// Env is everything views need from outside. One Env, and so one Store, is
// shared by every view of a board.
type Env struct {
	Templates *surface.Library
	Page      *surface.Page
	Store     *store.Store
	Alert     Alerter
	Log       *slog.Logger
}

type mount struct {
	templateID string
	hostID     string
	position   surface.Position
	elementID  string
}

// construct runs the fixed lifecycle. bind receives the attached surface and
// returns the component to configure and render.
func construct(env *Env, m mount, bind func(el *surface.Node) (Component, error)) error {
	tmpl, err := env.Templates.Template(m.templateID)
	if err != nil {
		return fmt.Errorf("acquire surface: %w", err)
	}
	el := tmpl.Clone()
	if m.elementID != "" {
		el.ID = m.elementID
	}
	if err := env.Page.Insert(el, m.position, m.hostID); err != nil {
		return fmt.Errorf("attach %s: %w", m.templateID, err)
	}
	c, err := bind(el)
	if err != nil {
		return fmt.Errorf("bind %s: %w", m.templateID, err)
	}
	if err := c.Configure(); err != nil {
		return fmt.Errorf("configure %s: %w", m.templateID, err)
	}
	c.RenderContent()
	return nil
}

// find is a required lookup inside a view's own surface.
func find(el *surface.Node, id string) (*surface.Node, error) {
	n := el.Find(id)
	if n == nil {
		return nil, fmt.Errorf("element %q: %w", id, surface.ErrNotFound)
	}
	return n, nil
}

func findKind(el *surface.Node, kind surface.Kind) *surface.Node {
	if el.Kind == kind {
		return el
	}
	for _, c := range el.Children {
		if n := findKind(c, kind); n != nil {
			return n
		}
	}
	return nil
}

func (e *Env) logger() *slog.Logger {
	if e.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Log
}
