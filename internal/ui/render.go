package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/projboard/internal/surface"
)

// RenderOptions tune how a surface tree is drawn.
type RenderOptions struct {
	// Width of panels, border included. Zero sizes panels to their content.
	Width int
	// Field, when set, draws the input part of a field node. The TUI uses it
	// to show live text inputs in place of the stored value.
	Field func(n *surface.Node) string
}

// Render draws a surface tree as terminal text.
func Render(n *surface.Node, opt RenderOptions) string {
	r := renderer{opt: opt, t: current}
	return r.node(n)
}

// Panel frames inner with the theme border.
func Panel(inner string, width int) string {
	style := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(inner)
}

type renderer struct {
	opt RenderOptions
	t   Theme
}

func (r renderer) node(n *surface.Node) string {
	switch n.Kind {
	case surface.KindSection:
		body := r.children(n)
		if hasKind(n, surface.KindHeader) {
			return Panel(body, r.opt.Width)
		}
		return body
	case surface.KindHeader:
		return r.children(n)
	case surface.KindHeading:
		return r.t.Title.Render(n.Text)
	case surface.KindList:
		if len(n.Children) == 0 {
			return r.t.Muted.Render("(none)")
		}
		return r.children(n)
	case surface.KindItem:
		return r.item(n)
	case surface.KindForm:
		return Panel(r.children(n), r.opt.Width)
	case surface.KindField:
		return r.field(n)
	case surface.KindButton:
		return r.t.Accent.Render("[ " + n.Text + " ]")
	}
	return n.Text
}

func (r renderer) children(n *surface.Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, r.node(c))
	}
	return strings.Join(parts, "\n")
}

func (r renderer) field(n *surface.Node) string {
	label := r.t.Accent.Render(n.Label + ":")
	if r.opt.Field != nil {
		return label + " " + r.opt.Field(n)
	}
	return label + " " + n.Value
}

// item draws a row as a bulleted title with its details indented below.
func (r renderer) item(n *surface.Node) string {
	var lines []string
	for i, c := range n.Children {
		if i == 0 {
			lines = append(lines, r.t.Pending.Render(r.t.SymActive)+" "+r.t.Title.Render(c.Text))
			continue
		}
		lines = append(lines, "  "+r.node(c))
	}
	return strings.Join(lines, "\n")
}

func hasKind(n *surface.Node, k surface.Kind) bool {
	for _, c := range n.Children {
		if c.Kind == k {
			return true
		}
	}
	return false
}
