package surface

import "fmt"

// Position says where an attached surface goes relative to the host's
// existing children.
type Position int

const (
	// AfterBegin places the surface before existing host content.
	AfterBegin Position = iota
	// BeforeEnd places the surface after existing host content.
	BeforeEnd
)

// Page is the top of the render tree. Views attach their surfaces to hosts
// anywhere inside it, including hosts other views attached earlier.
type Page struct {
	Root *Node
}

// NewPage returns a page with one empty section per host id.
func NewPage(hostIDs ...string) *Page {
	root := &Node{Kind: KindSection}
	for _, id := range hostIDs {
		root.Append(&Node{ID: id, Kind: KindSection})
	}
	return &Page{Root: root}
}

// Insert attaches n to the host with id hostID.
func (p *Page) Insert(n *Node, pos Position, hostID string) error {
	host := p.Root.Find(hostID)
	if host == nil {
		return fmt.Errorf("host %q: %w", hostID, ErrNotFound)
	}
	switch pos {
	case AfterBegin:
		host.Prepend(n)
	default:
		host.Append(n)
	}
	return nil
}

// Find looks up a node anywhere on the page.
func (p *Page) Find(id string) *Node { return p.Root.Find(id) }

// Dispatch fires event on the node with the given id.
func (p *Page) Dispatch(id, event string) error {
	n := p.Root.Find(id)
	if n == nil {
		return fmt.Errorf("dispatch %s: element %q: %w", event, id, ErrNotFound)
	}
	n.Dispatch(event)
	return nil
}
