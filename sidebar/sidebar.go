// Package sidebar renders sidebar navigation as gomponents node trees.
//
// A Sidebar is a composite of item groups, each holding Items and
// collapsible groups. Rendering is a pure function of the component tree and
// a Scope carrying the collapsed flag and the current location:
//
//	sb := &sidebar.Sidebar{
//		Groups: []sidebar.ItemGroup{{Items: []sidebar.Component{
//			sidebar.Item{Href: "/docs", Label: "New", LabelColor: badge.Green,
//				Children: []g.Node{g.Text("Docs")}},
//		}}},
//	}
//	node := sb.Render(sidebar.NewScope("/docs"))
package sidebar

import (
	"io"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/errors"
	"github.com/xraph/sidenav/style"
)

// Component is anything that can live in a sidebar.
type Component interface {
	Render(s Scope) g.Node
}

// Sidebar is the composite root.
type Sidebar struct {
	// AriaLabel labels the navigation landmark. Defaults to "Sidebar".
	AriaLabel string
	Class     string
	Logo      *Logo
	Groups    []ItemGroup
	CTA       *CTA
	Attrs     []g.Node
}

// Render renders the whole sidebar for s.
func (sb *Sidebar) Render(s Scope) g.Node {
	label := sb.AriaLabel
	if label == "" {
		label = "Sidebar"
	}

	groups := make([]g.Node, 0, len(sb.Groups))
	for _, group := range sb.Groups {
		groups = append(groups, group.Render(s))
	}

	return html.Aside(
		html.Aria("label", label),
		s.class(style.RootTokens(s.Collapsed), sb.Class),
		html.Data("testid", "sidebar"),
		html.Data("collapsed", strconv.FormatBool(s.Collapsed)),
		g.Group(sb.Attrs),
		html.Div(
			s.class([]style.Token{style.Inner}),
			g.Iff(sb.Logo != nil, func() g.Node { return sb.Logo.Render(s) }),
			html.Div(
				html.Data("testid", "sidebar-items"),
				g.Group(groups),
			),
			g.Iff(sb.CTA != nil, func() g.Node { return sb.CTA.Render(s) }),
		),
	)
}

// Current reports whether any item in the sidebar is current.
func (sb *Sidebar) Current(s Scope) bool {
	for _, group := range sb.Groups {
		if group.Current(s) {
			return true
		}
	}

	return false
}

// RenderTo renders the sidebar for s into w.
func (sb *Sidebar) RenderTo(w io.Writer, s Scope) error {
	if err := sb.Render(s).Render(w); err != nil {
		return errors.ErrRenderError("sidebar", err)
	}

	return nil
}

// String renders the sidebar for s. Rendering into memory cannot fail.
func (sb *Sidebar) String(s Scope) string {
	var b strings.Builder
	_ = sb.Render(s).Render(&b)

	return b.String()
}

// ItemGroup is a list of components separated from its siblings.
type ItemGroup struct {
	Class string
	Items []Component
}

// Current reports whether any component in the group is current.
func (ig ItemGroup) Current(s Scope) bool {
	return HasCurrent(ig.Items, s)
}

// Render implements Component.
func (ig ItemGroup) Render(s Scope) g.Node {
	return html.Ul(
		s.class([]style.Token{style.ItemGroup}, ig.Class),
		html.Data("testid", "sidebar-item-group"),
		renderAll(ig.Items, s),
	)
}

type currentReporter interface {
	Current(s Scope) bool
}

// HasCurrent reports whether any component reports itself current.
func HasCurrent(components []Component, s Scope) bool {
	for _, c := range components {
		if r, ok := c.(currentReporter); ok && r.Current(s) {
			return true
		}
	}

	return false
}

func renderAll(components []Component, s Scope) g.Group {
	nodes := make(g.Group, 0, len(components))
	for _, c := range components {
		if c == nil {
			continue
		}

		nodes = append(nodes, c.Render(s))
	}

	return nodes
}
