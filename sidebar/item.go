package sidebar

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/badge"
	"github.com/xraph/sidenav/icon"
	"github.com/xraph/sidenav/link"
	"github.com/xraph/sidenav/style"
	"github.com/xraph/sidenav/tooltip"
)

// Item is a single navigation entry of the sidebar.
//
// Only Href is required. In collapsed mode the entry shrinks to its icon and
// the children move into a tooltip on the right; the inline text and badge
// are dropped.
type Item struct {
	// Href is the destination path.
	Href string
	// Icon is drawn before the text and highlighted when current.
	Icon icon.Renderer
	// Label is shown as a badge after the text.
	Label string
	// LabelColor colors the badge. Empty means badge.DefaultColor.
	LabelColor badge.Color
	// Class is appended to the link's classes.
	Class string
	// Link overrides the scope's link primitive for this item.
	Link link.Linker
	// Attrs are forwarded verbatim to the link primitive.
	Attrs []g.Node
	// Children is the item body.
	Children []g.Node
}

// NewItem returns an item pointing at href with a text body.
func NewItem(href, text string) Item {
	return Item{Href: href, Children: []g.Node{g.Text(text)}}
}

// Current reports whether the item points at the scope's location.
func (i Item) Current(s Scope) bool {
	return s.IsCurrent(i.Href)
}

// Render implements Component.
func (i Item) Render(s Scope) g.Node {
	current := i.Current(s)

	attrs := make([]g.Node, 0, len(i.Attrs)+2)
	attrs = append(attrs, s.class(style.LinkTokens(style.LinkFlags{
		Current:        current,
		Collapsed:      s.Collapsed,
		InsideCollapse: s.InsideCollapse,
	}), i.Class))

	if current {
		attrs = append(attrs, g.Attr("aria-current", "page"))
	}

	attrs = append(attrs, i.Attrs...)

	anchor := s.linker(i.Link).Link(i.Href, attrs,
		g.Iff(i.Icon != nil, func() g.Node {
			return i.Icon(s.theme().String(style.IconTokens(current)))
		}),
		g.Iff(!s.Collapsed, func() g.Node {
			return html.Span(
				s.class([]style.Token{style.Content}),
				html.Data("testid", "sidebar-item-content"),
				g.Group(i.Children),
			)
		}),
		g.Iff(!s.Collapsed && i.Label != "", func() g.Node {
			return s.badges().Badge(i.LabelColor.OrDefault(), i.Label, html.Data("testid", "sidebar-item-label"))
		}),
	)

	if s.Collapsed {
		anchor = s.tooltips().Tooltip(
			g.Group(i.Children),
			tooltip.Right,
			anchor,
			html.Data("testid", "sidebar-item-tooltip"),
		)
	}

	return html.Li(
		html.Data("testid", "sidebar-item"),
		anchor,
	)
}
