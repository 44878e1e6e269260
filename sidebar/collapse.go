package sidebar

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/icon"
	"github.com/xraph/sidenav/style"
	"github.com/xraph/sidenav/tooltip"
)

// Collapse is an expandable group of nested components.
type Collapse struct {
	Label string
	Icon  icon.Renderer
	// Open expands the group on first render. A group holding the current
	// item is always rendered open.
	Open  bool
	Class string
	Items []Component
}

// Current reports whether any nested component is current.
func (c Collapse) Current(s Scope) bool {
	return HasCurrent(c.Items, s.Nested())
}

// Render implements Component.
func (c Collapse) Render(s Scope) g.Node {
	open := c.Open || c.Current(s)

	var trigger g.Node = html.Button(
		html.Type("button"),
		s.class([]style.Token{style.CollapseButton}, c.Class),
		html.Data("testid", "sidebar-collapse-button"),
		g.Attr("@click", "open = !open"),
		g.Attr(":aria-expanded", "open"),
		g.Attr("aria-expanded", strconv.FormatBool(open)),
		g.Iff(c.Icon != nil, func() g.Node {
			return c.Icon(s.theme().String([]style.Token{style.CollapseIcon}))
		}),
		g.Iff(!s.Collapsed, func() g.Node {
			return g.Group{
				html.Span(
					s.class([]style.Token{style.CollapseLabel}),
					html.Data("testid", "sidebar-collapse-label"),
					g.Text(c.Label),
				),
				icon.Chevron(s.theme().String([]style.Token{style.CollapseChevron})),
			}
		}),
	)

	if s.Collapsed {
		trigger = s.tooltips().Tooltip(
			g.Text(c.Label),
			tooltip.Right,
			trigger,
			html.Data("testid", "sidebar-collapse-tooltip"),
		)
	}

	return html.Li(
		html.Data("testid", "sidebar-collapse"),
		html.Data("open", strconv.FormatBool(open)),
		g.Attr("x-data", "{ open: "+strconv.FormatBool(open)+" }"),
		trigger,
		html.Ul(
			s.class([]style.Token{style.CollapseList}),
			html.Data("testid", "sidebar-collapse-list"),
			g.Attr("x-show", "open"),
			g.If(!open, html.Style("display: none")),
			renderAll(c.Items, s.Nested()),
		),
	)
}
