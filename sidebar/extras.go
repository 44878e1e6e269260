package sidebar

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/link"
	"github.com/xraph/sidenav/style"
)

// Logo is the brand link at the top of the sidebar.
type Logo struct {
	Href   string
	Img    string
	ImgAlt string
	Text   string
	Class  string
	Link   link.Linker
}

// Render implements Component. The text is hidden in collapsed mode.
func (l Logo) Render(s Scope) g.Node {
	href := l.Href
	if href == "" {
		href = "/"
	}

	attrs := []g.Node{
		s.class([]style.Token{style.Logo}, l.Class),
		html.Data("testid", "sidebar-logo"),
	}

	return s.linker(l.Link).Link(href, attrs,
		g.If(l.Img != "", html.Img(
			html.Src(l.Img),
			html.Alt(l.ImgAlt),
			s.class([]style.Token{style.LogoImage}),
		)),
		g.Iff(!s.Collapsed && l.Text != "", func() g.Node {
			return html.Span(
				s.class([]style.Token{style.LogoText}),
				html.Data("testid", "sidebar-logo-text"),
				g.Text(l.Text),
			)
		}),
	)
}

// CTA is a call-to-action box shown below the items. It is not rendered in
// collapsed mode.
type CTA struct {
	Class    string
	Children []g.Node
}

// Render implements Component.
func (c CTA) Render(s Scope) g.Node {
	if s.Collapsed {
		return g.Group{}
	}

	return html.Div(
		s.class([]style.Token{style.CTA}, c.Class),
		html.Data("testid", "sidebar-cta"),
		g.Group(c.Children),
	)
}
