package server

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/sidebar"
)

const (
	sidebarRootID = "sidebar-root"

	tailwindSrc = "https://cdn.tailwindcss.com"
	alpineSrc   = "https://cdn.jsdelivr.net/npm/alpinejs@3/dist/cdn.min.js"
	htmxSrc     = "https://unpkg.com/htmx.org@2"
)

// contentAttrs makes the main region match the "#id" or ".class" selector
// client-side links target.
func contentAttrs(selector string) g.Node {
	const base = "flex-1 overflow-y-auto"

	if name, ok := strings.CutPrefix(selector, "."); ok {
		return html.Class(base + " " + name)
	}

	return g.Group{html.ID(strings.TrimPrefix(selector, "#")), html.Class(base)}
}

// sidebarFragment is the swappable container around the sidebar.
func (s *Server) sidebarFragment(scope sidebar.Scope, oob bool) g.Node {
	return html.Div(
		html.ID(sidebarRootID),
		html.Class("h-full shrink-0"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		s.nav.Render(scope),
		s.toggleButton(scope),
	)
}

func (s *Server) toggleButton(scope sidebar.Scope) g.Node {
	label := "Collapse sidebar"
	if scope.Collapsed {
		label = "Expand sidebar"
	}

	return html.Form(
		html.Method("post"),
		html.Action(togglePath),
		g.Attr("hx-post", togglePath),
		g.Attr("hx-target", "#"+sidebarRootID),
		g.Attr("hx-swap", "outerHTML"),
		html.Input(html.Type("hidden"), html.Name("location"), html.Value(scope.Location)),
		html.Button(
			html.Type("submit"),
			html.Class("m-2 rounded-lg p-2 text-sm text-gray-500 hover:bg-gray-100 dark:text-gray-400 dark:hover:bg-gray-700"),
			html.Aria("label", label),
			html.Data("testid", "sidebar-toggle"),
			g.Text(label),
		),
	)
}

// content is the placeholder main region for a location.
func (s *Server) content(location string) g.Node {
	return html.Div(
		html.Class("p-6"),
		html.H1(html.Class("text-2xl font-semibold text-gray-900 dark:text-white"), g.Text(s.cfg.Title)),
		html.P(
			html.Class("mt-2 text-gray-500 dark:text-gray-400"),
			html.Data("testid", "content-location"),
			g.Text(location),
		),
	)
}

// page renders the full document.
func (s *Server) page(scope sidebar.Scope) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    s.cfg.Title,
		Language: "en",
		Head: []g.Node{
			html.Script(html.Src(tailwindSrc)),
			html.Script(html.Src(htmxSrc)),
			html.Script(html.Src(alpineSrc), html.Defer()),
			html.StyleEl(g.Raw("[x-cloak] { display: none !important; }")),
		},
		Body: []g.Node{
			html.Class("flex h-screen bg-white antialiased dark:bg-gray-900"),
			s.sidebarFragment(scope, false),
			html.Main(
				contentAttrs(s.cfg.ContentTarget),
				s.content(scope.Location),
			),
		},
	})
}

// partial is the htmx response for client-side navigation: new content plus
// the sidebar swapped out of band so the current item follows the location.
func (s *Server) partial(scope sidebar.Scope) g.Node {
	return g.Group{
		s.content(scope.Location),
		s.sidebarFragment(scope, true),
	}
}
