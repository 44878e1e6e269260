package icon

import (
	"slices"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/icons"
)

// Size is the pixel size used for named icons.
const Size = 24

// Renderer draws an icon with the given class list.
type Renderer func(class string) g.Node

var names = []string{
	"activity", "bell", "box", "chart-bar", "chart-column", "chart-line",
	"credit-card", "file-text", "heart-pulse", "home", "key", "layout-dashboard",
	"layout-template", "lock", "log-in", "log-out", "menu", "search", "server",
	"settings", "shield", "user",
}

// Names lists the icon names Named understands.
func Names() []string {
	return slices.Clone(names)
}

// Known reports whether name maps to a forgeui icon.
func Known(name string) bool {
	_, found := slices.BinarySearch(names, name)
	return found
}

// Named returns a renderer for a forgeui icon. Unknown names render a dot.
func Named(name string) Renderer {
	return func(class string) g.Node {
		size := icons.WithSize(Size)
		cls := icons.WithClass(class)

		switch name {
		case "activity":
			return icons.Activity(size, cls)
		case "bell":
			return icons.Bell(size, cls)
		case "box":
			return icons.Box(size, cls)
		case "chart-bar":
			return icons.ChartBar(size, cls)
		case "chart-column":
			return icons.ChartColumn(size, cls)
		case "chart-line":
			return icons.ChartLine(size, cls)
		case "credit-card":
			return icons.CreditCard(size, cls)
		case "file-text":
			return icons.FileText(size, cls)
		case "heart-pulse":
			return icons.HeartPulse(size, cls)
		case "home":
			return icons.Home(size, cls)
		case "key":
			return icons.Key(size, cls)
		case "layout-dashboard":
			return icons.LayoutDashboard(size, cls)
		case "layout-template":
			return icons.LayoutTemplate(size, cls)
		case "lock":
			return icons.Lock(size, cls)
		case "log-in":
			return icons.LogIn(size, cls)
		case "log-out":
			return icons.LogOut(size, cls)
		case "menu":
			return icons.Menu(size, cls)
		case "search":
			return icons.Search(size, cls)
		case "server":
			return icons.Server(size, cls)
		case "settings":
			return icons.Settings(size, cls)
		case "shield":
			return icons.Shield(size, cls)
		case "user":
			return icons.User(size, cls)
		default:
			return Dot(class)
		}
	}
}

// Dot renders the neutral placeholder icon.
func Dot(class string) g.Node {
	return html.Span(
		html.Class("inline-flex items-center justify-center text-xs "+class),
		html.Data("icon", "dot"),
		g.Text("•"),
	)
}

// Chevron renders the down chevron used by collapsible groups.
func Chevron(class string) g.Node {
	return g.El("svg",
		g.Attr("class", class),
		g.Attr("fill", "currentColor"),
		g.Attr("viewBox", "0 0 20 20"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("fill-rule", "evenodd"),
			g.Attr("clip-rule", "evenodd"),
			g.Attr("d", "M5.293 7.293a1 1 0 011.414 0L10 10.586l3.293-3.293a1 1 0 111.414 1.414l-4 4a1 1 0 01-1.414 0l-4-4a1 1 0 010-1.414z"),
		),
	)
}
