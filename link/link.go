// Package link provides the navigation primitives sidebar items render through.
//
// A Linker turns a destination, pass-through attributes and children into an
// anchor. The default Router linker performs client-side navigation with htmx,
// swapping the page content region and pushing the URL, the same way the
// dashboard shell navigates. Callers that need a different routing strategy
// supply their own Linker.
package link

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Linker renders a navigation element pointing at href.
type Linker interface {
	Link(href string, attrs []g.Node, children ...g.Node) g.Node
}

// LinkerFunc adapts a function to Linker.
type LinkerFunc func(href string, attrs []g.Node, children ...g.Node) g.Node

// Link implements Linker.
func (f LinkerFunc) Link(href string, attrs []g.Node, children ...g.Node) g.Node {
	return f(href, attrs, children...)
}

// Anchor returns a Linker producing plain anchors that trigger full page loads.
func Anchor() Linker {
	return LinkerFunc(func(href string, attrs []g.Node, children ...g.Node) g.Node {
		return html.A(
			html.Href(href),
			g.Group(attrs),
			g.Group(children),
		)
	})
}

// RouterConfig configures client-side navigation.
type RouterConfig struct {
	// Target is the CSS selector whose content is replaced.
	Target string
	// Swap is the htmx swap strategy.
	Swap string
	// PushURL records the navigation in browser history.
	PushURL bool
}

// RouterOption is a functional option for RouterConfig.
type RouterOption func(*RouterConfig)

// WithTarget sets the element that receives the navigated content.
func WithTarget(selector string) RouterOption {
	return func(c *RouterConfig) { c.Target = selector }
}

// WithSwap sets the htmx swap strategy.
func WithSwap(swap string) RouterOption {
	return func(c *RouterConfig) { c.Swap = swap }
}

// WithPushURL toggles history updates.
func WithPushURL(push bool) RouterOption {
	return func(c *RouterConfig) { c.PushURL = push }
}

// DefaultRouterConfig returns the default client-side navigation settings.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		Target:  "#content",
		Swap:    "innerHTML",
		PushURL: true,
	}
}

// Router returns the client-side routing Linker. The href stays on the anchor
// so navigation still works without JavaScript.
func Router(opts ...RouterOption) Linker {
	cfg := DefaultRouterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return LinkerFunc(func(href string, attrs []g.Node, children ...g.Node) g.Node {
		return html.A(
			html.Href(href),
			g.Attr("hx-get", href),
			g.If(cfg.Target != "", g.Attr("hx-target", cfg.Target)),
			g.If(cfg.Swap != "", g.Attr("hx-swap", cfg.Swap)),
			g.If(cfg.PushURL, g.Attr("hx-push-url", "true")),
			g.Group(attrs),
			g.Group(children),
		)
	})
}

var defaultLinker = Router()

// Default returns the Linker used when none is configured.
func Default() Linker {
	return defaultLinker
}
