package tooltip

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/errors"
)

// Placement is where the tooltip opens relative to its target.
type Placement string

const (
	Top    Placement = "top"
	Right  Placement = "right"
	Bottom Placement = "bottom"
	Left   Placement = "left"
)

var placementClasses = map[Placement]string{
	Top:    "bottom-full left-1/2 mb-2 -translate-x-1/2",
	Right:  "left-full top-1/2 ml-2 -translate-y-1/2",
	Bottom: "top-full left-1/2 mt-2 -translate-x-1/2",
	Left:   "right-full top-1/2 mr-2 -translate-y-1/2",
}

const bubbleClasses = "absolute z-10 inline-block whitespace-nowrap rounded-lg bg-gray-900 px-3 py-2 text-sm font-medium text-white shadow-sm dark:bg-gray-700"

// Valid reports whether p is a known placement.
func (p Placement) Valid() bool {
	_, ok := placementClasses[p]
	return ok
}

func (p Placement) String() string { return string(p) }

// ParsePlacement parses a placement name. Empty means Top.
func ParsePlacement(s string) (Placement, error) {
	if s == "" {
		return Top, nil
	}

	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.ErrValidationError("placement", errors.ErrUnknownPlacing)
	}

	return p, nil
}

// Renderer wraps child so that content appears on hover or focus.
type Renderer interface {
	Tooltip(content g.Node, placement Placement, child g.Node, attrs ...g.Node) g.Node
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(content g.Node, placement Placement, child g.Node, attrs ...g.Node) g.Node

func (f RendererFunc) Tooltip(content g.Node, placement Placement, child g.Node, attrs ...g.Node) g.Node {
	return f(content, placement, child, attrs...)
}

// Default returns the Alpine.js hover tooltip.
func Default() Renderer {
	return RendererFunc(hover)
}

func hover(content g.Node, placement Placement, child g.Node, attrs ...g.Node) g.Node {
	if !placement.Valid() {
		placement = Top
	}

	return html.Div(
		html.Class("relative w-fit"),
		html.Data("placement", placement.String()),
		g.Attr("x-data", "{ open: false }"),
		g.Attr("@mouseenter", "open = true"),
		g.Attr("@mouseleave", "open = false"),
		g.Attr("@focusin", "open = true"),
		g.Attr("@focusout", "open = false"),
		g.Group(attrs),
		child,
		html.Div(
			html.Role("tooltip"),
			html.Class(bubbleClasses+" "+placementClasses[placement]),
			g.Attr("x-show", "open"),
			g.Attr("x-cloak"),
			content,
		),
	)
}
