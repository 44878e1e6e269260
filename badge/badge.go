package badge

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui"
	forgebadge "github.com/xraph/forgeui/components/badge"

	"github.com/xraph/sidenav/errors"
)

// Color is one entry of the fixed badge palette.
type Color string

const (
	Info    Color = "info"
	Gray    Color = "gray"
	Failure Color = "failure"
	Success Color = "success"
	Warning Color = "warning"
	Indigo  Color = "indigo"
	Purple  Color = "purple"
	Pink    Color = "pink"
	Blue    Color = "blue"
	Cyan    Color = "cyan"
	Dark    Color = "dark"
	Light   Color = "light"
	Green   Color = "green"
	Lime    Color = "lime"
	Red     Color = "red"
	Teal    Color = "teal"
	Yellow  Color = "yellow"
)

// DefaultColor is used when no color is configured.
const DefaultColor = Blue

const baseClasses = "flex h-fit items-center gap-1 rounded px-2 py-0.5 text-xs font-semibold"

var palette = map[Color]string{
	Info:    hue("cyan"),
	Gray:    "bg-gray-100 text-gray-800 group-hover:bg-gray-200 dark:bg-gray-700 dark:text-gray-300 dark:group-hover:bg-gray-600",
	Failure: hue("red"),
	Success: hue("green"),
	Warning: hue("yellow"),
	Indigo:  hue("indigo"),
	Purple:  hue("purple"),
	Pink:    hue("pink"),
	Blue:    hue("blue"),
	Cyan:    hue("cyan"),
	Dark:    "bg-gray-600 text-gray-100 group-hover:bg-gray-500 dark:bg-gray-900 dark:text-gray-200 dark:group-hover:bg-gray-700",
	Light:   "bg-gray-200 text-gray-800 group-hover:bg-gray-300 dark:bg-gray-400 dark:text-gray-900 dark:group-hover:bg-gray-500",
	Green:   hue("green"),
	Lime:    hue("lime"),
	Red:     hue("red"),
	Teal:    hue("teal"),
	Yellow:  hue("yellow"),
}

func hue(name string) string {
	return strings.NewReplacer("%", name).Replace(
		"bg-%-100 text-%-800 group-hover:bg-%-200 dark:bg-%-200 dark:text-%-900 dark:group-hover:bg-%-300",
	)
}

// Colors lists the palette in declaration order.
func Colors() []Color {
	return []Color{
		Info, Gray, Failure, Success, Warning, Indigo, Purple, Pink, Blue,
		Cyan, Dark, Light, Green, Lime, Red, Teal, Yellow,
	}
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	_, ok := palette[c]
	return ok
}

// OrDefault returns c, or DefaultColor when c is empty or unknown.
func (c Color) OrDefault() Color {
	if c.Valid() {
		return c
	}

	return DefaultColor
}

// Classes returns the color classes for c.
func (c Color) Classes() string {
	return palette[c.OrDefault()]
}

// ParseColor parses a palette name. An empty string yields DefaultColor.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return DefaultColor, nil
	}

	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.ErrValidationError("label_color", errors.ErrUnknownColor)
	}

	return c, nil
}

// Renderer draws a badge.
type Renderer interface {
	Badge(color Color, text string, attrs ...g.Node) g.Node
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(color Color, text string, attrs ...g.Node) g.Node

func (f RendererFunc) Badge(color Color, text string, attrs ...g.Node) g.Node {
	return f(color, text, attrs...)
}

// Default returns the Tailwind pill renderer.
func Default() Renderer {
	return RendererFunc(pill)
}

func pill(color Color, text string, attrs ...g.Node) g.Node {
	color = color.OrDefault()

	return html.Span(
		html.Class(baseClasses+" "+color.Classes()),
		html.Data("color", string(color)),
		g.Group(attrs),
		g.Text(text),
	)
}

// ForgeUI returns a renderer backed by forgeui badges. The palette collapses
// onto forgeui's variants.
func ForgeUI() Renderer {
	return RendererFunc(func(color Color, text string, attrs ...g.Node) g.Node {
		color = color.OrDefault()

		return html.Span(
			html.Data("color", string(color)),
			g.Group(attrs),
			forgebadge.Badge(text, forgebadge.WithVariant(Variant(color))),
		)
	})
}

// Variant maps a palette color onto a forgeui variant.
func Variant(c Color) forgeui.Variant {
	switch c.OrDefault() {
	case Failure, Red:
		return forgeui.VariantDestructive
	case Gray, Light, Dark:
		return forgeui.VariantSecondary
	case Warning, Yellow, Lime:
		return forgeui.VariantOutline
	default:
		return forgeui.VariantDefault
	}
}
