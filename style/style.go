// Package style derives the visual state of sidebar components.
//
// Components never spell out CSS. They ask this package which semantic tokens
// apply for a given set of state flags, and a Theme turns those tokens into
// class names. Swapping the Theme restyles the whole sidebar family without
// touching the rendering logic.
package style

import (
	"slices"
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
)

// Token names one piece of visual styling.
type Token string

const (
	Root          Token = "root"
	RootCollapsed Token = "root-collapsed"
	RootExpanded  Token = "root-expanded"
	Inner         Token = "inner"
	ItemGroup     Token = "item-group"

	Link        Token = "link"
	LinkCurrent Token = "link-current"
	LinkNested  Token = "link-nested"

	Icon        Token = "icon"
	IconCurrent Token = "icon-current"

	Content Token = "content"

	CollapseButton  Token = "collapse-button"
	CollapseIcon    Token = "collapse-icon"
	CollapseLabel   Token = "collapse-label"
	CollapseChevron Token = "collapse-chevron"
	CollapseList    Token = "collapse-list"

	Logo      Token = "logo"
	LogoImage Token = "logo-image"
	LogoText  Token = "logo-text"

	CTA Token = "cta"
)

// LinkFlags is the state that decides how an item's link looks.
type LinkFlags struct {
	Current        bool
	Collapsed      bool
	InsideCollapse bool
}

// LinkTokens returns the tokens for an item link.
// Nesting only indents while the sidebar is expanded.
func LinkTokens(f LinkFlags) []Token {
	tokens := []Token{Link}

	if f.Current {
		tokens = append(tokens, LinkCurrent)
	}

	if f.InsideCollapse && !f.Collapsed {
		tokens = append(tokens, LinkNested)
	}

	return tokens
}

// IconTokens returns the tokens for an item icon.
func IconTokens(current bool) []Token {
	if current {
		return []Token{Icon, IconCurrent}
	}

	return []Token{Icon}
}

// RootTokens returns the tokens for the sidebar root.
func RootTokens(collapsed bool) []Token {
	if collapsed {
		return []Token{Root, RootCollapsed}
	}

	return []Token{Root, RootExpanded}
}

// Theme maps tokens to space separated class lists.
type Theme struct {
	classes map[Token]string
}

var defaultClasses = map[Token]string{
	Root:          "h-full",
	RootCollapsed: "w-16",
	RootExpanded:  "w-64",
	Inner:         "h-full overflow-y-auto overflow-x-hidden rounded bg-gray-50 px-3 py-4 dark:bg-gray-800",
	ItemGroup:     "mt-4 space-y-2 border-t border-gray-200 pt-4 first:mt-0 first:border-t-0 first:pt-0 dark:border-gray-700",

	Link:        "flex items-center rounded-lg p-2 text-base font-normal text-gray-900 hover:bg-gray-100 dark:text-white dark:hover:bg-gray-700",
	LinkCurrent: "bg-gray-100 dark:bg-gray-700",
	LinkNested:  "group w-full pl-8 transition duration-75",

	Icon:        "h-6 w-6 flex-shrink-0 text-gray-500 transition duration-75 group-hover:text-gray-900 dark:text-gray-400 dark:group-hover:text-white",
	IconCurrent: "text-gray-700 dark:text-gray-100",

	Content: "ml-3 flex-1 whitespace-nowrap",

	CollapseButton:  "group flex w-full items-center rounded-lg p-2 text-base font-normal text-gray-900 transition duration-75 hover:bg-gray-100 dark:text-white dark:hover:bg-gray-700",
	CollapseIcon:    "h-6 w-6 text-gray-500 transition duration-75 group-hover:text-gray-900 dark:text-gray-400 dark:group-hover:text-white",
	CollapseLabel:   "ml-3 flex-1 whitespace-nowrap text-left",
	CollapseChevron: "h-6 w-6",
	CollapseList:    "space-y-2 py-2",

	Logo:      "mb-5 flex items-center pl-2.5",
	LogoImage: "mr-3 h-6 sm:h-7",
	LogoText:  "self-center whitespace-nowrap text-xl font-semibold dark:text-white",

	CTA: "mt-6 rounded-lg bg-gray-100 p-4 dark:bg-gray-700",
}

var defaultTheme = NewTheme(defaultClasses)

// DefaultTheme returns the Tailwind theme used by the sidebar family.
func DefaultTheme() *Theme {
	return defaultTheme
}

// NewTheme builds a theme from a token map. The map is copied.
func NewTheme(classes map[Token]string) *Theme {
	m := make(map[Token]string, len(classes))
	for k, v := range classes {
		m[k] = v
	}

	return &Theme{classes: m}
}

// With returns a copy of the theme with token restyled.
func (t *Theme) With(token Token, classes string) *Theme {
	next := NewTheme(t.resolve().classes)
	next.classes[token] = classes

	return next
}

// Lookup returns the raw class list for a token.
func (t *Theme) Lookup(token Token) string {
	return t.resolve().classes[token]
}

// Classes returns the deduplicated, sorted classes for tokens plus any extra
// class lists.
func (t *Theme) Classes(tokens []Token, extra ...string) []string {
	th := t.resolve()
	seen := make(map[string]struct{})

	add := func(list string) {
		for _, cls := range strings.Fields(list) {
			seen[cls] = struct{}{}
		}
	}

	for _, tok := range tokens {
		add(th.classes[tok])
	}

	for _, e := range extra {
		add(e)
	}

	out := make([]string, 0, len(seen))
	for cls := range seen {
		out = append(out, cls)
	}

	slices.Sort(out)

	return out
}

// String joins Classes with spaces.
func (t *Theme) String(tokens []Token, extra ...string) string {
	return strings.Join(t.Classes(tokens, extra...), " ")
}

// Class renders the class attribute for tokens plus extra class lists.
func (t *Theme) Class(tokens []Token, extra ...string) g.Node {
	classes := c.Classes{}
	for _, cls := range t.Classes(tokens, extra...) {
		classes[cls] = true
	}

	return classes
}

func (t *Theme) resolve() *Theme {
	if t == nil || t.classes == nil {
		return defaultTheme
	}

	return t
}
