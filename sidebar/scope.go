package sidebar

import (
	g "maragu.dev/gomponents"

	"github.com/xraph/sidenav/badge"
	"github.com/xraph/sidenav/link"
	"github.com/xraph/sidenav/style"
	"github.com/xraph/sidenav/tooltip"
)

// Scope is the display state a sidebar hands down to its components.
//
// The root owns it and passes it explicitly; components only read it. A
// collapsible group passes Nested() to its children. Zero-valued renderer
// fields fall back to the package defaults.
type Scope struct {
	// Collapsed is true when the sidebar shows icons only.
	Collapsed bool
	// InsideCollapse is true for components nested in a collapsible group.
	InsideCollapse bool
	// Location is the current navigation path.
	Location string

	Theme   *style.Theme
	Badge   badge.Renderer
	Tooltip tooltip.Renderer
	Link    link.Linker
}

// ScopeOption is a functional option for Scope.
type ScopeOption func(*Scope)

// NewScope returns a scope for the given location.
func NewScope(location string, opts ...ScopeOption) Scope {
	s := Scope{Location: location}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithCollapsed sets the collapsed display mode.
func WithCollapsed(collapsed bool) ScopeOption {
	return func(s *Scope) { s.Collapsed = collapsed }
}

// WithTheme sets the style theme.
func WithTheme(theme *style.Theme) ScopeOption {
	return func(s *Scope) { s.Theme = theme }
}

// WithBadge sets the badge renderer.
func WithBadge(r badge.Renderer) ScopeOption {
	return func(s *Scope) { s.Badge = r }
}

// WithTooltip sets the tooltip renderer.
func WithTooltip(r tooltip.Renderer) ScopeOption {
	return func(s *Scope) { s.Tooltip = r }
}

// WithLinker sets the default link primitive for the whole tree.
func WithLinker(l link.Linker) ScopeOption {
	return func(s *Scope) { s.Link = l }
}

// Nested returns the scope for children of a collapsible group.
func (s Scope) Nested() Scope {
	s.InsideCollapse = true
	return s
}

// IsCurrent reports whether href is the current location. An empty href is
// never current.
func (s Scope) IsCurrent(href string) bool {
	return href != "" && href == s.Location
}

func (s Scope) theme() *style.Theme {
	if s.Theme == nil {
		return style.DefaultTheme()
	}

	return s.Theme
}

func (s Scope) badges() badge.Renderer {
	if s.Badge == nil {
		return badge.Default()
	}

	return s.Badge
}

func (s Scope) tooltips() tooltip.Renderer {
	if s.Tooltip == nil {
		return tooltip.Default()
	}

	return s.Tooltip
}

// linker picks the component override, then the scope linker, then the default.
func (s Scope) linker(override link.Linker) link.Linker {
	switch {
	case override != nil:
		return override
	case s.Link != nil:
		return s.Link
	default:
		return link.Default()
	}
}

func (s Scope) class(tokens []style.Token, extra ...string) g.Node {
	return s.theme().Class(tokens, extra...)
}
