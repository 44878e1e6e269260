package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
	g "maragu.dev/gomponents"

	"github.com/xraph/sidenav/badge"
	"github.com/xraph/sidenav/errors"
	"github.com/xraph/sidenav/icon"
	"github.com/xraph/sidenav/sidebar"
)

// attrName matches the attribute names an entry may pass through, including
// Alpine's @event and :binding shorthands.
var attrName = regexp.MustCompile(`^[A-Za-z_:@][A-Za-z0-9_:.@-]*$`)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var strictJSON = jsoniter.Config{
	EscapeHTML:            true,
	SortMapKeys:           true,
	DisallowUnknownFields: true,
}.Froze()

// Manifest describes a sidebar declaratively.
type Manifest struct {
	Logo   *Logo   `json:"logo,omitempty"   yaml:"logo,omitempty"`
	Groups []Group `json:"groups"           yaml:"groups"`
	CTA    string  `json:"cta,omitempty"    yaml:"cta,omitempty"`
}

// Logo describes the brand link.
type Logo struct {
	Href   string `json:"href,omitempty"    yaml:"href,omitempty"`
	Img    string `json:"img,omitempty"     yaml:"img,omitempty"`
	ImgAlt string `json:"img_alt,omitempty" yaml:"img_alt,omitempty"`
	Text   string `json:"text,omitempty"    yaml:"text,omitempty"`
}

// Group is one separated list of entries.
type Group struct {
	Class string  `json:"class,omitempty" yaml:"class,omitempty"`
	Items []Entry `json:"items"           yaml:"items"`
}

// Entry is a navigation item, or a collapsible group when Items is set.
type Entry struct {
	Text       string            `json:"text"                  yaml:"text"`
	Href       string            `json:"href,omitempty"        yaml:"href,omitempty"`
	Icon       string            `json:"icon,omitempty"        yaml:"icon,omitempty"`
	Label      string            `json:"label,omitempty"       yaml:"label,omitempty"`
	LabelColor string            `json:"label_color,omitempty" yaml:"label_color,omitempty"`
	Class      string            `json:"class,omitempty"       yaml:"class,omitempty"`
	Attrs      map[string]string `json:"attrs,omitempty"       yaml:"attrs,omitempty"`
	Open       bool              `json:"open,omitempty"        yaml:"open,omitempty"`
	Items      []Entry           `json:"items,omitempty"       yaml:"items,omitempty"`
}

// IsCollapse reports whether the entry is a collapsible group.
func (e Entry) IsCollapse() bool {
	return e.Items != nil
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.ErrManifestError(path, errors.ErrUnknownFormat)
	}
}

// Load reads and decodes a manifest file. It does not validate.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrManifestError(path, err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, errors.ErrManifestError(path, err)
	}

	return m, nil
}

// Parse decodes a manifest. Unknown fields are rejected and an empty
// document yields an empty manifest.
func Parse(data []byte, format Format) (*Manifest, error) {
	m := &Manifest{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(m); err != nil && err != io.EOF {
			return nil, err
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return m, nil
		}

		if err := strictJSON.Unmarshal(data, m); err != nil {
			return nil, err
		}
	default:
		return nil, errors.ErrUnknownFormat
	}

	return m, nil
}

// Encode serializes the manifest.
func (m *Manifest) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(m)
	case FormatJSON:
		return strictJSON.Marshal(m)
	default:
		return nil, errors.ErrUnknownFormat
	}
}

// Validate reports every problem in the manifest, joined.
func (m *Manifest) Validate() error {
	var errs []error

	for gi, group := range m.Groups {
		for ei, entry := range group.Items {
			errs = append(errs, entry.validate(fmt.Sprintf("groups[%d].items[%d]", gi, ei))...)
		}
	}

	return errors.Join(errs...)
}

func (e Entry) validate(prefix string) []error {
	var errs []error

	field := func(name string, cause error) {
		errs = append(errs, errors.ErrValidationError(prefix+"."+name, cause))
	}

	if e.Icon != "" && !icon.Known(e.Icon) {
		field("icon", errors.ErrUnknownIcon)
	}

	if e.IsCollapse() {
		if e.Text == "" {
			field("text", errors.ErrMissingText)
		}

		if len(e.Items) == 0 {
			field("items", errors.ErrEmptyCollapse)
		}

		for i, child := range e.Items {
			errs = append(errs, child.validate(fmt.Sprintf("%s.items[%d]", prefix, i))...)
		}

		return errs
	}

	if e.Href == "" {
		field("href", errors.ErrMissingHref)
	}

	if _, err := badge.ParseColor(e.LabelColor); err != nil {
		field("label_color", errors.ErrUnknownColor)
	}

	for _, name := range sortedKeys(e.Attrs) {
		if !attrName.MatchString(name) {
			field(fmt.Sprintf("attrs[%q]", name), errors.ErrInvalidAttr)
		}
	}

	return errs
}

// Build validates the manifest and converts it into a sidebar.
func (m *Manifest) Build() (*sidebar.Sidebar, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	sb := &sidebar.Sidebar{
		Groups: make([]sidebar.ItemGroup, 0, len(m.Groups)),
	}

	if m.Logo != nil {
		sb.Logo = &sidebar.Logo{
			Href:   m.Logo.Href,
			Img:    m.Logo.Img,
			ImgAlt: m.Logo.ImgAlt,
			Text:   m.Logo.Text,
		}
	}

	for _, group := range m.Groups {
		sb.Groups = append(sb.Groups, sidebar.ItemGroup{
			Class: group.Class,
			Items: buildEntries(group.Items),
		})
	}

	if m.CTA != "" {
		sb.CTA = &sidebar.CTA{Children: []g.Node{g.Text(m.CTA)}}
	}

	return sb, nil
}

func buildEntries(entries []Entry) []sidebar.Component {
	out := make([]sidebar.Component, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.build())
	}

	return out
}

func (e Entry) build() sidebar.Component {
	var ic icon.Renderer
	if e.Icon != "" {
		ic = icon.Named(e.Icon)
	}

	if e.IsCollapse() {
		return sidebar.Collapse{
			Label: e.Text,
			Icon:  ic,
			Open:  e.Open,
			Class: e.Class,
			Items: buildEntries(e.Items),
		}
	}

	// Validate has already rejected unknown colors.
	color, _ := badge.ParseColor(e.LabelColor)

	return sidebar.Item{
		Href:       e.Href,
		Icon:       ic,
		Label:      e.Label,
		LabelColor: color,
		Class:      e.Class,
		Attrs:      attrs(e.Attrs),
		Children:   []g.Node{g.Text(e.Text)},
	}
}

// attrs converts pass-through attributes in key order. Names have been
// checked by Validate.
func attrs(m map[string]string) []g.Node {
	if len(m) == 0 {
		return nil
	}

	keys := sortedKeys(m)

	nodes := make([]g.Node, 0, len(keys))
	for _, k := range keys {
		nodes = append(nodes, g.Attr(k, m[k]))
	}

	return nodes
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
