package sidebar

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	sidenaverrors "github.com/xraph/sidenav/errors"
)

func testSidebar() *Sidebar {
	return &Sidebar{
		Logo: &Logo{Href: "/", Img: "/logo.svg", ImgAlt: "Acme", Text: "Acme"},
		Groups: []ItemGroup{
			{Items: []Component{
				NewItem("/", "Dashboard"),
				Collapse{
					Label: "E-commerce",
					Icon:  testIcon,
					Items: []Component{
						NewItem("/products", "Products"),
						NewItem("/billing", "Billing"),
					},
				},
			}},
			{Items: []Component{
				Item{Href: "/docs", Label: "New", Children: []g.Node{g.Text("Docs")}},
			}},
		},
		CTA: &CTA{Children: []g.Node{g.Text("Upgrade")}},
	}
}

func TestSidebar_Structure(t *testing.T) {
	doc := render(t, testSidebar().Render(NewScope("/")))

	root := byTestID(doc, "sidebar")
	require.Equal(t, 1, root.Length())
	assert.Equal(t, "aside", goquery.NodeName(root))

	label, _ := root.Attr("aria-label")
	assert.Equal(t, "Sidebar", label)
	collapsed, _ := root.Attr("data-collapsed")
	assert.Equal(t, "false", collapsed)
	assert.True(t, root.HasClass("w-64"))

	assert.Equal(t, 2, byTestID(doc, "sidebar-item-group").Length())
	assert.Equal(t, 4, byTestID(doc, "sidebar-item").Length())
	assert.Equal(t, 1, byTestID(doc, "sidebar-logo-text").Length())
	assert.Equal(t, 1, byTestID(doc, "sidebar-cta").Length())
}

func TestSidebar_Collapsed(t *testing.T) {
	doc := render(t, testSidebar().Render(NewScope("/", WithCollapsed(true))))

	root := byTestID(doc, "sidebar")
	assert.True(t, root.HasClass("w-16"))
	collapsed, _ := root.Attr("data-collapsed")
	assert.Equal(t, "true", collapsed)

	assert.Equal(t, 0, byTestID(doc, "sidebar-logo-text").Length())
	assert.Equal(t, 0, byTestID(doc, "sidebar-cta").Length())
	assert.Equal(t, 0, byTestID(doc, "sidebar-item-content").Length())
	assert.Equal(t, 0, byTestID(doc, "sidebar-item-label").Length())
	assert.Equal(t, 4, byTestID(doc, "sidebar-item-tooltip").Length())
	assert.Equal(t, 1, byTestID(doc, "sidebar-collapse-tooltip").Length())
	assert.Equal(t, 0, byTestID(doc, "sidebar-collapse-label").Length())
}

func TestCollapse_ClosedByDefault(t *testing.T) {
	doc := render(t, testSidebar().Render(NewScope("/")))

	c := byTestID(doc, "sidebar-collapse")
	open, _ := c.Attr("data-open")
	assert.Equal(t, "false", open)

	list := byTestID(doc, "sidebar-collapse-list")
	styleAttr, _ := list.Attr("style")
	assert.Equal(t, "display: none", styleAttr)

	expanded, _ := byTestID(doc, "sidebar-collapse-button").Attr("aria-expanded")
	assert.Equal(t, "false", expanded)
}

func TestCollapse_OpensForCurrentChild(t *testing.T) {
	doc := render(t, testSidebar().Render(NewScope("/billing")))

	c := byTestID(doc, "sidebar-collapse")
	open, _ := c.Attr("data-open")
	assert.Equal(t, "true", open)

	xdata, _ := c.Attr("x-data")
	assert.Equal(t, "{ open: true }", xdata)

	_, hidden := byTestID(doc, "sidebar-collapse-list").Attr("style")
	assert.False(t, hidden)

	current := doc.Find(`a[aria-current="page"]`)
	require.Equal(t, 1, current.Length())
	href, _ := current.Attr("href")
	assert.Equal(t, "/billing", href)
}

func TestCollapse_NestedItemsIndent(t *testing.T) {
	doc := render(t, testSidebar().Render(NewScope("/")))

	nested := byTestID(doc, "sidebar-collapse-list").Find("a")
	require.Equal(t, 2, nested.Length())
	nested.Each(func(_ int, a *goquery.Selection) {
		assert.True(t, a.HasClass("pl-8"))
	})

	top := doc.Find(`a[href="/docs"]`)
	assert.False(t, top.HasClass("pl-8"))
}

func TestCollapse_NestedItemsDoNotIndentWhenCollapsed(t *testing.T) {
	doc := render(t, testSidebar().Render(NewScope("/", WithCollapsed(true))))

	byTestID(doc, "sidebar-collapse-list").Find("a").Each(func(_ int, a *goquery.Selection) {
		assert.False(t, a.HasClass("pl-8"))
	})
}

func TestCollapse_OpenFlag(t *testing.T) {
	c := Collapse{Label: "Group", Open: true, Items: []Component{NewItem("/x", "X")}}
	doc := render(t, c.Render(NewScope("/")))

	open, _ := byTestID(doc, "sidebar-collapse").Attr("data-open")
	assert.Equal(t, "true", open)
	assert.Equal(t, "Group", byTestID(doc, "sidebar-collapse-label").Text())
}

func TestSidebar_Current(t *testing.T) {
	sb := testSidebar()

	assert.True(t, sb.Current(NewScope("/products")))
	assert.True(t, sb.Current(NewScope("/docs")))
	assert.False(t, sb.Current(NewScope("/nowhere")))
}

func TestHasCurrent_IgnoresNonReporters(t *testing.T) {
	components := []Component{CTA{}, Logo{Href: "/"}, NewItem("/a", "A")}

	assert.True(t, HasCurrent(components, NewScope("/a")))
	assert.False(t, HasCurrent(components, NewScope("/")))
}

func TestSidebar_AriaLabelAndAttrs(t *testing.T) {
	sb := &Sidebar{AriaLabel: "Main navigation", Class: "fixed", Attrs: []g.Node{g.Attr("id", "nav")}}
	doc := render(t, sb.Render(NewScope("/")))

	root := byTestID(doc, "sidebar")
	label, _ := root.Attr("aria-label")
	assert.Equal(t, "Main navigation", label)
	assert.True(t, root.HasClass("fixed"))
	id, _ := root.Attr("id")
	assert.Equal(t, "nav", id)
}

func TestSidebar_StringMatchesRenderTo(t *testing.T) {
	sb := testSidebar()
	s := NewScope("/docs")

	var buf bytes.Buffer
	require.NoError(t, sb.RenderTo(&buf, s))

	assert.Equal(t, sb.String(s), buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSidebar_RenderToWrapsErrors(t *testing.T) {
	err := testSidebar().RenderTo(failingWriter{}, NewScope("/"))

	require.Error(t, err)
	assert.True(t, sidenaverrors.IsRenderError(err))
}

func TestLogo_DefaultHref(t *testing.T) {
	doc := render(t, Logo{Text: "Acme"}.Render(NewScope("/")))

	href, _ := byTestID(doc, "sidebar-logo").Attr("href")
	assert.Equal(t, "/", href)
	assert.Equal(t, 0, doc.Find("img").Length())
}
