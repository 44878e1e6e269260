package badge

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui"

	"github.com/xraph/sidenav/errors"
)

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, n.Render(&sb))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)

	return doc
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, DefaultColor, c)

	c, err = ParseColor(" Green ")
	require.NoError(t, err)
	assert.Equal(t, Green, c)

	_, err = ParseColor("chartreuse")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.Is(err, errors.ErrUnknownColor))
}

func TestColors_AllValid(t *testing.T) {
	colors := Colors()
	assert.Len(t, colors, 17)

	for _, c := range colors {
		assert.True(t, c.Valid(), c)
		assert.NotEmpty(t, c.Classes(), c)
	}
}

func TestColor_OrDefault(t *testing.T) {
	assert.Equal(t, Blue, Color("").OrDefault())
	assert.Equal(t, Blue, Color("nope").OrDefault())
	assert.Equal(t, Teal, Teal.OrDefault())
}

func TestDefault_RendersColoredPill(t *testing.T) {
	doc := render(t, Default().Badge(Green, "New", html.Data("testid", "label")))

	sel := doc.Find(`[data-testid="label"]`)
	require.Equal(t, 1, sel.Length())
	assert.Equal(t, "New", sel.Text())

	color, _ := sel.Attr("data-color")
	assert.Equal(t, "green", color)
	assert.True(t, sel.HasClass("bg-green-100"))
	assert.True(t, sel.HasClass("font-semibold"))
}

func TestDefault_UnknownColorFallsBack(t *testing.T) {
	doc := render(t, Default().Badge(Color(""), "3"))

	sel := doc.Find("span")
	color, _ := sel.Attr("data-color")
	assert.Equal(t, "blue", color)
	assert.True(t, sel.HasClass("bg-blue-100"))
}

func TestVariant(t *testing.T) {
	assert.Equal(t, forgeui.VariantDestructive, Variant(Failure))
	assert.Equal(t, forgeui.VariantSecondary, Variant(Gray))
	assert.Equal(t, forgeui.VariantOutline, Variant(Warning))
	assert.Equal(t, forgeui.VariantDefault, Variant(Blue))
	assert.Equal(t, forgeui.VariantDefault, Variant(""))
}

func TestForgeUI_KeepsAttrsAndColor(t *testing.T) {
	doc := render(t, ForgeUI().Badge(Red, "Hot", html.Data("testid", "label")))

	sel := doc.Find(`[data-testid="label"]`)
	require.Equal(t, 1, sel.Length())

	color, _ := sel.Attr("data-color")
	assert.Equal(t, "red", color)
	assert.Contains(t, sel.Text(), "Hot")
}
