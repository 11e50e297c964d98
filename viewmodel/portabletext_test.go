package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucasforesti/pilotoapi/imageurl"
	"github.com/lucasforesti/pilotoapi/models"
)

func textBlock(style string, spans ...models.Span) models.Block {
	return models.Block{Type: "block", Style: style, Children: spans}
}

func TestRenderParagraphAndHeadings(t *testing.T) {
	r := &BodyRenderer{}

	html := r.Render([]models.Block{
		textBlock("h2", models.Span{Text: "Temporada"}),
		textBlock("normal", models.Span{Text: "Primeira corrida."}),
		textBlock("blockquote", models.Span{Text: "Foi incrível."}),
	})

	assert.Equal(t,
		"<h2>Temporada</h2><p>Primeira corrida.</p><blockquote>Foi incrível.</blockquote>",
		html)
}

func TestRenderEscapesText(t *testing.T) {
	r := &BodyRenderer{}

	html := r.Render([]models.Block{
		textBlock("normal", models.Span{Text: `<script>alert("x")</script>`}),
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderDecoratorMarks(t *testing.T) {
	r := &BodyRenderer{}

	html := r.Render([]models.Block{
		textBlock("normal",
			models.Span{Text: "pole ", Marks: []string{"strong"}},
			models.Span{Text: "position", Marks: []string{"strong", "em"}},
		),
	})

	assert.Equal(t, "<p><strong>pole </strong><strong><em>position</em></strong></p>", html)
}

func TestRenderLinks(t *testing.T) {
	r := &BodyRenderer{}

	html := r.Render([]models.Block{
		{
			Type:  "block",
			Style: "normal",
			Children: []models.Span{
				{Text: "matéria completa", Marks: []string{"lnk1"}},
			},
			MarkDefs: []models.MarkDef{
				{Key: "lnk1", Type: "link", Href: "https://example.com/gp", Blank: true},
			},
		},
	})

	assert.Contains(t, html, `<a href="https://example.com/gp" target="_blank" rel="noopener noreferrer">matéria completa</a>`)
}

func TestRenderEscapesAttributeValues(t *testing.T) {
	r := &BodyRenderer{Resolver: imageurl.New("proj", "production")}

	// A quote in an editor-authored href or alt must not terminate the
	// attribute, or it smuggles arbitrary attributes into the markup.
	html := r.Render([]models.Block{
		{
			Type:  "block",
			Style: "normal",
			Children: []models.Span{
				{Text: "link", Marks: []string{"lnk1"}},
			},
			MarkDefs: []models.MarkDef{
				{Key: "lnk1", Type: "link", Href: `https://x/" onmouseover=alert(1) x="`},
			},
		},
		{
			Type:  "image",
			Asset: &models.AssetRef{Ref: "image-abc123-2000x3000-jpg"},
			Alt:   `foto" onerror=alert(1) x="`,
		},
	})

	assert.NotContains(t, html, "onmouseover=")
	assert.NotContains(t, html, "onerror=")
	assert.Contains(t, html, `<a href="https://x/&#34; onmouseover=alert(1) x=&#34;">link</a>`)
	assert.Contains(t, html, `alt="foto&#34; onerror=alert(1) x=&#34;"`)
}

func TestRenderLists(t *testing.T) {
	r := &BodyRenderer{}

	bullet := models.Block{Type: "block", ListItem: "bullet", Level: 1,
		Children: []models.Span{{Text: "um"}}}
	bullet2 := models.Block{Type: "block", ListItem: "bullet", Level: 1,
		Children: []models.Span{{Text: "dois"}}}
	after := textBlock("normal", models.Span{Text: "fim"})

	html := r.Render([]models.Block{bullet, bullet2, after})
	assert.Equal(t, "<ul><li>um</li><li>dois</li></ul><p>fim</p>", html)

	numbered := models.Block{Type: "block", ListItem: "number", Level: 1,
		Children: []models.Span{{Text: "primeiro"}}}
	html = r.Render([]models.Block{numbered})
	assert.Equal(t, "<ol><li>primeiro</li></ol>", html)
}

func TestRenderNestedLists(t *testing.T) {
	r := &BodyRenderer{}

	html := r.Render([]models.Block{
		{Type: "block", ListItem: "bullet", Level: 1, Children: []models.Span{{Text: "pai"}}},
		{Type: "block", ListItem: "bullet", Level: 2, Children: []models.Span{{Text: "filho"}}},
		{Type: "block", ListItem: "bullet", Level: 1, Children: []models.Span{{Text: "irmão"}}},
	})

	assert.Equal(t, "<ul><li>pai</li><ul><li>filho</li></ul><li>irmão</li></ul>", html)
}

func TestRenderInlineImage(t *testing.T) {
	r := &BodyRenderer{Resolver: imageurl.New("proj", "production")}

	html := r.Render([]models.Block{
		{Type: "image", Asset: &models.AssetRef{Ref: "image-abc123-2000x3000-jpg"}, Alt: "pódio"},
	})

	assert.Contains(t, html, "<figure><img src=")
	assert.Contains(t, html, "abc123-2000x3000.jpg")
	assert.Contains(t, html, `alt="pódio"`)
}

func TestRenderUnresolvableImageRendersNothing(t *testing.T) {
	r := &BodyRenderer{Resolver: imageurl.New("proj", "production")}

	html := r.Render([]models.Block{
		{Type: "image", Asset: &models.AssetRef{Ref: "garbage"}},
		textBlock("normal", models.Span{Text: "texto"}),
	})

	assert.Equal(t, "<p>texto</p>", html)
}
