package viewmodel

import (
	"fmt"
	"html"
	"strings"

	"github.com/lucasforesti/pilotoapi/imageurl"
	"github.com/lucasforesti/pilotoapi/models"
)

// bodyImageWidth is the transform width applied to inline body images.
const bodyImageWidth = 1200

// BodyRenderer turns portable-text blocks into HTML. Inline images go
// through the resolver; an unresolvable image renders nothing rather than a
// broken img tag.
type BodyRenderer struct {
	Resolver *imageurl.Resolver
}

// Render produces the HTML for a rich-content body. All text is escaped;
// only the markup generated here reaches the output.
func (r *BodyRenderer) Render(blocks []models.Block) string {
	var b strings.Builder
	listDepth := 0
	listTag := ""

	closeLists := func(to int) {
		for listDepth > to {
			fmt.Fprintf(&b, "</%s>", listTag)
			listDepth--
		}
	}

	for _, blk := range blocks {
		if blk.Type == "image" {
			closeLists(0)
			r.renderImage(&b, blk)
			continue
		}
		if blk.ListItem != "" {
			tag := "ul"
			if blk.ListItem == "number" {
				tag = "ol"
			}
			level := blk.Level
			if level < 1 {
				level = 1
			}
			if listDepth > 0 && tag != listTag {
				closeLists(0)
			}
			listTag = tag
			for listDepth < level {
				fmt.Fprintf(&b, "<%s>", listTag)
				listDepth++
			}
			closeLists(level)
			b.WriteString("<li>")
			r.renderSpans(&b, blk)
			b.WriteString("</li>")
			continue
		}

		closeLists(0)
		tag := blockTag(blk.Style)
		fmt.Fprintf(&b, "<%s>", tag)
		r.renderSpans(&b, blk)
		fmt.Fprintf(&b, "</%s>", tag)
	}
	closeLists(0)

	return b.String()
}

func blockTag(style string) string {
	switch style {
	case "h1", "h2", "h3", "h4":
		return style
	case "blockquote":
		return "blockquote"
	default:
		return "p"
	}
}

func (r *BodyRenderer) renderSpans(b *strings.Builder, blk models.Block) {
	defs := map[string]models.MarkDef{}
	for _, d := range blk.MarkDefs {
		defs[d.Key] = d
	}

	for _, span := range blk.Children {
		open, closing := spanTags(span.Marks, defs)
		b.WriteString(open)
		b.WriteString(html.EscapeString(span.Text))
		b.WriteString(closing)
	}
}

// spanTags builds the opening and closing markup for a span's marks. Closing
// tags are emitted in reverse order so nesting stays balanced.
func spanTags(marks []string, defs map[string]models.MarkDef) (string, string) {
	var open strings.Builder
	var closers []string

	for _, m := range marks {
		if def, ok := defs[m]; ok {
			if def.Type == "link" && def.Href != "" {
				if def.Blank {
					fmt.Fprintf(&open, `<a href=%s target="_blank" rel="noopener noreferrer">`,
						attr(def.Href))
				} else {
					fmt.Fprintf(&open, `<a href=%s>`, attr(def.Href))
				}
				closers = append(closers, "</a>")
			}
			continue
		}
		switch m {
		case "strong":
			open.WriteString("<strong>")
			closers = append(closers, "</strong>")
		case "em":
			open.WriteString("<em>")
			closers = append(closers, "</em>")
		case "underline":
			open.WriteString("<u>")
			closers = append(closers, "</u>")
		case "strike-through":
			open.WriteString("<del>")
			closers = append(closers, "</del>")
		case "code":
			open.WriteString("<code>")
			closers = append(closers, "</code>")
		}
	}

	var closing strings.Builder
	for i := len(closers) - 1; i >= 0; i-- {
		closing.WriteString(closers[i])
	}
	return open.String(), closing.String()
}

func (r *BodyRenderer) renderImage(b *strings.Builder, blk models.Block) {
	if r.Resolver == nil {
		return
	}
	builder := r.Resolver.ResolveAsset(blk.Asset)
	if builder == nil {
		return
	}
	src := builder.Width(bodyImageWidth).Auto("format").URL()
	fmt.Fprintf(b, `<figure><img src=%s alt=%s loading="lazy"></figure>`,
		attr(src), attr(blk.Alt))
}

// attr quotes an attribute value with HTML escaping. Go's %q escapes for Go
// source, not HTML: a CMS-authored quote would terminate the attribute and
// smuggle new ones into the markup.
func attr(v string) string {
	return `"` + html.EscapeString(v) + `"`
}
