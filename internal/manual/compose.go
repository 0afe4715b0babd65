package manual

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/readmanual/internal/document"
	"github.com/ziadkadry99/readmanual/internal/render"
	"github.com/ziadkadry99/readmanual/internal/slug"
)

// Fragments is the rendered form of one document: its sidebar navigation
// and its content pane, both scoped to the section slug.
type Fragments struct {
	Navigation string
	Content    string
	Headings   int
}

// Compose renders the top-level blocks of doc and builds the nested heading
// navigation for the section identified by sectionSlug. Heading anchors are
// drawn from ids, which is shared by every section of the manual.
func Compose(sectionSlug string, doc *document.Node, ids *slug.Uniquifier) (Fragments, error) {
	var nav, content strings.Builder
	fmt.Fprintf(&nav, "<ul class=\"%s\">\n", sectionSlug)
	fmt.Fprintf(&content, "<div class=\"%s\">\n", sectionSlug)

	var headings int
	depth := 1
	for _, child := range doc.Children {
		attr := ""
		if child.Kind == document.KindHeading {
			text := document.PlainText(child)
			anchor := ids.Uniquify(text)
			attr = fmt.Sprintf(`id="%s"`, anchor)

			level := max(child.Level, 1)
			for depth < level {
				nav.WriteString("<ul>\n")
				depth++
			}
			for depth > level {
				nav.WriteString("</ul>\n")
				depth--
			}
			fmt.Fprintf(&nav, "<li><a href=\"#%s\">%s</a></li>\n", anchor, html.EscapeString(text))
			headings++
		}

		fragment, err := render.Render(child, attr)
		if err != nil {
			return Fragments{}, err
		}
		content.WriteString(fragment)
	}

	for ; depth > 1; depth-- {
		nav.WriteString("</ul>\n")
	}
	nav.WriteString("</ul>\n")
	content.WriteString("</div>\n")

	return Fragments{
		Navigation: nav.String(),
		Content:    content.String(),
		Headings:   headings,
	}, nil
}
