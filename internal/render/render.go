// Package render converts document nodes into HTML fragments.
package render

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/readmanual/internal/document"
)

// ErrUnsupportedNodeKind is returned for a node kind with no HTML mapping.
var ErrUnsupportedNodeKind = errors.New("unsupported node kind")

// Render returns the HTML for n. attr, when non-empty, is placed inside the
// opening tag of n itself (for example `id="intro"`); descendants never see it.
func Render(n *document.Node, attr string) (string, error) {
	var b strings.Builder
	if err := render(&b, n, attr); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, n *document.Node, attr string) error {
	switch n.Kind {
	case document.KindDocument:
		return renderChildren(b, n)
	case document.KindHeading:
		fmt.Fprintf(b, "<h%d%s>", n.Level, attribute(attr))
		if err := renderChildren(b, n); err != nil {
			return err
		}
		fmt.Fprintf(b, "</h%d>\n", n.Level)
		return nil
	case document.KindParagraph:
		return wrap(b, n, "<p>", "</p>\n")
	case document.KindEmphasis:
		return wrap(b, n, "<i>", "</i>")
	case document.KindStrong:
		return wrap(b, n, "<strong>", "</strong>")
	case document.KindText:
		b.WriteString(html.EscapeString(n.Literal))
		return nil
	case document.KindList:
		if n.Ordered {
			return wrap(b, n, "<ol>\n", "</ol>\n")
		}
		return wrap(b, n, "<ul>\n", "</ul>\n")
	case document.KindListItem:
		return wrap(b, n, "<li>", "</li>\n")
	case document.KindLink:
		return wrap(b, n, `<a href="`+html.EscapeString(n.Destination)+`">`, "</a>")
	case document.KindImage:
		fmt.Fprintf(b, `<img src="%s" alt="%s">`,
			html.EscapeString(n.Destination), html.EscapeString(document.PlainText(n)))
		return nil
	case document.KindQuote:
		return wrap(b, n, "<blockquote>\n", "</blockquote>\n")
	case document.KindCodeSpan:
		return wrap(b, n, "<code>", "</code>")
	case document.KindFencedCode:
		renderFencedCode(b, n)
		return nil
	case document.KindThematicBreak:
		b.WriteString("<hr>\n")
		return nil
	case document.KindLineBreak:
		b.WriteString("<br>")
		return nil
	case document.KindBlankLine:
		b.WriteString("<br>\n")
		return nil
	default:
		kind := n.Kind.String()
		if n.Origin != "" {
			kind = n.Origin
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedNodeKind, kind)
	}
}

// wrap writes prefix, the node's payload and suffix. Literal payloads are
// escaped; child sequences recurse.
func wrap(b *strings.Builder, n *document.Node, prefix, suffix string) error {
	b.WriteString(prefix)
	if n.IsLiteral() {
		b.WriteString(html.EscapeString(n.Literal))
	} else if err := renderChildren(b, n); err != nil {
		return err
	}
	b.WriteString(suffix)
	return nil
}

func renderChildren(b *strings.Builder, n *document.Node) error {
	for _, child := range n.Children {
		if err := render(b, child, ""); err != nil {
			return err
		}
	}
	return nil
}

// renderFencedCode joins the raw lines as they appeared in the source,
// dropping only the terminator of the last line.
func renderFencedCode(b *strings.Builder, n *document.Node) {
	b.WriteString("<pre><code")
	if n.Language != "" {
		fmt.Fprintf(b, ` class="language-%s"`, html.EscapeString(n.Language))
	}
	b.WriteString(">")

	var code strings.Builder
	for _, line := range n.Children {
		code.WriteString(line.Literal)
	}
	body := strings.TrimSuffix(code.String(), "\n")
	body = strings.TrimSuffix(body, "\r")
	b.WriteString(html.EscapeString(body))
	b.WriteString("</code></pre>\n")
}

func attribute(attr string) string {
	if attr == "" {
		return ""
	}
	return " " + attr
}
