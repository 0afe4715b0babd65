package render

import (
	"errors"
	"strings"
	"testing"

	d "github.com/ziadkadry99/readmanual/internal/document"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		node *d.Node
		attr string
		want string
	}{
		{
			name: "heading with attribute",
			node: d.Heading(2, d.Text("Install")),
			attr: `id="install"`,
			want: "<h2 id=\"install\">Install</h2>\n",
		},
		{
			name: "heading without attribute",
			node: d.Heading(3, d.Text("Notes")),
			want: "<h3>Notes</h3>\n",
		},
		{
			name: "attribute is not propagated",
			node: d.Paragraph(d.Emphasis(d.Text("x"))),
			attr: `id="p"`,
			want: "<p><i>x</i></p>\n",
		},
		{
			name: "inline formatting",
			node: d.Paragraph(d.Text("a "), d.Strong(d.Text("b")), d.Text(" "), d.Emphasis(d.Text("c"))),
			want: "<p>a <strong>b</strong> <i>c</i></p>\n",
		},
		{
			name: "literal emphasis payload",
			node: &d.Node{Kind: d.KindEmphasis, Literal: "<raw>"},
			want: "<i>&lt;raw&gt;</i>",
		},
		{
			name: "unordered list",
			node: d.List(false, d.ListItem(d.Text("one")), d.ListItem(d.Text("two"))),
			want: "<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n",
		},
		{
			name: "ordered list",
			node: d.List(true, d.ListItem(d.Text("one"))),
			want: "<ol>\n<li>one</li>\n</ol>\n",
		},
		{
			name: "link",
			node: d.Link("https://example.com/?a=1&b=2", d.Text("example")),
			want: `<a href="https://example.com/?a=1&amp;b=2">example</a>`,
		},
		{
			name: "image alt is flattened text",
			node: d.Image("logo.png", d.Text("the "), d.Strong(d.Text("logo"))),
			want: `<img src="logo.png" alt="the logo">`,
		},
		{
			name: "quote",
			node: d.Quote(d.Paragraph(d.Text("q"))),
			want: "<blockquote>\n<p>q</p>\n</blockquote>\n",
		},
		{
			name: "code span",
			node: d.CodeSpan("a && b"),
			want: "<code>a &amp;&amp; b</code>",
		},
		{
			name: "void elements",
			node: d.Doc(d.ThematicBreak(), d.BlankLine(), d.Paragraph(d.Text("a"), d.LineBreak(), d.Text("b"))),
			want: "<hr>\n<br>\n<p>a<br>b</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.node, tt.attr)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEscapesOnce(t *testing.T) {
	got, err := Render(d.Paragraph(d.Text(`<a href="x">Tom & 'Jerry'</a>`)), "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "<p>&lt;a href=&#34;x&#34;&gt;Tom &amp; &#39;Jerry&#39;&lt;/a&gt;</p>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if strings.Contains(got, "&amp;amp;") || strings.Contains(got, "&amp;lt;") {
		t.Errorf("text escaped twice: %q", got)
	}
}

func TestRenderFencedCode(t *testing.T) {
	node := d.FencedCode("go", "func main() {\n", "\tprintln(\"<hi>\")\n", "}\n")
	got, err := Render(node, "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "<pre><code class=\"language-go\">func main() {\n\tprintln(&#34;&lt;hi&gt;&#34;)\n}</code></pre>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderFencedCodeWithoutLanguage(t *testing.T) {
	got, err := Render(d.FencedCode("", "a\r\n", "b\r\n"), "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if want := "<pre><code>a\r\nb</code></pre>\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderUnsupportedKind(t *testing.T) {
	doc := d.Doc(
		d.Paragraph(d.Text("fine")),
		d.Quote(&d.Node{Kind: d.KindInvalid, Origin: "HTMLBlock"}),
	)
	_, err := Render(doc, "")
	if !errors.Is(err, ErrUnsupportedNodeKind) {
		t.Fatalf("Render() error = %v, want ErrUnsupportedNodeKind", err)
	}
	if !strings.Contains(err.Error(), "HTMLBlock") {
		t.Errorf("error %q should name the offending kind", err)
	}

	_, err = Render(&d.Node{Kind: d.Kind(42)}, "")
	if !errors.Is(err, ErrUnsupportedNodeKind) {
		t.Errorf("Render(Kind(42)) error = %v, want ErrUnsupportedNodeKind", err)
	}
}
