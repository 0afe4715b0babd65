package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   *Node
	}{
		{
			name:   "heading and paragraph",
			source: "# Title\n\nSome *soft* and **bold** text.\n",
			want: Doc(
				Heading(1, Text("Title")),
				BlankLine(),
				Paragraph(
					Text("Some "),
					Emphasis(Text("soft")),
					Text(" and "),
					Strong(Text("bold")),
					Text(" text."),
				),
			),
		},
		{
			name:   "fenced code keeps lines",
			source: "```go\nfunc main() {\n}\n```\n",
			want:   Doc(FencedCode("go", "func main() {\n", "}\n")),
		},
		{
			name:   "indented code has no language",
			source: "    x := 1\n",
			want:   Doc(FencedCode("", "x := 1\n")),
		},
		{
			name:   "tight list splices text blocks",
			source: "- one\n- two\n",
			want: Doc(List(false,
				ListItem(Text("one")),
				ListItem(Text("two")),
			)),
		},
		{
			name:   "ordered list",
			source: "1. first\n",
			want:   Doc(List(true, ListItem(Text("first")))),
		},
		{
			name:   "link image and code span",
			source: "[go](https://go.dev) ![logo](logo.png) `x < y`\n",
			want: Doc(Paragraph(
				Link("https://go.dev", Text("go")),
				Text(" "),
				Image("logo.png", Text("logo")),
				Text(" "),
				CodeSpan("x < y"),
			)),
		},
		{
			name:   "quote and thematic break",
			source: "> quoted\n\n---\n",
			want: Doc(
				Quote(Paragraph(Text("quoted"))),
				BlankLine(),
				ThematicBreak(),
			),
		},
		{
			name:   "soft and hard line breaks",
			source: "one\ntwo  \nthree\n",
			want: Doc(Paragraph(
				Text("one\n"),
				Text("two"),
				LineBreak(),
				Text("three"),
			)),
		},
		{
			name:   "reference definitions leave no block",
			source: "See [docs][1].\n\n[1]: https://example.com\n",
			want: Doc(Paragraph(
				Text("See "),
				Link("https://example.com", Text("docs")),
				Text("."),
			)),
		},
		{
			name:   "leading reference definitions add no blank line",
			source: "[1]: https://example.com\n\nSee [docs][1].\n",
			want: Doc(Paragraph(
				Text("See "),
				Link("https://example.com", Text("docs")),
				Text("."),
			)),
		},
		{
			name:   "definitions between blocks keep one blank line",
			source: "One.\n\n[1]: https://example.com\n\nTwo.\n",
			want: Doc(
				Paragraph(Text("One.")),
				BlankLine(),
				Paragraph(Text("Two.")),
			),
		},
		{
			name:   "raw html becomes invalid",
			source: "<div>x</div>\n",
			want:   Doc(&Node{Kind: KindInvalid, Origin: "HTMLBlock"}),
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse([]byte(tt.source))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.source, diff)
			}
		})
	}
}

func TestParseResolvesEscapes(t *testing.T) {
	doc := NewParser().Parse([]byte("\\*not emphasis\\* &amp; &#35;\n"))
	if got, want := PlainText(doc), "*not emphasis* & #"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
	for _, child := range doc.Children[0].Children {
		if child.Kind != KindText {
			t.Errorf("unexpected %s node in escaped paragraph", child.Kind)
		}
	}
}

func TestPlainText(t *testing.T) {
	n := Heading(2,
		Text("Use "),
		CodeSpan("go build"),
		Text(" with "),
		Emphasis(Strong(Text("care"))),
	)
	if got, want := PlainText(n), "Use go build with care"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
	if got := PlainText(ThematicBreak()); got != "" {
		t.Errorf("PlainText(break) = %q, want empty", got)
	}
}

func TestKindString(t *testing.T) {
	if got := KindFencedCode.String(); got != "fenced-code" {
		t.Errorf("KindFencedCode.String() = %q", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}
