package document

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parser turns Markdown source into a document tree.
type Parser struct {
	md goldmark.Markdown
}

// NewParser returns a CommonMark parser. Extensions may add constructs that
// have no node kind; those surface as KindInvalid nodes.
func NewParser(extensions ...goldmark.Extender) *Parser {
	return &Parser{md: goldmark.New(goldmark.WithExtensions(extensions...))}
}

// Parse parses source and converts the goldmark AST into a Node tree.
func (p *Parser) Parse(source []byte) *Node {
	root := p.md.Parser().Parse(text.NewReader(source))
	c := converter{source: source}
	return c.block(root)
}

type converter struct {
	source []byte
}

func (c converter) block(n gmast.Node) *Node {
	switch node := n.(type) {
	case *gmast.Document:
		return &Node{Kind: KindDocument, Children: c.blocks(node)}
	case *gmast.Heading:
		return &Node{Kind: KindHeading, Level: node.Level, Children: c.inlines(node)}
	case *gmast.Paragraph:
		return &Node{Kind: KindParagraph, Children: c.inlines(node)}
	case *gmast.Blockquote:
		return &Node{Kind: KindQuote, Children: c.blocks(node)}
	case *gmast.List:
		out := &Node{Kind: KindList, Ordered: node.IsOrdered()}
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			out.Children = append(out.Children, c.block(child))
		}
		return out
	case *gmast.ListItem:
		out := &Node{Kind: KindListItem}
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			if isDefinitionStub(child) {
				continue
			}
			// Tight items wrap their text in a TextBlock; splice it into the item.
			if tb, ok := child.(*gmast.TextBlock); ok {
				out.Children = append(out.Children, c.inlines(tb)...)
				continue
			}
			out.Children = append(out.Children, c.block(child))
		}
		return out
	case *gmast.TextBlock:
		return &Node{Kind: KindParagraph, Children: c.inlines(node)}
	case *gmast.FencedCodeBlock:
		return &Node{Kind: KindFencedCode, Language: string(node.Language(c.source)), Children: c.lines(node)}
	case *gmast.CodeBlock:
		return &Node{Kind: KindFencedCode, Children: c.lines(node)}
	case *gmast.ThematicBreak:
		return ThematicBreak()
	default:
		return &Node{Kind: KindInvalid, Origin: n.Kind().String()}
	}
}

// blocks converts the block children of n, inserting a blank-line node
// wherever blank source lines separate two emitted blocks.
func (c converter) blocks(n gmast.Node) []*Node {
	var out []*Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if isDefinitionStub(child) {
			continue
		}
		if len(out) > 0 && child.HasBlankPreviousLines() {
			out = append(out, BlankLine())
		}
		out = append(out, c.block(child))
	}
	return out
}

// isDefinitionStub reports whether n is the empty block goldmark leaves
// behind for a paragraph made only of link reference definitions.
func isDefinitionStub(n gmast.Node) bool {
	switch n.(type) {
	case *gmast.TextBlock, *gmast.Paragraph:
		return n.FirstChild() == nil && n.Lines().Len() == 0
	}
	return false
}

func (c converter) inlines(n gmast.Node) []*Node {
	var out []*Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.inline(child)...)
	}
	return out
}

func (c converter) inline(n gmast.Node) []*Node {
	switch node := n.(type) {
	case *gmast.Text:
		value := node.Segment.Value(c.source)
		if !node.IsRaw() {
			value = util.UnescapePunctuations(value)
			value = util.ResolveNumericReferences(value)
			value = util.ResolveEntityNames(value)
		}
		s := string(value)
		if node.SoftLineBreak() {
			s += "\n"
		}
		var out []*Node
		if s != "" {
			out = append(out, Text(s))
		}
		if node.HardLineBreak() {
			out = append(out, LineBreak())
		}
		return out
	case *gmast.String:
		return []*Node{Text(string(node.Value))}
	case *gmast.Emphasis:
		if node.Level >= 2 {
			return []*Node{{Kind: KindStrong, Children: c.inlines(node)}}
		}
		return []*Node{{Kind: KindEmphasis, Children: c.inlines(node)}}
	case *gmast.Link:
		return []*Node{{Kind: KindLink, Destination: string(node.Destination), Children: c.inlines(node)}}
	case *gmast.Image:
		return []*Node{{Kind: KindImage, Destination: string(node.Destination), Children: c.inlines(node)}}
	case *gmast.AutoLink:
		url := string(node.URL(c.source))
		return []*Node{Link(url, Text(string(node.Label(c.source))))}
	case *gmast.CodeSpan:
		return []*Node{CodeSpan(c.codeSpan(node))}
	default:
		return []*Node{{Kind: KindInvalid, Origin: n.Kind().String()}}
	}
}

func (c converter) codeSpan(n *gmast.CodeSpan) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *gmast.Text:
			value := string(t.Segment.Value(c.source))
			if strings.HasSuffix(value, "\n") {
				value = strings.TrimSuffix(value, "\n") + " "
			}
			b.WriteString(value)
		case *gmast.String:
			b.Write(t.Value)
		}
	}
	return b.String()
}

func (c converter) lines(n gmast.Node) []*Node {
	lines := n.Lines()
	out := make([]*Node, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, Text(string(seg.Value(c.source))))
	}
	return out
}
