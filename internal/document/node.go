// Package document defines the node tree the manual is rendered from and
// adapts goldmark's Markdown AST into it.
package document

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindInvalid Kind = iota
	KindDocument
	KindHeading
	KindParagraph
	KindEmphasis
	KindStrong
	KindText
	KindList
	KindListItem
	KindLink
	KindImage
	KindQuote
	KindCodeSpan
	KindFencedCode
	KindThematicBreak
	KindLineBreak
	KindBlankLine
)

var kindNames = map[Kind]string{
	KindInvalid:       "invalid",
	KindDocument:      "document",
	KindHeading:       "heading",
	KindParagraph:     "paragraph",
	KindEmphasis:      "emphasis",
	KindStrong:        "strong",
	KindText:          "text",
	KindList:          "list",
	KindListItem:      "list-item",
	KindLink:          "link",
	KindImage:         "image",
	KindQuote:         "quote",
	KindCodeSpan:      "code-span",
	KindFencedCode:    "fenced-code",
	KindThematicBreak: "thematic-break",
	KindLineBreak:     "line-break",
	KindBlankLine:     "blank-line",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one element of a parsed document. A node holds either Children or
// a Literal payload, never both.
type Node struct {
	Kind     Kind
	Children []*Node
	Literal  string

	Level       int    // heading level, 1-based
	Ordered     bool   // list
	Destination string // link and image
	Language    string // fenced code info tag

	// Origin names the parser construct an invalid node came from.
	Origin string
}

// IsLiteral reports whether the node carries a text payload instead of children.
func (n *Node) IsLiteral() bool {
	return len(n.Children) == 0 && n.Literal != ""
}

// Doc returns a document root with the given blocks.
func Doc(children ...*Node) *Node {
	return &Node{Kind: KindDocument, Children: children}
}

// Heading returns a heading of the given level.
func Heading(level int, children ...*Node) *Node {
	return &Node{Kind: KindHeading, Level: level, Children: children}
}

func Paragraph(children ...*Node) *Node {
	return &Node{Kind: KindParagraph, Children: children}
}

func Emphasis(children ...*Node) *Node {
	return &Node{Kind: KindEmphasis, Children: children}
}

func Strong(children ...*Node) *Node {
	return &Node{Kind: KindStrong, Children: children}
}

// Text returns a literal text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Literal: s}
}

func List(ordered bool, items ...*Node) *Node {
	return &Node{Kind: KindList, Ordered: ordered, Children: items}
}

func ListItem(children ...*Node) *Node {
	return &Node{Kind: KindListItem, Children: children}
}

func Link(dest string, children ...*Node) *Node {
	return &Node{Kind: KindLink, Destination: dest, Children: children}
}

func Image(dest string, children ...*Node) *Node {
	return &Node{Kind: KindImage, Destination: dest, Children: children}
}

func Quote(children ...*Node) *Node {
	return &Node{Kind: KindQuote, Children: children}
}

// CodeSpan returns an inline code node with a literal payload.
func CodeSpan(code string) *Node {
	return &Node{Kind: KindCodeSpan, Literal: code}
}

// FencedCode returns a code block whose children are its raw lines, each
// keeping its own line terminator.
func FencedCode(language string, lines ...string) *Node {
	n := &Node{Kind: KindFencedCode, Language: language}
	for _, line := range lines {
		n.Children = append(n.Children, Text(line))
	}
	return n
}

func ThematicBreak() *Node { return &Node{Kind: KindThematicBreak} }

func LineBreak() *Node { return &Node{Kind: KindLineBreak} }

func BlankLine() *Node { return &Node{Kind: KindBlankLine} }
