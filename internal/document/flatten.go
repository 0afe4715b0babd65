package document

import "strings"

// PlainText concatenates every literal payload below n, ignoring markup.
// It is used for heading anchors, section titles and image alt text.
func PlainText(n *Node) string {
	var b strings.Builder
	flatten(&b, n)
	return b.String()
}

func flatten(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.IsLiteral() {
		b.WriteString(n.Literal)
		return
	}
	for _, child := range n.Children {
		flatten(b, child)
	}
}
