package mailer

import "strings"

// Text renders the plain-text alternative of the document.
// Images are omitted; links and buttons keep their target in parentheses.
func (d Document) Text() string {
	var b strings.Builder
	for _, n := range d.nodes {
		writeTextBlock(&b, n)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeTextBlock(b *strings.Builder, n Node) {
	switch n.Kind {
	case NodeSection:
		for _, c := range n.Children {
			writeTextBlock(b, c)
		}
	case NodeHeading:
		b.WriteString(n.Text)
		b.WriteString("\n\n")
	case NodeParagraph:
		for _, c := range n.Children {
			writeTextInline(b, c)
		}
		b.WriteString("\n\n")
	case NodeSpan, NodeStrong, NodeLink, NodeButton:
		writeTextInline(b, n)
		b.WriteString("\n\n")
	case NodeDivider:
		b.WriteString("---\n\n")
	}
}

func writeTextInline(b *strings.Builder, n Node) {
	switch n.Kind {
	case NodeSpan, NodeStrong:
		b.WriteString(n.Text)
	case NodeLink, NodeButton:
		b.WriteString(n.Text)
		if n.URL != "" {
			b.WriteString(" (")
			b.WriteString(n.URL)
			b.WriteString(")")
		}
	}
}
