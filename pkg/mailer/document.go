package mailer

// NodeKind identifies the type of a document node.
type NodeKind uint8

const (
	NodeSection NodeKind = iota + 1
	NodeHeading
	NodeParagraph
	NodeSpan
	NodeStrong
	NodeImage
	NodeLink
	NodeButton
	NodeDivider
)

var nodeKindNames = map[NodeKind]string{
	NodeSection:   "section",
	NodeHeading:   "heading",
	NodeParagraph: "paragraph",
	NodeSpan:      "span",
	NodeStrong:    "strong",
	NodeImage:     "image",
	NodeLink:      "link",
	NodeButton:    "button",
	NodeDivider:   "divider",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is a single element of a rendered document tree.
// Text content and URLs are plain strings; they are escaped on output and
// never interpreted as markup.
type Node struct {
	Text     string // Heading, span, strong, link and button label
	URL      string // Image source, link or button target
	Alt      string // Image alternative text
	Children []Node // Section blocks or paragraph inlines
	Level    int    // Heading level (1-3)
	Width    int    // Image width in pixels, 0 if unset
	Height   int    // Image height in pixels, 0 if unset
	Kind     NodeKind
}

// Section groups block nodes.
func Section(children ...Node) Node {
	return Node{Kind: NodeSection, Children: children}
}

// Heading creates a heading of the given level, clamped to 1-3.
func Heading(level int, text string) Node {
	level = max(1, min(level, 3))
	return Node{Kind: NodeHeading, Level: level, Text: text}
}

// Paragraph creates a block of inline nodes.
func Paragraph(inlines ...Node) Node {
	return Node{Kind: NodeParagraph, Children: inlines}
}

// Text creates a paragraph holding a single plain text run.
func Text(text string) Node {
	return Paragraph(Span(text))
}

// Span creates a plain text run.
func Span(text string) Node {
	return Node{Kind: NodeSpan, Text: text}
}

// Strong creates an emphasized text run.
func Strong(text string) Node {
	return Node{Kind: NodeStrong, Text: text}
}

// Image creates an image node.
func Image(src, alt string, width, height int) Node {
	return Node{Kind: NodeImage, URL: src, Alt: alt, Width: width, Height: height}
}

// Link creates a hyperlink. It may be used inline or as a block.
func Link(href, label string) Node {
	return Node{Kind: NodeLink, URL: href, Text: label}
}

// Button creates a call-to-action link styled as a button.
func Button(href, label string) Node {
	return Node{Kind: NodeButton, URL: href, Text: label}
}

// Divider creates a horizontal rule.
func Divider() Node {
	return Node{Kind: NodeDivider}
}

func (n Node) clone() Node {
	if n.Children == nil {
		return n
	}
	children := make([]Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.clone()
	}
	n.Children = children
	return n
}

// Document is an immutable rendered email: a node tree plus the preview line
// shown by mail clients before the message is opened.
// The zero value is an empty document.
type Document struct {
	kind    string
	preview string
	nodes   []Node
}

// NewDocument builds a document. The node tree is copied, so later changes
// to the passed slice do not affect the document.
func NewDocument(kind, preview string, nodes ...Node) Document {
	return Document{
		kind:    kind,
		preview: preview,
		nodes:   cloneNodes(nodes),
	}
}

// Kind returns the template kind that produced the document.
func (d Document) Kind() string { return d.kind }

// Preview returns the single-line preview text.
func (d Document) Preview() string { return d.preview }

// Nodes returns a deep copy of the top-level nodes.
func (d Document) Nodes() []Node { return cloneNodes(d.nodes) }

// Walk visits every node depth-first in document order.
// Returning false from fn skips the node's children.
// fn receives copies, so it cannot change the document.
func (d Document) Walk(fn func(Node) bool) {
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if fn(n.clone()) {
				walk(n.Children)
			}
		}
	}
	walk(d.nodes)
}

// Images returns all image nodes in document order.
func (d Document) Images() []Node {
	var images []Node
	d.Walk(func(n Node) bool {
		if n.Kind == NodeImage {
			images = append(images, n)
		}
		return true
	})
	return images
}

// IsEmpty reports whether the document has no content nodes.
func (d Document) IsEmpty() bool { return len(d.nodes) == 0 }

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.clone()
	}
	return out
}
