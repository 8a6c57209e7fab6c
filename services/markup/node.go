// Package markup converts the small markdown subset produced by the research
// service into a sanitized HTML fragment. The transformation is one-way.
package markup

// Kind identifies a node in the parsed tree.
type Kind int

const (
	KindDocument Kind = iota
	KindHeading
	KindParagraph
	KindCodeBlock
	KindList
	KindListItem
	KindText
	KindStrong
	KindEmphasis
	KindCode
	KindLink
	KindLineBreak
)

var kindNames = map[Kind]string{
	KindDocument:  "document",
	KindHeading:   "heading",
	KindParagraph: "paragraph",
	KindCodeBlock: "code_block",
	KindList:      "list",
	KindListItem:  "list_item",
	KindText:      "text",
	KindStrong:    "strong",
	KindEmphasis:  "emphasis",
	KindCode:      "code",
	KindLink:      "link",
	KindLineBreak: "line_break",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is an element of the parsed tree. Text holds literal content for
// text, code and code block nodes; it is never interpreted as markup.
type Node struct {
	Kind     Kind
	Level    int    // heading level, 1-3
	Text     string // literal text
	Lang     string // code block language hint
	Href     string // link target
	Children []*Node
}

func (n *Node) append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}
