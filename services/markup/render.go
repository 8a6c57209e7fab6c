package markup

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy        = newPolicy()
	languageClass = regexp.MustCompile(`^language-[A-Za-z0-9_+#.-]{1,20}$`)
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowAttrs("class").Matching(languageClass).OnElements("code")
	return p
}

// Render converts src to sanitized HTML.
func Render(src string) string {
	return policy.Sanitize(HTML(Parse(src)))
}

// HTML serializes a tree without sanitizing it. All text is escaped.
func HTML(n *Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindDocument:
		children(b, n)
	case KindHeading:
		fmt.Fprintf(b, "<h%d>", n.Level)
		children(b, n)
		fmt.Fprintf(b, "</h%d>", n.Level)
	case KindParagraph:
		wrap(b, n, "p")
	case KindList:
		wrap(b, n, "ul")
	case KindListItem:
		wrap(b, n, "li")
	case KindStrong:
		wrap(b, n, "strong")
	case KindEmphasis:
		wrap(b, n, "em")
	case KindCodeBlock:
		if n.Lang != "" {
			fmt.Fprintf(b, `<pre><code class="language-%s">`, html.EscapeString(n.Lang))
		} else {
			b.WriteString("<pre><code>")
		}
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</code></pre>")
	case KindCode:
		b.WriteString("<code>")
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</code>")
	case KindLink:
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(n.Href))
		b.WriteString(`">`)
		children(b, n)
		b.WriteString("</a>")
	case KindLineBreak:
		b.WriteString("<br>")
	case KindText:
		b.WriteString(html.EscapeString(n.Text))
	}
}

func wrap(b *strings.Builder, n *Node, tag string) {
	b.WriteString("<" + tag + ">")
	children(b, n)
	b.WriteString("</" + tag + ">")
}

func children(b *strings.Builder, n *Node) {
	for _, c := range n.Children {
		write(b, c)
	}
}
