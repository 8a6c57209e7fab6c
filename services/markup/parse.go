package markup

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const fence = "```"

var (
	headingPattern = regexp.MustCompile(`^(#{1,3})\s+(.+?)\s*#*\s*$`)
	bulletPattern  = regexp.MustCompile(`^\s*[*-]\s+(.*)$`)
	linkPattern    = regexp.MustCompile(`^\[([^\]]+)\]\(([^)\s]+)\)`)
	blankLines     = regexp.MustCompile(`\n[ \t]*\n`)
	langPattern    = regexp.MustCompile(`^[A-Za-z0-9_+#.-]{1,20}$`)
)

// Parse builds the node tree for src. Code fences are cut out first, then
// headings, lists and paragraphs; inline emphasis is applied last and never
// inside code.
func Parse(src string) *Node {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	doc := &Node{Kind: KindDocument}

	for src != "" {
		start := strings.Index(src, fence)
		if start < 0 {
			doc.append(parseBlocks(src)...)
			break
		}
		doc.append(parseBlocks(src[:start])...)

		rest := src[start+len(fence):]
		end := strings.Index(rest, fence)
		var body string
		if end < 0 {
			body, src = rest, ""
		} else {
			body, src = rest[:end], rest[end+len(fence):]
		}
		doc.append(codeBlock(body))
	}
	return doc
}

// codeBlock splits an optional language hint off the first line.
func codeBlock(body string) *Node {
	n := &Node{Kind: KindCodeBlock}
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		first := strings.TrimSpace(body[:nl])
		if first == "" || langPattern.MatchString(first) {
			n.Lang = first
			body = body[nl+1:]
		}
	}
	n.Text = strings.TrimRight(body, "\n")
	return n
}

// parseBlocks handles text outside code fences.
func parseBlocks(src string) []*Node {
	var blocks []*Node
	for _, chunk := range blankLines.Split(src, -1) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		blocks = append(blocks, parseChunk(chunk)...)
	}
	return blocks
}

// parseChunk groups the lines of one blank-line separated chunk into
// headings, bullet lists and paragraphs.
func parseChunk(chunk string) []*Node {
	var out []*Node
	var para, list *Node

	flush := func() {
		if para != nil {
			out = append(out, para)
			para = nil
		}
		if list != nil {
			out = append(out, list)
			list = nil
		}
	}

	for _, line := range strings.Split(chunk, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
			flush()
			out = append(out, (&Node{Kind: KindHeading, Level: len(m[1])}).append(parseInline(m[2])...))
			continue
		}

		if m := bulletPattern.FindStringSubmatch(line); m != nil && !strings.HasPrefix(trimmed, "**") {
			if para != nil {
				out = append(out, para)
				para = nil
			}
			if list == nil {
				list = &Node{Kind: KindList}
			}
			list.append((&Node{Kind: KindListItem}).append(parseInline(strings.TrimSpace(m[1]))...))
			continue
		}

		if list != nil {
			out = append(out, list)
			list = nil
		}
		if para == nil {
			para = &Node{Kind: KindParagraph}
		} else {
			para.append(&Node{Kind: KindLineBreak})
		}
		para.append(parseInline(trimmed)...)
	}
	flush()
	return out
}

// parseInline scans left to right for code spans, links, strong and
// emphasis. Unmatched delimiters stay literal.
func parseInline(s string) []*Node {
	var out []*Node
	var buf strings.Builder

	emit := func(n *Node) {
		if buf.Len() > 0 {
			out = append(out, text(buf.String()))
			buf.Reset()
		}
		out = append(out, n)
	}

	for i := 0; i < len(s); {
		switch s[i] {
		case '`':
			if end := strings.IndexByte(s[i+1:], '`'); end > 0 {
				emit(&Node{Kind: KindCode, Text: s[i+1 : i+1+end]})
				i += end + 2
				continue
			}
		case '[':
			if m := linkPattern.FindStringSubmatch(s[i:]); m != nil {
				if href, ok := safeHref(m[2]); ok {
					emit((&Node{Kind: KindLink, Href: href}).append(parseInline(m[1])...))
				} else {
					buf.WriteString(m[1])
				}
				i += len(m[0])
				continue
			}
		case '*', '_':
			delim := s[i : i+1]
			if strings.HasPrefix(s[i:], delim+delim) {
				if inner, n, ok := delimited(s, i, delim+delim); ok {
					emit((&Node{Kind: KindStrong}).append(parseInline(inner)...))
					i += n
					continue
				}
			}
			if inner, n, ok := delimited(s, i, delim); ok {
				emit((&Node{Kind: KindEmphasis}).append(parseInline(inner)...))
				i += n
				continue
			}
		}
		buf.WriteByte(s[i])
		i++
	}
	if buf.Len() > 0 {
		out = append(out, text(buf.String()))
	}
	return out
}

// delimited finds the span opened by delim at s[i]. It returns the inner
// text and the total length consumed. Underscores only delimit at word
// boundaries so snake_case identifiers survive.
func delimited(s string, i int, delim string) (string, int, bool) {
	open := i + len(delim)
	if open >= len(s) || s[open] == ' ' {
		return "", 0, false
	}
	if delim[0] == '_' && i > 0 && isWordByte(s, i-1) {
		return "", 0, false
	}

	for j := open; j <= len(s)-len(delim); j++ {
		if s[j] == '`' {
			// Skip code spans so their delimiters are never matched.
			if end := strings.IndexByte(s[j+1:], '`'); end >= 0 {
				j += end + 1
				continue
			}
		}
		if !strings.HasPrefix(s[j:], delim) || j == open || s[j-1] == ' ' {
			continue
		}
		// A single '*' must not close on the first half of '**'.
		if len(delim) == 1 && j+1 < len(s) && s[j+1] == delim[0] {
			j++
			continue
		}
		after := j + len(delim)
		if delim[0] == '_' && after < len(s) && isWordByte(s, after) {
			continue
		}
		return s[open:j], after - i, true
	}
	return "", 0, false
}

func isWordByte(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// safeHref accepts absolute http(s) and mailto targets only.
func safeHref(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return "", false
		}
	case "mailto":
	default:
		return "", false
	}
	return u.String(), true
}
