// Package enrich turns raw crawl artifacts into enriched, scored items:
// text extraction, OCR, language detection, fraud signals, WHOIS age, and
// perceptual image hashes.
package enrich

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
	multiSpacePattern   = regexp.MustCompile(`[ \t]{2,}`)
)

// Extracted is the readable content of an HTML document.
type Extracted struct {
	Title string
	Text  string
}

// skippedElements never contribute visible text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
}

// ExtractHTML parses an HTML document and returns its title and visible
// text with whitespace collapsed. Parse errors only occur on reader
// failures; malformed markup still yields a best-effort tree.
func ExtractHTML(r io.Reader) (Extracted, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Extracted{}, err
	}

	var out Extracted
	var sb strings.Builder
	collectText(doc, &sb, &out.Title, 0)
	out.Text = cleanText(sb.String())
	out.Title = strings.TrimSpace(out.Title)
	return out, nil
}

func collectText(n *html.Node, sb *strings.Builder, title *string, depth int) {
	if depth > 50 {
		return
	}

	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}
		if n.Data == "title" {
			if *title == "" {
				var tb strings.Builder
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.TextNode {
						tb.WriteString(c.Data)
					}
				}
				*title = tb.String()
			}
			return
		}
		switch n.Data {
		case "p", "div", "br", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb, title, depth+1)
	}
}

func cleanText(s string) string {
	s = multiSpacePattern.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = multiNewlinePattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
