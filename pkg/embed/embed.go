// Package embed converts pasted social-post markup or bare URLs into the
// structured fields of a post-card item.
//
// Parse is a pure function with no network access: avatar references are
// derived URIs, never fetched here. It never fails — malformed or
// unrecognized input degrades to a result carrying only the trimmed input
// as the post text.
package embed

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/framecraft/framecraft/pkg/item"
)

// avatarBase is the service used to derive an avatar URI from a handle.
const avatarBase = "https://unavatar.io/twitter/"

// attributionPattern picks the author and handle out of the blockquote's
// attribution line: an em-dash or hyphen, a name, and a parenthesized
// @handle, e.g. "— Jane Doe (@jane)".
var attributionPattern = regexp.MustCompile(`[—-]\s*([^(@]+)\s*\(@([^)]+)\)`)

// Result holds the fields extracted from one embed input. Text is always
// set; every other field stays empty unless the markup carried it.
type Result struct {
	Text     string
	Author   string
	Handle   string
	DateText string
	Theme    item.Theme
	Avatar   string
}

// Post converts the result into a post-card payload.
func (r Result) Post() item.Post {
	return item.Post{
		Text:     r.Text,
		Author:   r.Author,
		Handle:   r.Handle,
		DateText: r.DateText,
		Theme:    r.Theme,
		Avatar:   r.Avatar,
	}
}

// Parse extracts post-card fields from pasted input.
//
// Input starting with a markup-opening character is parsed as HTML and
// searched for a blockquote (a twitter-tweet classed one wins over a
// plain one). The card text is the first paragraph's text, falling back
// to the whole block's text, falling back to the raw input. Author and
// handle come from the attribution line, the date from the last anchor,
// the theme from a data-theme="dark" marker (light otherwise), and the
// avatar is derived from the handle.
//
// Anything else — a bare URL, plain text, markup without a blockquote —
// yields just the trimmed input as text.
func Parse(input string) Result {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "<") {
		return Result{Text: trimmed}
	}

	doc, err := html.Parse(strings.NewReader(trimmed))
	if err != nil {
		return Result{Text: trimmed}
	}

	block := findBlockquote(doc)
	if block == nil {
		return Result{Text: trimmed}
	}

	res := Result{Theme: item.ThemeLight}

	res.Text = strings.TrimSpace(collectText(firstParagraph(block)))
	if res.Text == "" {
		res.Text = strings.TrimSpace(collectText(block))
	}
	if res.Text == "" {
		res.Text = trimmed
	}

	if m := attributionPattern.FindStringSubmatch(collectText(block)); m != nil {
		res.Author = strings.TrimSpace(m[1])
		res.Handle = "@" + strings.TrimSpace(m[2])
	}

	if a := lastAnchor(block); a != nil {
		res.DateText = strings.TrimSpace(collectText(a))
	}

	if attr(block, "data-theme") == "dark" {
		res.Theme = item.ThemeDark
	}

	if res.Handle != "" {
		res.Avatar = avatarBase + url.PathEscape(strings.TrimPrefix(res.Handle, "@"))
	}

	return res
}

// findBlockquote returns the first twitter-tweet classed blockquote in the
// document, or the first blockquote of any class if none is marked.
func findBlockquote(doc *html.Node) *html.Node {
	var first, tweet *html.Node
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Blockquote {
			return
		}
		if first == nil {
			first = n
		}
		if tweet == nil && hasClass(n, "twitter-tweet") {
			tweet = n
		}
	})
	if tweet != nil {
		return tweet
	}
	return first
}

// firstParagraph returns the first <p> descendant of n, or nil.
func firstParagraph(n *html.Node) *html.Node {
	var p *html.Node
	walk(n, func(c *html.Node) {
		if p == nil && c.Type == html.ElementNode && c.DataAtom == atom.P {
			p = c
		}
	})
	return p
}

// lastAnchor returns the last <a> descendant of n, or nil.
func lastAnchor(n *html.Node) *html.Node {
	var a *html.Node
	walk(n, func(c *html.Node) {
		if c.Type == html.ElementNode && c.DataAtom == atom.A {
			a = c
		}
	})
	return a
}

// collectText concatenates all text nodes under n. Returns "" for nil.
func collectText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
