package webpage

import (
	"strings"

	"golang.org/x/net/html"
)

// Title returns the text of the first <title> element and whether one exists.
func Title(doc *html.Node) (string, bool) {
	node := findElement(doc, "title")
	if node == nil {
		return "", false
	}
	return strings.TrimSpace(nodeText(node)), true
}

// MetaDescription returns the content of <meta name="description"> and
// whether the tag exists.
func MetaDescription(doc *html.Node) (string, bool) {
	var content string
	var found bool
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" {
			if strings.EqualFold(attr(n, "name"), "description") {
				content = attr(n, "content")
				found = true
				return false
			}
		}
		return true
	})
	return content, found
}

// H1s returns the trimmed text of every <h1> element in document order.
func H1s(doc *html.Node) []string {
	var texts []string
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "h1" {
			texts = append(texts, strings.TrimSpace(nodeText(n)))
			return false // don't descend into the h1 again
		}
		return true
	})
	return texts
}

// WordCount counts whitespace-separated words in the document's visible
// text. Script and style subtrees are excluded.
func WordCount(doc *html.Node) int {
	var sb strings.Builder
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return false
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		return true
	})
	return len(strings.Fields(sb.String()))
}

// walk runs fn over n and its subtree in document order. Returning false
// from fn prunes that subtree.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findElement(n *html.Node, name string) *html.Node {
	var match *html.Node
	walk(n, func(node *html.Node) bool {
		if match != nil {
			return false
		}
		if node.Type == html.ElementNode && node.Data == name {
			match = node
			return false
		}
		return true
	})
	return match
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(node *html.Node) bool {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		return true
	})
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
