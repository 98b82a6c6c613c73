package aocclient

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/aocrun/puzzle"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseExample scrapes a puzzle page. The example data is the first <pre>
// block of part one; each part's expected answer is the last emphasized
// code span in its description, which is where the puzzle text states the
// example's result. Part two's data is its own first <pre> block, if any.
func ParseExample(r io.Reader) (*puzzle.ExampleResult, error) {
	ex, _, err := parsePage(r)
	return ex, err
}

// parsePage also reports how many part descriptions the page contained.
func parsePage(r io.Reader) (*puzzle.ExampleResult, int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", puzzle.ErrNoExample, err)
	}

	articles := findAll(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Article && hasClass(n, "day-desc")
	})
	if len(articles) == 0 {
		return nil, 0, fmt.Errorf("%w: no puzzle description on page", puzzle.ErrNoExample)
	}

	data, ok := firstPre(articles[0])
	if !ok {
		return nil, len(articles), fmt.Errorf("%w: part one has no example block", puzzle.ErrNoExample)
	}

	ex := &puzzle.ExampleResult{
		Data:        data,
		Part1Answer: lastAnswer(articles[0]),
	}
	if len(articles) > 1 {
		ex.Part2Answer = lastAnswer(articles[1])
		ex.Part2Data, _ = firstPre(articles[1])
	}
	return ex, len(articles), nil
}

func firstPre(article *html.Node) (string, bool) {
	pres := findAll(article, func(n *html.Node) bool { return n.DataAtom == atom.Pre })
	if len(pres) == 0 {
		return "", false
	}
	return textContent(pres[0]), true
}

// lastAnswer finds the last <code><em>..</em></code> or <em><code>..</code></em>
// outside example blocks.
func lastAnswer(article *html.Node) string {
	spans := findAll(article, func(n *html.Node) bool {
		if n.Parent == nil || inside(n, atom.Pre) {
			return false
		}
		return (n.DataAtom == atom.Em && n.Parent.DataAtom == atom.Code) ||
			(n.DataAtom == atom.Code && n.Parent.DataAtom == atom.Em)
	})
	if len(spans) == 0 {
		return ""
	}
	return strings.TrimSpace(textContent(spans[len(spans)-1]))
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func inside(n *html.Node, a atom.Atom) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.DataAtom == a {
			return true
		}
	}
	return false
}
