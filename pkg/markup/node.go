// Package markup parses the small HTML subset accepted in styled messages
// into an immutable node tree.
//
// The tree only keeps what rendering needs: text runs, and elements with
// their tag name, class list, inline style declarations and children.
// Comments, doctypes and any other node kinds are dropped while parsing.
// Images are not part of the tree: FormatImages rewrites them into styled
// placeholder spans before parsing.
package markup

import (
	"strings"

	"github.com/arthur-debert/consolecss/pkg/cssterm"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is either a *Text or an *Element.
type Node interface {
	node()
}

// Text is a run of character data, entities already decoded.
type Text struct {
	Data string
}

// Element is a markup element.
type Element struct {
	// Tag is the lowercase tag name.
	Tag string
	// Classes holds the class attribute tokens, without duplicates.
	Classes []string
	// Style holds the inline style declarations as "property: value".
	Style []string
	// Children holds the child nodes in document order.
	Children []Node
}

func (*Text) node()    {}
func (*Element) node() {}

// Parse parses markup as the content of a <div> and returns its top-level
// nodes. Malformed markup is repaired the way an HTML parser would, it is
// never rejected.
func Parse(markup string) []Node {
	if markup == "" {
		return nil
	}

	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		// reading from a strings.Reader cannot fail
		return []Node{&Text{Data: markup}}
	}

	nodes := make([]Node, 0, len(parsed))
	for _, n := range parsed {
		if converted := convert(n); converted != nil {
			nodes = append(nodes, converted)
		}
	}
	return nodes
}

func convert(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return &Text{Data: n.Data}
	case html.ElementNode:
		el := &Element{Tag: strings.ToLower(n.Data)}
		for _, a := range n.Attr {
			if a.Namespace != "" {
				continue
			}
			switch strings.ToLower(a.Key) {
			case "class":
				el.Classes = classList(a.Val)
			case "style":
				el.Style = cssterm.Normalize(a.Val)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		return nil
	}
}

func classList(value string) []string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil
	}
	classes := fields[:0]
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		classes = append(classes, f)
	}
	return classes
}
