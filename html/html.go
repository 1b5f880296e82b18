/*
Package html creates ropes from the textual content of HTML documents.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"io"

	"github.com/longmathemagician/washline"
	"golang.org/x/net/html"
)

// InnerText creates a rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// Every text node becomes a fragment of its own, thus the fragment
// organization of the resulting rope reflects the hierarchy of the element
// node's descendents. Contents of <script> and <style> elements are skipped.
func InnerText(n *html.Node) (*washline.Rope, error) {
	if n == nil {
		return washline.New(), washline.ErrIllegalArguments
	}
	b := washline.NewBuilder()
	if err := collectText(n, b); err != nil {
		return washline.New(), err
	}
	return b.Rope(), nil
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*washline.Rope, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return washline.New(), err
	}
	b := washline.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return washline.New(), err
		}
	}
	return b.Rope(), nil
}

// collectText walks the node tree with an explicit stack, appending text
// nodes in document order.
func collectText(root *html.Node, b *washline.Builder) error {
	stack := []*html.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.Type {
		case html.TextNode:
			if err := b.AppendFragment(n.Data); err != nil {
				return err
			}
			continue
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				continue
			}
		}
		// push children in reverse, so the first child is popped first
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return nil
}
