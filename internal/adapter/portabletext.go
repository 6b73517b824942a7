package adapter

import (
	"strings"

	"appliance-site/internal/domain/sanity"
)

const blockType = "block"

// PlainText flattens portable text: the spans of each "block" node are concatenated in
// order and blocks are separated by a blank line. Other node types are dropped.
func PlainText(nodes []sanity.PortableTextNode) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != blockType {
			continue
		}
		var b strings.Builder
		for _, span := range n.Children {
			b.WriteString(span.Text)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

// Markdown is PlainText with heading styles and list items kept, for bodies that are
// rendered through the markdown pipeline.
func Markdown(nodes []sanity.PortableTextNode) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != blockType {
			continue
		}
		var b strings.Builder
		switch {
		case n.ListItem == "number":
			b.WriteString("1. ")
		case n.ListItem != "":
			b.WriteString("- ")
		case len(n.Style) == 2 && n.Style[0] == 'h' && n.Style[1] >= '1' && n.Style[1] <= '6':
			b.WriteString(strings.Repeat("#", int(n.Style[1]-'0')) + " ")
		case n.Style == "blockquote":
			b.WriteString("> ")
		}
		for _, span := range n.Children {
			b.WriteString(span.Text)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}
