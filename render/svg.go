// Package render draws syntactic trees as SVG and writes derivation
// output files: one diagram per pipeline snapshot plus the generated
// word list.
package render

import (
	"fmt"
	"strings"

	"github.com/romiHill/reduplication-in-dm/syntax"
)

// TreeSVGOptions controls tree diagram rendering.
type TreeSVGOptions struct {
	LeafSpacingX  float64
	LevelSpacingY float64
	Padding       float64
	FontSize      float64
	PhonFontSize  float64
}

// DefaultTreeSVGOptions returns sensible defaults.
func DefaultTreeSVGOptions() *TreeSVGOptions {
	return &TreeSVGOptions{
		LeafSpacingX:  80,
		LevelSpacingY: 60,
		Padding:       40,
		FontSize:      14,
		PhonFontSize:  12,
	}
}

// layout holds the computed position of one node.
type layout struct {
	node     *syntax.Node
	x, y     float64
	children []*layout
}

// TreeSVG renders the tree as an SVG diagram: category labels at the
// nodes, connecting lines between mother and daughters, and the
// inserted exponent under each terminal (a null exponent renders as ∅).
func TreeSVG(root *syntax.Node, opts *TreeSVGOptions) string {
	if opts == nil {
		opts = DefaultTreeSVGOptions()
	}

	nextLeaf := 0.0
	var place func(n *syntax.Node, depth int) *layout
	place = func(n *syntax.Node, depth int) *layout {
		l := &layout{node: n, y: opts.Padding + float64(depth)*opts.LevelSpacingY}
		if n.Terminal() {
			l.x = opts.Padding + nextLeaf*opts.LeafSpacingX
			nextLeaf++
			return l
		}
		sum := 0.0
		for _, c := range n.Children {
			cl := place(c, depth+1)
			l.children = append(l.children, cl)
			sum += cl.x
		}
		l.x = sum / float64(len(l.children))
		return l
	}
	top := place(root, 0)

	width := 2*opts.Padding + (nextLeaf-1)*opts.LeafSpacingX
	if width < 2*opts.Padding {
		width = 2 * opts.Padding
	}
	height := 2*opts.Padding + float64(root.Depth())*opts.LevelSpacingY + opts.PhonFontSize + 8

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f">`, width, height))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<rect width="%.0f" height="%.0f" fill="#ffffff"/>`, width, height))
	sb.WriteString("\n")

	var draw func(l *layout)
	draw = func(l *layout) {
		for _, c := range l.children {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="1"/>`,
				l.x, l.y+4, c.x, c.y-float64(opts.FontSize)))
			sb.WriteString("\n")
			draw(c)
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial, sans-serif" font-size="%.0f">%s</text>`,
			l.x, l.y, opts.FontSize, escapeXML(label(l.node))))
		sb.WriteString("\n")
		if l.node.Terminal() && l.node.Inserted {
			phon := l.node.Phon
			if phon == "" {
				phon = "∅"
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial, sans-serif" font-size="%.0f" font-style="italic" fill="#555">%s</text>`,
				l.x, l.y+opts.PhonFontSize+6, opts.PhonFontSize, escapeXML(phon)))
			sb.WriteString("\n")
		}
	}
	draw(top)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func label(n *syntax.Node) string {
	if len(n.Features) == 0 {
		return n.Label
	}
	return n.Label + "[" + strings.Join(n.Features, ";") + "]"
}

// escapeXML escapes special XML characters in text.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
