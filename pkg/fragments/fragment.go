package fragments

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/jaytaylor/html2text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is an ordered run of sibling nodes rendered without a wrapping
// element. A nil *Fragment renders as "".
type Fragment struct {
	nodes []*html.Node
}

// NewFragment groups nodes into a fragment.
func NewFragment(nodes ...*html.Node) *Fragment {
	f := &Fragment{}
	f.Append(nodes...)
	return f
}

// Append adds nodes after the current ones, skipping nils.
func (f *Fragment) Append(nodes ...*html.Node) *Fragment {
	for _, n := range nodes {
		if n != nil {
			f.nodes = append(f.nodes, n)
		}
	}
	return f
}

// Nodes returns the top-level nodes.
func (f *Fragment) Nodes() []*html.Node {
	if f == nil {
		return nil
	}
	return f.nodes
}

// Render writes the serialized nodes to w. Text and attribute values are
// escaped by the renderer.
func (f *Fragment) Render(w io.Writer) error {
	if f == nil {
		return nil
	}
	for _, n := range f.nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// String serializes the fragment.
func (f *Fragment) String() string {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// PlainText renders a text-only version, e.g. for email bodies and exports.
func (f *Fragment) PlainText() (string, error) {
	if f == nil {
		return "", nil
	}
	return html2text.FromString(f.String(), html2text.Options{OmitLinks: true})
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, attr(key, val))
}

// nbsp separates the icon or avatar from the anchor.
func nbsp() *html.Node {
	return text("\u00a0")
}

// trim shortens s to limit runes, appending "..." when it was cut.
func trim(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
