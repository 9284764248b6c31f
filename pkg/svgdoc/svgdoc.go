// Package svgdoc is a minimal SVG document model.
//
// Documents are decoded with raw XML tokens, so namespace prefixes are kept
// exactly as written ("inkscape:label", "sodipodi:namedview") and survive a
// read-modify-write cycle. Only elements, character data and comments are
// retained; processing instructions and directives are dropped and the XML
// declaration is rewritten on output.
package svgdoc

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/kalamapona/pkg/errors"
)

// Namespace URIs used by the assets this tool reads and writes.
const (
	NamespaceSVG      = "http://www.w3.org/2000/svg"
	NamespaceInkscape = "http://www.inkscape.org/namespaces/inkscape"
	NamespaceSodipodi = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
)

// Kind distinguishes node types.
type Kind int

const (
	ElementNode Kind = iota
	TextNode
	CommentNode
)

// Node is an element, text or comment in a document tree.
type Node struct {
	Kind     Kind
	Name     xml.Name   // element name, prefix in Space
	Attr     []xml.Attr // attributes in document order, prefix in Name.Space
	Children []*Node
	Data     string // text or comment content
}

// NewElement creates an element node. A name of the form "prefix:local" is
// split into Space and Local.
func NewElement(name string, attrs ...xml.Attr) *Node {
	return &Node{Kind: ElementNode, Name: qname(name), Attr: attrs}
}

// Attribute builds an xml.Attr from a possibly prefixed name.
func Attribute(name, value string) xml.Attr {
	return xml.Attr{Name: qname(name), Value: value}
}

func qname(s string) xml.Name {
	if prefix, local, ok := strings.Cut(s, ":"); ok {
		return xml.Name{Space: prefix, Local: local}
	}
	return xml.Name{Local: s}
}

// Parse decodes an XML document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidAsset, err, "malformed XML")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Kind: ElementNode, Name: t.Name, Attr: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New(errors.ErrCodeInvalidAsset, "multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeInvalidAsset, "unexpected end element </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Node{Kind: TextNode, Data: string(t)})
			}
		case xml.Comment:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Node{Kind: CommentNode, Data: string(t)})
			}
		}
	}

	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidAsset, "document has no root element")
	}
	if len(stack) != 0 {
		return nil, errors.New(errors.ErrCodeInvalidAsset, "unclosed element <%s>", stack[len(stack)-1].Name.Local)
	}
	return root, nil
}

// ParseFile reads and decodes the document at path. A missing file is
// reported with ErrCodeFileNotFound.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	root, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidAsset, err, "parse %s", path)
	}
	return root, nil
}

// Is reports whether n is an element with the given local name, ignoring
// any namespace prefix.
func (n *Node) Is(local string) bool {
	return n != nil && n.Kind == ElementNode && n.Name.Local == local
}

// Get returns the value of the attribute with the given (possibly prefixed)
// name and whether it was present.
func (n *Node) Get(name string) (string, bool) {
	want := qname(name)
	for _, a := range n.Attr {
		if a.Name == want {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the attribute value or "" when absent.
func (n *Node) AttrValue(name string) string {
	v, _ := n.Get(name)
	return v
}

// Set replaces or appends an attribute.
func (n *Node) Set(name, value string) {
	want := qname(name)
	for i := range n.Attr {
		if n.Attr[i].Name == want {
			n.Attr[i].Value = value
			return
		}
	}
	n.Attr = append(n.Attr, xml.Attr{Name: want, Value: value})
}

// Elements returns the element children of n.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Append adds child elements to n.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Walk visits n and its descendants in document order, passing the chain of
// element ancestors (outermost first, excluding the node itself). Returning
// false from fn skips the node's subtree.
func (n *Node) Walk(fn func(node *Node, ancestors []*Node) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(ancestors []*Node, fn func(*Node, []*Node) bool) {
	if !fn(n, ancestors) {
		return
	}
	if n.Kind != ElementNode {
		return
	}
	next := append(ancestors[:len(ancestors):len(ancestors)], n)
	for _, c := range n.Children {
		c.walk(next, fn)
	}
}

// FindAll returns every descendant element (including n) with the given
// local name, in document order.
func (n *Node) FindAll(local string) []*Node {
	var out []*Node
	n.Walk(func(c *Node, _ []*Node) bool {
		if c.Is(local) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first descendant element matching pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node, _ []*Node) bool {
		if found != nil {
			return false
		}
		if c.Kind == ElementNode && pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	c := &Node{
		Kind: n.Kind,
		Name: n.Name,
		Attr: append([]xml.Attr(nil), n.Attr...),
		Data: n.Data,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}
