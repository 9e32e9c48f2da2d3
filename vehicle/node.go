package vehicle

import "encoding/xml"

// Node is a generic, schema-agnostic XML element: round-trips any element
// it doesn't specifically care about unchanged, while letting callers walk
// and rewrite the attributes and children they do care about.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr overwrites the named attribute's value, or appends it if absent.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name.Local == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Find returns every descendant (including n itself) whose tag matches
// name, depth-first.
func (n *Node) Find(name string) []*Node {
	var out []*Node
	if n.XMLName.Local == name {
		out = append(out, n)
	}
	for i := range n.Children {
		out = append(out, n.Children[i].Find(name)...)
	}
	return out
}

// FindChildren returns n's direct children matching name.
func (n *Node) FindChildren(name string) []*Node {
	var out []*Node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}
