package doctree

import (
	"encoding/xml"
	"io"
)

// WriteXML renders the tree as markup text: nodes become elements,
// attributes become element attributes in insertion order. The token
// encoder is used directly because struct-based marshalling cannot
// preserve attribute order. No declaration or indentation is emitted,
// matching the output of the original tool.
func WriteXML(w io.Writer, root *Node) error {
	enc := xml.NewEncoder(w)
	if err := writeElement(enc, root); err != nil {
		return err
	}
	return enc.Flush()
}

func writeElement(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	for _, attr := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: attr.Name},
			Value: attr.Value,
		})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := writeElement(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
