package options

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/keybindery/keybindery/internal/keystroke"
)

// XML element and attribute names for the .kbxml document.
const (
	rootTag       = "KEY_BINDING_OPTIONS"
	optionTag     = "OPTION"
	nameAttr      = "NAME"
	keystrokeAttr = "KEYSTROKE"
)

// XMLRoot produces the document's XML root element. Entries are emitted
// in sorted order so that exports are deterministic.
func (o *Options) XMLRoot() *etree.Element {
	root := etree.NewElement(rootTag)
	root.CreateAttr(nameAttr, o.name)
	for _, name := range o.ActionNames() {
		opt := root.CreateElement(optionTag)
		opt.CreateAttr(nameAttr, name)
		opt.CreateAttr(keystrokeAttr, o.bindings[name].String())
	}
	return root
}

// FromXMLRoot rebuilds a document from its XML root element.
func FromXMLRoot(root *etree.Element) (*Options, error) {
	if root.Tag != rootTag {
		return nil, fmt.Errorf("unexpected root element %q, want %q", root.Tag, rootTag)
	}

	o := New(root.SelectAttrValue(nameAttr, ""))
	for _, opt := range root.SelectElements(optionTag) {
		name := opt.SelectAttrValue(nameAttr, "")
		if name == "" {
			return nil, fmt.Errorf("option element is missing its %s attribute", nameAttr)
		}
		value := opt.SelectAttrValue(keystrokeAttr, "")
		if value == "" {
			o.SetKeyStroke(name, keystroke.Stroke{})
			continue
		}
		s, err := keystroke.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		o.SetKeyStroke(name, s)
	}
	return o, nil
}

// WriteXML serializes the document as indented XML.
func (o *Options) WriteXML(w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(o.XMLRoot())
	doc.Indent(4)
	_, err := doc.WriteTo(w)
	return err
}

// ReadXML parses an XML document produced by WriteXML.
func ReadXML(r io.Reader) (*Options, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to build XML data: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("unable to build XML data: document has no root element")
	}
	return FromXMLRoot(root)
}
