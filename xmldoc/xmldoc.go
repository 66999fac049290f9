// Package xmldoc reads workflow exports encoded as XML.
package xmldoc

import (
	"errors"
	"strings"

	"github.com/beevik/etree"

	"github.com/meikuraledutech/wfgraph"
)

// Document implements wfgraph.Document over an etree document.
type Document struct {
	doc *etree.Document
}

// Decode parses data. Malformed input, or input without a root element,
// returns a *wfgraph.DecodeError.
func Decode(source string, data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &wfgraph.DecodeError{Source: source, Err: err}
	}
	if doc.Root() == nil {
		return nil, &wfgraph.DecodeError{Source: source, Err: errors.New("no root element")}
	}
	return &Document{doc: doc}, nil
}

// Records returns every element named tag, at any depth, in document order.
func (d *Document) Records(tag string) []wfgraph.Record {
	elems := d.doc.FindElements("//" + tag)
	out := make([]wfgraph.Record, 0, len(elems))
	for _, e := range elems {
		out = append(out, record{e})
	}
	return out
}

type record struct {
	e *etree.Element
}

func (r record) child(tag string) *etree.Element {
	return r.e.FindElement(".//" + tag)
}

func (r record) ChildText(tag string) string {
	c := r.child(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text())
}

func (r record) ChildAttr(tag, attr string) string {
	c := r.child(tag)
	if c == nil {
		return ""
	}
	return c.SelectAttrValue(attr, "")
}
