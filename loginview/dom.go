package loginview

import (
	"html"
	"io"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// DOM is a FormState backed by a parsed HTML document.
type DOM struct {
	doc *goquery.Document
}

func ParseDOM(r io.Reader) (*DOM, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &DOM{doc: doc}, nil
}

// Render writes the document, doctype included.
func (d *DOM) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := xhtml.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

func (d *DOM) Find(sel string) *goquery.Selection {
	return d.doc.Find(sel)
}

func (d *DOM) Value(sel string) (string, bool) {
	s := d.doc.Find(sel).First()
	if s.Length() == 0 {
		return "", false
	}
	v, _ := s.Attr("value")
	return v, true
}

func (d *DOM) Values(sel string) []string {
	var vals []string
	d.doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("value")
		vals = append(vals, v)
	})
	return vals
}

func (d *DOM) SetValue(sel, val string) {
	d.doc.Find(sel).SetAttr("value", val)
}

func (d *DOM) Attr(sel, name string) (string, bool) {
	return d.doc.Find(sel).First().Attr(name)
}

func (d *DOM) SetAttr(sel, name, val string) {
	d.doc.Find(sel).SetAttr(name, val)
}

func (d *DOM) RemoveAttr(sel, name string) {
	d.doc.Find(sel).RemoveAttr(name)
}

func (d *DOM) Remove(sel string) {
	d.doc.Find(sel).Remove()
}

func (d *DOM) Visible(sel string) bool {
	s := d.doc.Find(sel).First()
	if s.Length() == 0 {
		return false
	}
	_, hidden := s.Attr("hidden")
	return !hidden
}

func (d *DOM) SetVisible(sel string, visible bool) {
	if visible {
		d.doc.Find(sel).RemoveAttr("hidden")
	} else {
		d.doc.Find(sel).SetAttr("hidden", "")
	}
}

func (d *DOM) HasClass(sel, class string) bool {
	return d.doc.Find(sel).First().HasClass(class)
}

func (d *DOM) AddClass(sel, class string) {
	d.doc.Find(sel).AddClass(class)
}

func (d *DOM) RemoveClass(sel, class string) {
	d.doc.Find(sel).RemoveClass(class)
}

func (d *DOM) Text(sel string) string {
	return d.doc.Find(sel).First().Text()
}

func (d *DOM) SetText(sel, text string) {
	d.doc.Find(sel).SetText(text)
}

// AppendParagraph appends text as a new paragraph; text is never parsed as
// markup.
func (d *DOM) AppendParagraph(sel, class, text string) {
	d.doc.Find(sel).AppendHtml(`<p class="` + html.EscapeString(class) + `">` + html.EscapeString(text) + `</p>`)
}
