// Package xmlbuf provides a minimal streaming XML element writer. It
// enforces the "attributes, then content, then close" ordering of the
// output format at run time: writing an attribute after element content
// has begun is a bug in the caller's emission order and panics.
//
// The writer produces bare element fragments: no XML declaration, no
// indentation. Attribute values are escaped; free-form text goes into
// CDATA sections with embedded terminators split so the fragment stays
// well-formed.
package xmlbuf

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer builds one XML fragment. The zero value is ready to use.
type Writer struct {
	buf   bytes.Buffer
	stack []string
	inTag bool // true between Start and the first content write
}

// Start opens a new element. The element stays in its attribute phase
// until content is written or it is closed.
func (w *Writer) Start(name string) {
	w.closeTag()
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.stack = append(w.stack, name)
	w.inTag = true
}

// Attr writes one attribute on the currently open start tag.
func (w *Writer) Attr(name, value string) {
	if !w.inTag {
		panic(fmt.Sprintf("xmlbuf: attribute %q written after element content", name))
	}
	w.buf.WriteByte(' ')
	w.buf.WriteString(name)
	w.buf.WriteString(`="`)
	w.buf.WriteString(Escape(value))
	w.buf.WriteByte('"')
}

// CDATA writes a CDATA section. An embedded "]]>" terminator is split
// across adjacent sections so the fragment stays well-formed.
func (w *Writer) CDATA(text string) {
	w.closeTag()
	w.buf.WriteString("<![CDATA[")
	w.buf.WriteString(strings.ReplaceAll(text, "]]>", "]]]]><![CDATA[>"))
	w.buf.WriteString("]]>")
}

// End closes the innermost open element, self-closing it if no content
// was written.
func (w *Writer) End() {
	if len(w.stack) == 0 {
		panic("xmlbuf: End without matching Start")
	}
	name := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.inTag {
		w.buf.WriteString("/>")
		w.inTag = false
		return
	}
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

// String returns the fragment written so far.
func (w *Writer) String() string {
	return w.buf.String()
}

// closeTag finishes the open start tag before content is written.
func (w *Writer) closeTag() {
	if w.inTag {
		w.buf.WriteByte('>')
		w.inTag = false
	}
}

// Escape makes a string safe for attribute context. Replacements run in
// a fixed order, ampersand first, so entities produced by one step are
// never re-escaped by a later one.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
