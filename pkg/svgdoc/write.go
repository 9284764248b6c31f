package svgdoc

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/kalamapona/pkg/errors"
)

// Declaration is the XML declaration written ahead of every document.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#10;", "\r", "&#13;", "\t", "&#9;",
	)
)

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }

// EscapeText escapes s for use as character data.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// Encode writes the XML declaration followed by n.
func Encode(w io.Writer, n *Node) error {
	var buf bytes.Buffer
	buf.WriteString(Declaration)
	buf.WriteByte('\n')
	writeNode(&buf, n)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// Bytes serializes n as a standalone document.
func Bytes(n *Node) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, n)
	return buf.Bytes()
}

// WriteFile serializes n to path.
func WriteFile(path string, n *Node) error {
	if err := os.WriteFile(path, Bytes(n), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func writeNode(buf *bytes.Buffer, n *Node) {
	switch n.Kind {
	case TextNode:
		buf.WriteString(EscapeText(n.Data))
	case CommentNode:
		buf.WriteString("<!--")
		buf.WriteString(n.Data)
		buf.WriteString("-->")
	case ElementNode:
		name := formatName(n.Name)
		buf.WriteByte('<')
		buf.WriteString(name)
		for _, a := range n.Attr {
			buf.WriteByte(' ')
			buf.WriteString(formatName(a.Name))
			buf.WriteString(`="`)
			buf.WriteString(EscapeAttr(a.Value))
			buf.WriteByte('"')
		}
		if len(n.Children) == 0 {
			buf.WriteString(" />")
			return
		}
		buf.WriteByte('>')
		for _, c := range n.Children {
			writeNode(buf, c)
		}
		buf.WriteString("</")
		buf.WriteString(name)
		buf.WriteByte('>')
	}
}

func formatName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
