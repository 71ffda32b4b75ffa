// Package encoding normalises uploaded text files to UTF-8. Census exports from municipal offices
// often arrive as Latin-1 or UTF-16 spreadsheets saved as CSV.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names a detected source encoding.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	ISO8859_1   Charset = "ISO-8859-1"
	ISO8859_15  Charset = "ISO-8859-15"
	Windows1252 Charset = "windows-1252"
)

const sniffSize = 4096

var boms = []struct {
	prefix  []byte
	charset Charset
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// decoders maps the chardet names we trust to their decoder. Anything else falls back to
// Windows-1252, which is a superset of Latin-1 for printable text.
var decoders = map[Charset]encoding.Encoding{
	ISO8859_1:   charmap.Windows1252,
	Windows1252: charmap.Windows1252,
	ISO8859_15:  charmap.ISO8859_15,
}

// Decode sniffs the start of r and returns a reader yielding UTF-8 along with the charset it
// detected. A UTF-8 byte order mark is stripped.
func Decode(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	buf, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	for _, bom := range boms {
		if !bytes.HasPrefix(buf, bom.prefix) {
			continue
		}

		switch bom.charset {
		case UTF8:
			_, _ = br.Discard(len(bom.prefix))
			return br, UTF8, nil
		case UTF16LE:
			return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), UTF16LE, nil
		default:
			return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), UTF16BE, nil
		}
	}

	if utf8.Valid(buf) {
		return br, UTF8, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		cs := Charset(result.Charset)
		if cs == UTF8 {
			return br, UTF8, nil
		}

		if dec, ok := decoders[cs]; ok {
			return transform.NewReader(br, dec.NewDecoder()), cs, nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), Windows1252, nil
}

// NewUTF8Reader is Decode without the charset.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	out, _, err := Decode(r)
	return out, err
}
