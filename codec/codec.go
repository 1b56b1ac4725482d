// Package codec converts file contents between their on-disk character encoding
// and UTF-8 text.
package codec

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Codec decodes file bytes to UTF-8 and encodes UTF-8 back to file bytes.
type Codec struct {
	// Name is the canonical encoding name, e.g. "utf-8" or "windows-1252"
	Name string
	enc  encoding.Encoding
}

// Lookup resolves an encoding label such as "utf-8", "latin1" or "shift_jis".
func Lookup(label string) (Codec, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return Codec{}, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return Codec{}, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return Codec{Name: name, enc: enc}, nil
}

func (c Codec) isUTF8() bool {
	return c.enc == nil || c.Name == "utf-8"
}

// Decode returns content as UTF-8. Invalid UTF-8 input is an error rather than
// being replaced with U+FFFD.
func (c Codec) Decode(content []byte) ([]byte, error) {
	if c.isUTF8() {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, content); err != nil {
			return nil, fmt.Errorf("'utf-8' codec can't decode content: %w", err)
		}
		return content, nil
	}
	out, err := c.enc.NewDecoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("'%s' codec can't decode content: %w", c.Name, err)
	}
	return out, nil
}

// Encode converts UTF-8 text back to the codec's encoding.
func (c Codec) Encode(text []byte) ([]byte, error) {
	if c.isUTF8() {
		return text, nil
	}
	out, err := c.enc.NewEncoder().Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("'%s' codec can't encode content: %w", c.Name, err)
	}
	return out, nil
}
