package xm

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// decodeName converts a fixed width name field to a string. The fields
// hold code page 437 text, NUL terminated when shorter than the field,
// with arbitrary junk allowed after the terminator. A name never fails
// a parse, no matter what bytes it holds.
func decodeName(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	var sb strings.Builder
	for _, b := range raw {
		sb.WriteRune(charmap.CodePage437.DecodeByte(b))
	}
	return strings.TrimSpace(sb.String())
}
