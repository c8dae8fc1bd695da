// Package document decodes uploaded instruction documents into text.
package document

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrBinaryContent is returned for uploads that cannot be treated as text.
var ErrBinaryContent = errors.New("document is not decodable text")

// Decode converts an uploaded document to a string. Valid UTF-8 is used
// as-is; anything else falls back to Latin-1 (ISO 8859-1). Content with
// NUL bytes is rejected as binary since every byte sequence decodes under
// Latin-1.
func Decode(data []byte) (string, error) {
	if bytes.ContainsRune(data, 0) {
		return "", ErrBinaryContent
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", ErrBinaryContent
	}
	return string(decoded), nil
}
