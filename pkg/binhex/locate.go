package binhex

import (
	"bytes"
	"fmt"
)

// promptPrefix starts the introductory line; the version suffix is not checked.
const promptPrefix = "(This file must be converted with BinHex"

// LocatePayload returns the encoded text between the first two colons that
// follow the BinHex prompt line. The result still contains line breaks and
// aliases text.
func LocatePayload(text []byte) ([]byte, error) {
	i := bytes.Index(text, []byte(promptPrefix))
	if i < 0 {
		return nil, fmt.Errorf("%w: missing BinHex prompt", ErrBadFormat)
	}
	rest := text[i+len(promptPrefix):]

	start := bytes.IndexByte(rest, ':')
	if start < 0 {
		return nil, fmt.Errorf("%w: missing opening colon", ErrBadFormat)
	}
	rest = rest[start+1:]

	end := bytes.IndexByte(rest, ':')
	if end < 0 {
		return nil, fmt.Errorf("%w: missing closing colon", ErrBadFormat)
	}
	return rest[:end], nil
}
