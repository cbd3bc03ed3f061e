// Package dataurl renders byte content as RFC 2397 "data:" URLs.
package dataurl

import (
	"encoding/base64"
	"strings"
)

// DefaultMediaType is used when the media type of the content is unknown.
const DefaultMediaType = "application/octet-stream"

// DataUrl is an immutable bundle of media type, encoding flag and raw
// content. The rendered string is a pure function of these three fields.
type DataUrl struct {
	MediaType     string
	Base64Encoded bool
	Data          []byte
}

// New creates a DataUrl. The media type is not validated; callers are
// responsible for passing a syntactically valid MIME value.
func New(mediaType string, data []byte, base64Encoded bool) *DataUrl {
	return &DataUrl{
		MediaType:     mediaType,
		Base64Encoded: base64Encoded,
		Data:          data,
	}
}

// String renders the textual form data:<media-type>[;base64],<payload>.
//
// Base64 payloads use the base64url alphabet without padding. Raw payloads
// percent-encode every byte that is not an ASCII alphanumeric - a broader
// class than RFC 2397 unreserved (space, '-', '_', '.' and '~' are escaped
// too), kept for compatibility with existing consumers.
func (d *DataUrl) String() string {
	var encoding, payload string
	if d.Base64Encoded {
		encoding = ";base64"
		payload = base64.RawURLEncoding.EncodeToString(d.Data)
	} else {
		payload = percentEncode(d.Data)
	}
	var b strings.Builder
	b.Grow(len("data:") + len(d.MediaType) + len(encoding) + 1 + len(payload))
	b.WriteString("data:")
	b.WriteString(d.MediaType)
	b.WriteString(encoding)
	b.WriteByte(',')
	b.WriteString(payload)
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isAlphanumeric(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func percentEncode(data []byte) string {
	var b strings.Builder
	for _, c := range data {
		if isAlphanumeric(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}
