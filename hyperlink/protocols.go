// Package hyperlink finds hyperlinks in free text and inspects them.
//
// A [Parser] splits text into [Chunk] values: runs of plain text, single
// newlines and hyperlinks. A token counts as a hyperlink when it is a
// well-formed absolute URI whose scheme appears in the [Protocols] the
// [Validator] was built with. Trailing punctuation such as a period or a
// closing parenthesis is never considered part of a link, so links can be
// written inside ordinary sentences.
//
// [ParseInfo] decodes a single hyperlink and exposes its query parameters,
// including the entity-reference convention (type=<uuid>&id=<int>).
package hyperlink

import (
	"slices"
	"strings"
)

// Protocols lists the URI schemes that count as hyperlinks.
type Protocols interface {
	Protocols() []string
}

// StaticProtocols is a fixed list of schemes.
type StaticProtocols []string

func (p StaticProtocols) Protocols() []string {
	return slices.Clone(p)
}

// HTTPProtocols accepts http and https links only.
var HTTPProtocols = StaticProtocols{"http", "https"} //nolint:gochecknoglobals

// ParseProtocols splits a comma-separated list such as "http, https, ftp"
// into a StaticProtocols, dropping blanks and trailing colons.
func ParseProtocols(list string) StaticProtocols {
	var protocols StaticProtocols

	for part := range strings.SplitSeq(list, ",") {
		part = strings.TrimSuffix(strings.TrimSpace(part), ":")
		if part != "" {
			protocols = append(protocols, part)
		}
	}

	return protocols
}
