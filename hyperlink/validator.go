package hyperlink

import (
	"net/url"
	"slices"
	"strings"
)

// Characters that must be percent-encoded in a well-formed URI.
const mustEscape = " \"<>\\^`{|}"

// Validator decides whether a token is a hyperlink.
type Validator struct {
	protocols Protocols
}

// NewValidator returns a Validator accepting the schemes in protocols.
func NewValidator(protocols Protocols) *Validator {
	return &Validator{protocols: protocols}
}

// IsValid reports whether token is a well-formed absolute URI with one of the
// validator's schemes. Schemes are matched case-insensitively.
func (v *Validator) IsValid(token string) bool {
	if !IsWellFormed(token) {
		return false
	}

	scheme, _, found := strings.Cut(token, ":")
	if !found {
		return false
	}

	return slices.ContainsFunc(v.protocols.Protocols(), func(p string) bool {
		return strings.EqualFold(p, scheme)
	})
}

// IsWellFormed reports whether raw is an absolute URI that needs no further
// escaping, whatever its scheme.
func IsWellFormed(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, mustEscape) {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
