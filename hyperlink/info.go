package hyperlink

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-toolkit/errors"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

const (
	// TypeKey is the query parameter holding an entity type id.
	TypeKey = "type"
	// IDKey is the query parameter holding an entity id.
	IDKey = "id"
)

// ErrInvalidHyperlink is returned by ParseInfo for input that doesn't decode
// to an absolute URI.
var ErrInvalidHyperlink = fmt.Errorf("%w: invalid hyperlink", errors.ErrInvalidArgument)

// Info is a decoded hyperlink.
type Info struct {
	httpURL url.URL
	server  url.URL
	params  url.Values
}

// ParseInfo URL-decodes raw, then resolves HTML entities, then parses the
// result. A trailing slash on the path is dropped.
func ParseInfo(raw string) (*Info, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHyperlink, err)
	}

	u, err := url.Parse(html.UnescapeString(decoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHyperlink, err)
	}

	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidHyperlink, raw)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""

	// Malformed pairs are skipped; whatever parsed is kept.
	params, _ := url.ParseQuery(u.RawQuery)

	info := &Info{
		httpURL: *u,
		server:  *u,
		params:  params,
	}

	info.server.RawQuery = ""
	info.server.ForceQuery = false

	return info, nil
}

// URL returns the full hyperlink.
func (i *Info) URL() *url.URL {
	u := i.httpURL

	return &u
}

// Server returns the hyperlink without its query.
func (i *Info) Server() *url.URL {
	u := i.server

	return &u
}

// ParamCount returns the number of distinct query keys.
func (i *Info) ParamCount() int {
	return len(i.params)
}

// HasParam reports whether the query has key, ignoring case.
func (i *Info) HasParam(key string) bool {
	_, ok := i.Param(key)

	return ok
}

// Param returns the value of key, ignoring case. Repeated values are joined
// with commas. A key that matches more than one spelling in the query
// ("id" and "ID") is ambiguous and reported as missing.
func (i *Info) Param(key string) (string, bool) {
	var matches []string

	for k := range i.params {
		if strings.EqualFold(k, key) {
			matches = append(matches, k)
		}
	}

	if len(matches) != 1 {
		return "", false
	}

	return strings.Join(i.params[matches[0]], ","), true
}

// ParamKeys returns the query keys in sorted order.
func (i *Info) ParamKeys() []string {
	keys := make([]string, 0, len(i.params))
	for k := range i.params {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Entity returns the entity reference carried by the link: exactly two
// parameters, type (a UUID) and id (a 32-bit integer).
func (i *Info) Entity() (entityType uuid.UUID, id int, ok bool) {
	if i.ParamCount() != 2 { //nolint:mnd
		return uuid.Nil, 0, false
	}

	entityType, ok = i.entityType()
	if !ok {
		return uuid.Nil, 0, false
	}

	raw, ok := i.Param(IDKey)
	if !ok {
		return uuid.Nil, 0, false
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return uuid.Nil, 0, false
	}

	return entityType, int(n), true
}

// IsEntity reports whether the link references a single entity.
func (i *Info) IsEntity() bool {
	_, _, ok := i.Entity()

	return ok
}

// EntityType returns the entity type of a link whose only parameter is type.
func (i *Info) EntityType() (uuid.UUID, bool) {
	if i.ParamCount() != 1 {
		return uuid.Nil, false
	}

	return i.entityType()
}

// IsEntityType reports whether the link references an entity type.
func (i *Info) IsEntityType() bool {
	_, ok := i.EntityType()

	return ok
}

func (i *Info) entityType() (uuid.UUID, bool) {
	raw, ok := i.Param(TypeKey)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
