package cache

import (
	"net/url"
	"strings"
)

// Key identifies one cached resource: a path plus the query parameters that
// produced the variant. The canonical string form sorts parameters, so two
// keys built from the same filter always collide.
type Key struct {
	Resource string
	Params   url.Values
}

// NewKey builds a key. Params may be nil.
func NewKey(resource string, params url.Values) Key {
	return Key{Resource: resource, Params: params}
}

// String renders the canonical form, e.g. "/api/checks?stationId=1".
func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Resource
	}
	return k.Resource + "?" + k.Params.Encode()
}

// HasPrefix reports whether k falls under prefix: the resource must equal the
// prefix resource or extend it past a path boundary, and every prefix
// parameter must be present with the same value. A bare resource prefix
// therefore matches all filtered variants of that resource.
func (k Key) HasPrefix(prefix Key) bool {
	if k.Resource != prefix.Resource &&
		!strings.HasPrefix(k.Resource, strings.TrimRight(prefix.Resource, "/")+"/") {
		return false
	}
	for name, want := range prefix.Params {
		got := k.Params[name]
		if len(got) == 0 || got[0] != want[0] {
			return false
		}
	}
	return true
}
