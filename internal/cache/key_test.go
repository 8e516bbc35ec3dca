package cache

import (
	"net/url"
	"testing"
)

func TestKeyStringCanonicalizesParams(t *testing.T) {
	a := NewKey("/api/checks", url.Values{"status": {"pending"}, "stationId": {"1"}})
	b := NewKey("/api/checks", url.Values{"stationId": {"1"}, "status": {"pending"}})

	if a.String() != b.String() {
		t.Fatalf("equivalent keys render differently: %q vs %q", a.String(), b.String())
	}
	if got := NewKey("/api/stats", nil).String(); got != "/api/stats" {
		t.Fatalf("bare key = %q", got)
	}
}

func TestKeyHasPrefix(t *testing.T) {
	cases := []struct {
		name   string
		key    Key
		prefix Key
		want   bool
	}{
		{
			name:   "same resource no params",
			key:    NewKey("/api/checks", nil),
			prefix: NewKey("/api/checks", nil),
			want:   true,
		},
		{
			name:   "filtered variant under bare prefix",
			key:    NewKey("/api/checks", url.Values{"stationId": {"1"}}),
			prefix: NewKey("/api/checks", nil),
			want:   true,
		},
		{
			name:   "sub-path under bare prefix",
			key:    NewKey("/api/stats/operator/7", nil),
			prefix: NewKey("/api/stats", nil),
			want:   true,
		},
		{
			name:   "resource sharing a string prefix only",
			key:    NewKey("/api/checksum", nil),
			prefix: NewKey("/api/checks", nil),
			want:   false,
		},
		{
			name:   "prefix param must match",
			key:    NewKey("/api/checks", url.Values{"stationId": {"2"}}),
			prefix: NewKey("/api/checks", url.Values{"stationId": {"1"}}),
			want:   false,
		},
		{
			name:   "prefix param matches",
			key:    NewKey("/api/checks", url.Values{"stationId": {"1"}, "status": {"used"}}),
			prefix: NewKey("/api/checks", url.Values{"stationId": {"1"}}),
			want:   true,
		},
		{
			name:   "unrelated resource",
			key:    NewKey("/api/users", nil),
			prefix: NewKey("/api/checks", nil),
			want:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.HasPrefix(tc.prefix); got != tc.want {
				t.Fatalf("HasPrefix(%v, %v) = %v, want %v", tc.key, tc.prefix, got, tc.want)
			}
		})
	}
}
