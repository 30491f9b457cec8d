package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodes() []string {
	codes := make([]string, 0, 26*26*26)
	for a := byte('A'); a <= 'Z'; a++ {
		for b := byte('A'); b <= 'Z'; b++ {
			for c := byte('A'); c <= 'Z'; c++ {
				codes = append(codes, string([]byte{a, b, c}))
			}
		}
	}
	return codes
}

// decode(keyOf(c, ns)) == (c, ns) for every code means keyOf is injective.
func TestKeyOf_RoundTripsEveryCode(t *testing.T) {
	for _, nsIdx := range []int{0, 1, 2, 127, DefaultMaxNamespaces - 1, maxKeyNSIndex} {
		for _, code := range allCodes() {
			k, ok := keyOf(code, nsIdx)
			require.True(t, ok, code)
			gotCode, gotNS := k.decode()
			if gotCode != code || gotNS != nsIdx {
				t.Fatalf("keyOf(%q, %d) decoded to (%q, %d)", code, nsIdx, gotCode, gotNS)
			}
		}
	}
}

func TestKeyOf_DistinctAcrossNamespaces(t *testing.T) {
	seen := make(map[key]string)
	for nsIdx := 0; nsIdx < 4; nsIdx++ {
		for _, code := range allCodes() {
			k, _ := keyOf(code, nsIdx)
			if prev, dup := seen[k]; dup {
				t.Fatalf("collision between %s and %s/%d", prev, code, nsIdx)
			}
			seen[k] = code
		}
	}
	assert.Len(t, seen, 4*26*26*26)
}

func TestKeyOf_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		nsIdx int
	}{
		{name: "lowercase", code: "eur", nsIdx: 0},
		{name: "too short", code: "EU", nsIdx: 0},
		{name: "too long", code: "EURO", nsIdx: 0},
		{name: "digit", code: "EU1", nsIdx: 0},
		{name: "negative namespace", code: "EUR", nsIdx: -1},
		{name: "namespace overflow", code: "EUR", nsIdx: maxKeyNSIndex + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := keyOf(tt.code, tt.nsIdx)
			assert.False(t, ok)
		})
	}
}
