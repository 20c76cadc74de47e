//go:build !integration

package sliceutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	aliases := []string{"typescript", "ts", "TS"}

	assert.True(t, Contains(aliases, "ts"), "Should find alias")
	assert.True(t, Contains(aliases, "TS"), "Lookup should be case-sensitive and find TS")
	assert.False(t, Contains(aliases, "Ts"), "Should not match different case")
	assert.False(t, Contains([]string{}, "ts"), "Empty slice contains nothing")
	assert.False(t, Contains(nil, "ts"), "Nil slice contains nothing")
}

func TestMapToSlice(t *testing.T) {
	keys := MapToSlice(map[string]bool{"force": true, "router": false, "ts": true})
	sort.Strings(keys)

	assert.Equal(t, []string{"force", "router", "ts"}, keys, "All keys should be returned")
	assert.Empty(t, MapToSlice(map[string]bool{}), "Empty map yields empty slice")
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "no duplicates", input: []string{"a", "b"}, expected: []string{"a", "b"}},
		{name: "keeps first occurrence order", input: []string{"ts", "TS", "ts", "typescript"}, expected: []string{"ts", "TS", "typescript"}},
		{name: "empty", input: []string{}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Deduplicate(tt.input), "Deduplicated slice should match")
		})
	}
}
