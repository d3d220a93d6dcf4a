package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoomCode(t *testing.T) {
	t.Parallel()

	for _, length := range []int{4, 6, 8} {
		code := GenerateRoomCode(length)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.Contains(t, roomCodeChars, string(r))
		}
	}
}

func TestGenerateRoomCode_ExcludesAmbiguousCharacters(t *testing.T) {
	t.Parallel()

	// Codes get read aloud and typed on phones: I, O, 0 and 1 are banned
	for i := 0; i < 200; i++ {
		code := GenerateRoomCode(6)
		assert.False(t, strings.ContainsAny(code, "IO01"), "code %s contains an ambiguous character", code)
	}
}

func TestGenerateRandomString(t *testing.T) {
	t.Parallel()

	s := GenerateRandomString(16)
	assert.Len(t, s, 16)
	for _, r := range s {
		assert.Contains(t, randomChars, string(r))
	}
}
