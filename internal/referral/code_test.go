package referral

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^NUTM-[A-Z0-9]{4}$`)
	for i := 0; i < 1000; i++ {
		code := NewCode()
		require.Regexp(t, pattern, code)
	}
}

func TestNewCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[NewCode()] = true
	}
	// 36^4 combinations; 200 draws should not all land on a handful of codes
	assert.Greater(t, len(seen), 100)
}
