package api

import (
	"encoding/json"
	"testing"

	"nuture_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{`42.5`, 42.5, false},
		{`"42.50"`, 42.5, false},
		{`0`, 0, false},
		{`"0"`, 0, false},
		{`-5`, -5, false}, // parses; the handler rejects negatives
		{`"abc"`, 0, true},
		{`true`, 0, true},
		{`""`, 0, true},
	}
	for _, tc := range tests {
		var a Amount
		err := json.Unmarshal([]byte(tc.in), &a)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidAmount, "input %s", tc.in)
			continue
		}
		require.NoError(t, err, "input %s", tc.in)
		assert.Equal(t, tc.want, float64(a), "input %s", tc.in)
	}
}
