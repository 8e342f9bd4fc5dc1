package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBloodType(t *testing.T) {
	for i, code := range []string{"0(I)", "A(II)", "B(III)", "AB(IV)"} {
		bloodType, ok := ParseBloodType(code)
		require.True(t, ok, code)
		assert.Equal(t, i, bloodType.Index())
		assert.Equal(t, code, bloodType.String())
	}

	for _, code := range []string{"", "0", "O(I)", "ab(iv)", "C(V)"} {
		_, ok := ParseBloodType(code)
		assert.False(t, ok, code)
	}
}
