package utils_test

import (
	"testing"

	"catalog-sync/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Curly", `{“region”: “OHIO”}`, `{"region": "OHIO"}`},
		{"Guillemets", `«a»`, `"a"`},
		{"Fullwidth", `＂x＂`, `"x"`},
		{"Ornaments", `❝y❞ „z‟`, `"y" "z"`},
		{"Untouched", `{"a": 1}`, `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeQuotes(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", utils.Truncate("abcdef", 3))
	assert.Equal(t, "ab", utils.Truncate("ab", 3))
	assert.Equal(t, "éé", utils.Truncate("ééé", 2))
	assert.Equal(t, "", utils.Truncate("abc", 0))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, utils.Dedupe([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, utils.Dedupe(nil))
}

func TestTrailingSegments(t *testing.T) {
	got, err := utils.TrailingSegments("AWS>cluster>dev>public>orders", ">", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "public", "orders"}, got)

	got, err = utils.TrailingSegments("AWS>sales>orders", ">", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"sales", "orders"}, got)

	_, err = utils.TrailingSegments("orders", ">", 2)
	assert.Error(t, err)
}
