package datazone_test

import (
	"context"
	"errors"
	"testing"

	"catalog-sync/core/datazone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrain(t *testing.T) {
	pages := map[string]datazone.Page[int]{
		"":   {Items: []int{1, 2}, NextToken: "t1"},
		"t1": {Items: []int{3}, NextToken: "t2"},
		"t2": {Items: []int{4}},
	}

	var tokens []string
	items, err := datazone.Drain(context.Background(), func(ctx context.Context, token string) (datazone.Page[int], error) {
		tokens = append(tokens, token)
		return pages[token], nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, items)
	assert.Equal(t, []string{"", "t1", "t2"}, tokens)
}

func TestDrain_StopsOnRepeatedToken(t *testing.T) {
	calls := 0
	items, err := datazone.Drain(context.Background(), func(ctx context.Context, token string) (datazone.Page[string], error) {
		calls++
		return datazone.Page[string]{Items: []string{"x"}, NextToken: "same"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, items, 2)
}

func TestDrain_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := datazone.Drain(context.Background(), func(ctx context.Context, token string) (datazone.Page[int], error) {
		return datazone.Page[int]{}, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestDrain_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := datazone.Drain(ctx, func(ctx context.Context, token string) (datazone.Page[int], error) {
		t.Fatal("fetch must not be called on a cancelled context")
		return datazone.Page[int]{}, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
