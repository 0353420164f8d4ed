package assets

import (
	"context"
	"testing"
	"time"

	"catalog-sync/core/collibra"
	collibramocks "catalog-sync/core/collibra/mocks"
	"catalog-sync/core/datazone"
	"catalog-sync/core/datazone/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEngine_Sync_StopsWhenBudgetIsSpent(t *testing.T) {
	c := new(collibramocks.Client)
	c.On("Tables", mock.Anything, (*string)(nil)).Return([]collibra.Asset{{ID: "t1", FullName: "AWS>information_schema>tables"}}, nil).Once()

	dz := new(mocks.Client)
	dz.On("FindGlossary", mock.Anything, mock.Anything).Return("g-1", true, nil)
	dz.On("SearchGlossaryTerms", mock.Anything, "g-1", "").Return(datazone.Page[datazone.GlossaryTerm]{}, nil)

	logger := zap.NewNop()
	projects := func(context.Context) (datazone.ProjectSet, error) { return datazone.ProjectSet{}, nil }
	e := NewEngine(c, dz, datazone.NewGlossaryResolver(dz, datazone.Config{}, logger), projects, Options{Budget: 90 * time.Second}, logger)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	e.now = func() time.Time {
		defer func() { calls++ }()
		return start.Add(time.Duration(calls) * time.Minute)
	}

	next, err := e.Sync(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "t1", *next)
	c.AssertNumberOfCalls(t, "Tables", 1)
}
