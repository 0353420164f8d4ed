package glossary_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"catalog-sync/core/datazone"
	"catalog-sync/core/datazone/mocks"
	"catalog-sync/feature/glossary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadCache(t *testing.T) {
	t.Run("Drains All Pages", func(t *testing.T) {
		dz := new(mocks.Client)
		dz.On("SearchGlossaryTerms", mock.Anything, "g-1", "").Return(datazone.Page[datazone.GlossaryTerm]{
			Items:     []datazone.GlossaryTerm{{ID: "t-1", Name: "Customer"}},
			NextToken: "p2",
		}, nil)
		dz.On("SearchGlossaryTerms", mock.Anything, "g-1", "p2").Return(datazone.Page[datazone.GlossaryTerm]{
			Items: []datazone.GlossaryTerm{{ID: "t-2", Name: "Customer ID"}},
		}, nil)

		cache, err := glossary.LoadCache(context.Background(), dz, "g-1")
		require.NoError(t, err)
		assert.Equal(t, 2, cache.Len())

		id, ok := cache.ID("Customer ID")
		assert.True(t, ok)
		assert.Equal(t, "t-2", id)
		assert.False(t, cache.Contains("Order"))
		assert.Equal(t, []string{"t-1", "t-2"}, cache.IDs([]string{"Customer", "Order", "Customer ID"}))
		dz.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		dz := new(mocks.Client)
		dz.On("SearchGlossaryTerms", mock.Anything, "g-1", "").Return(nil, errors.New("throttled"))

		_, err := glossary.LoadCache(context.Background(), dz, "g-1")
		assert.ErrorContains(t, err, "failed to load glossary terms")
	})
}

func TestHierarchyIndex(t *testing.T) {
	ids := map[string]string{"child": "id-child", "parent": "id-parent", "other": "id-other"}
	for i := 0; i < 12; i++ {
		ids[fmt.Sprintf("p%d", i)] = fmt.Sprintf("id-p%d", i)
	}
	cache := glossary.NewCache(ids)

	t.Run("Records Both Directions", func(t *testing.T) {
		index := glossary.NewHierarchyIndex(cache)
		index.Index("child", "parent")

		assert.Equal(t, datazone.TermRelations{IsA: []string{"id-parent"}}, index.TermRelations("child"))
		assert.Equal(t, datazone.TermRelations{Classifies: []string{"id-child"}}, index.TermRelations("parent"))
		assert.Equal(t, []string{"child", "parent"}, index.IndexedTermNames())
	})

	t.Run("Ignores Uncached Terms", func(t *testing.T) {
		index := glossary.NewHierarchyIndex(cache)
		index.Index("child", "missing")
		index.Index("missing", "parent")

		assert.Empty(t, index.IndexedTermNames())
		assert.True(t, index.TermRelations("child").Empty())
	})

	t.Run("Caps At Ten In Insertion Order", func(t *testing.T) {
		index := glossary.NewHierarchyIndex(cache)
		for i := 0; i < 12; i++ {
			index.Index("child", fmt.Sprintf("p%d", i))
		}

		rel := index.TermRelations("child")
		require.Len(t, rel.IsA, glossary.MaxRelations)
		assert.Equal(t, "id-p0", rel.IsA[0])
		assert.Equal(t, "id-p9", rel.IsA[9])
		assert.Empty(t, rel.Classifies)
	})

	t.Run("Unknown Term", func(t *testing.T) {
		index := glossary.NewHierarchyIndex(cache)
		assert.Equal(t, datazone.TermRelations{}, index.TermRelations("other"))
	})
}
