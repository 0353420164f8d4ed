package collibra_test

import (
	"testing"

	"catalog-sync/core/collibra"

	"github.com/stretchr/testify/assert"
)

func TestAsset_Helpers(t *testing.T) {
	a := collibra.Asset{
		StringAttributes: []collibra.StringAttribute{
			{StringValue: "first", Type: collibra.AttributeType{Name: "Description"}},
			{StringValue: "p-1", Type: collibra.AttributeType{Name: collibra.AttributeConsumerProjectID}},
		},
		IncomingRelations: []collibra.Relation{{Source: &collibra.Asset{ID: "s1"}}, {}},
		OutgoingRelations: []collibra.Relation{{}, {Target: &collibra.Asset{ID: "t1"}}},
	}

	assert.Equal(t, []string{"first", "p-1"}, a.Descriptions())

	v, ok := a.Attribute(collibra.AttributeConsumerProjectID)
	assert.True(t, ok)
	assert.Equal(t, "p-1", v)

	_, ok = a.Attribute(collibra.AttributeProducerProjectID)
	assert.False(t, ok)

	assert.True(t, a.HasAttributeValue("first"))
	assert.False(t, a.HasAttributeValue("missing"))

	assert.Len(t, a.Sources(), 1)

	target, ok := a.FirstTarget()
	assert.True(t, ok)
	assert.Equal(t, "t1", target.ID)
}
