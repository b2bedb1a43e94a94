package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestPublicIDRoundTrip(t *testing.T) {
	public, err := GeneratePublicID(42, EntityTypeArticle)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(public), 4)

	dbID, entityType, err := DecodePublicID(public)
	require.NoError(t, err)
	assert.Equal(t, uint(42), dbID)
	assert.Equal(t, EntityTypeArticle, entityType)
}

func TestEntityTypesProduceDistinctIDs(t *testing.T) {
	asArticle, err := GeneratePublicID(7, EntityTypeArticle)
	require.NoError(t, err)
	asUser, err := GeneratePublicID(7, EntityTypeUser)
	require.NoError(t, err)
	assert.NotEqual(t, asArticle, asUser)
}

func TestDecodeGarbageFails(t *testing.T) {
	_, _, err := DecodePublicID("!!!")
	assert.Error(t, err)
}
