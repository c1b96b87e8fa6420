package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIslandType(t *testing.T) {
	got, err := ParseIslandType(" resort ")
	require.NoError(t, err)
	assert.Equal(t, IslandTypeResort, got)

	_, err = ParseIslandType("volcanic")
	assert.Error(t, err)
	_, err = ParseIslandType(IslandTypeAll)
	assert.Error(t, err)
	assert.False(t, IslandType("Resort").IsValid())
}

func TestParseAdPlacement(t *testing.T) {
	got, err := ParseAdPlacement("blog-inline")
	require.NoError(t, err)
	assert.Equal(t, AdPlacementBlogInline, got)
	assert.True(t, AdPlacementIslandDetail.IsValid())

	_, err = ParseAdPlacement("popup")
	assert.Error(t, err)
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, UserRoleAdmin, RoleFor(true))
	assert.Equal(t, UserRoleUser, RoleFor(false))
	assert.True(t, UserRoleAdmin.IsAdmin())
	assert.False(t, UserRoleUser.IsAdmin())
}
