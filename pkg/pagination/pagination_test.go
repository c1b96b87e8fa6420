package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Params{Skip: 0, Limit: 10}, Params{}.Normalize(ArticleBounds))
	assert.Equal(t, Params{Skip: 5, Limit: 100}, Params{Skip: 5, Limit: 1000}.Normalize(ArticleBounds))
	assert.Equal(t, Params{Skip: 0, Limit: 100}, Params{Skip: -3}.Normalize(AdminBounds))
	assert.Equal(t, Params{Limit: 7}, Params{Limit: 7}.Normalize(Bounds{Default: 3}))
}

func TestFromQuery(t *testing.T) {
	p, err := FromQuery(url.Values{"skip": {"20"}, "limit": {"5"}})
	require.NoError(t, err)
	assert.Equal(t, Params{Skip: 20, Limit: 5}, p)

	p, err = FromQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, Params{}, p)

	_, err = FromQuery(url.Values{"limit": {"ten"}})
	assert.EqualError(t, err, "limit must be an integer")

	_, err = FromQuery(url.Values{"skip": {"-1"}})
	assert.EqualError(t, err, "skip must be zero or greater")
}
