package hashtags

import (
	"testing"

	"media04/store"
	"media04/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingCountsAndOrders(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.PutPosts([]structs.Post{
		{ID: "p3", Tags: []string{"coffee", "travel"}},
		{ID: "p2", Tags: []string{"coffee", "nature"}},
		{ID: "p1", Tags: []string{"nature"}},
	}))

	trending, err := NewHandler(st).Trending(10)
	require.NoError(t, err)
	require.Len(t, trending, 3)
	assert.Equal(t, structs.TrendingHashtag{Tag: "coffee", Count: 2}, trending[0])
	assert.Equal(t, structs.TrendingHashtag{Tag: "nature", Count: 2}, trending[1])
	assert.Equal(t, structs.TrendingHashtag{Tag: "travel", Count: 1}, trending[2])
}

func TestTrendingHonoursLimit(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.PutPosts([]structs.Post{
		{ID: "p1", Tags: []string{"a", "b", "c"}},
	}))

	trending, err := NewHandler(st).Trending(2)
	require.NoError(t, err)
	assert.Len(t, trending, 2)
}

func TestTrendingEmptyFeed(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	trending, err := NewHandler(st).Trending(10)
	require.NoError(t, err)
	assert.Empty(t, trending)
}
