package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/export"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()

	snap := &PostsSnapshot{
		FetchedAt:  "2025-01-20T10:00:00Z",
		TotalPosts: 1,
		Posts:      []APIPost{{ID: "page_post1", Like: 5, Engagement: 12}},
	}
	require.NoError(t, SaveSnapshot(dir, PostsFile, snap))

	loaded, err := LoadPosts(dir)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.FetchedAt, loaded.FetchedAt)
	require.Len(t, loaded.Posts, 1)
	assert.Equal(t, 5, loaded.Posts[0].Like)
}

func TestLoadSnapshots_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	info, err := LoadPageInfo(dir)
	require.NoError(t, err)
	assert.Nil(t, info)

	posts, err := LoadPosts(dir)
	require.NoError(t, err)
	assert.Nil(t, posts)

	videos, err := LoadVideos(dir)
	require.NoError(t, err)
	assert.Nil(t, videos)
}

func TestEnrich_MatchesFullAndShortIDs(t *testing.T) {
	posts := []export.Post{
		{ID: "122169709076762707"},                 // short form
		{ID: "580104038511364_122169709076762708"}, // full form
		{ID: "unmatched"},
	}

	snap := &PostsSnapshot{Posts: []APIPost{
		{ID: "580104038511364_122169709076762707", Like: 10, Love: 2},
		{ID: "580104038511364_122169709076762708", Haha: 7},
	}}

	matched := Enrich(posts, snap)
	assert.Equal(t, 2, matched)

	assert.True(t, posts[0].HasBreakdown)
	assert.Equal(t, 10, posts[0].Like)
	assert.Equal(t, 2, posts[0].Love)

	assert.True(t, posts[1].HasBreakdown)
	assert.Equal(t, 7, posts[1].Haha)

	assert.False(t, posts[2].HasBreakdown)
}

func TestEnrich_ZeroReactionsLeaveNoBreakdown(t *testing.T) {
	posts := []export.Post{{ID: "p1"}}
	snap := &PostsSnapshot{Posts: []APIPost{{ID: "page_p1"}}}

	matched := Enrich(posts, snap)
	assert.Equal(t, 0, matched)
	assert.False(t, posts[0].HasBreakdown)
}

func TestExportPosts(t *testing.T) {
	snap := &PostsSnapshot{Posts: []APIPost{
		{
			ID: "580104038511364_1", Message: "Hello", PermalinkURL: "https://www.facebook.com/p/1",
			PostType: "added_photos", CreatedTime: "2025-01-15T22:30:00+0000",
			Reactions: 120, Comments: 15, Shares: 8, Engagement: 143,
			Like: 90, Love: 20, Haha: 10,
		},
		{ID: "580104038511364_2", CreatedTime: "garbage"},
	}}

	posts := snap.ExportPosts(8)
	require.Len(t, posts, 2)

	p := posts[0]
	assert.Equal(t, "580104038511364_1", p.ID)
	assert.Equal(t, "added_photos", p.Type)
	assert.Equal(t, 143, p.Engagement)
	assert.True(t, p.HasBreakdown)
	// 22:30 UTC + 8h lands on the next Manila day
	assert.Equal(t, time.Date(2025, 1, 16, 6, 30, 0, 0, time.UTC), p.PublishedAt)
	// The posts endpoint has no reach or views
	assert.Equal(t, 0, p.Views)
	assert.Equal(t, 0, p.Reach)

	assert.Equal(t, "Unknown", posts[1].Type)
	assert.False(t, posts[1].HasTime())
	assert.False(t, posts[1].HasBreakdown)
}

func TestEnrich_NilSnapshot(t *testing.T) {
	posts := []export.Post{{ID: "p1"}}
	assert.Equal(t, 0, Enrich(posts, nil))
}
