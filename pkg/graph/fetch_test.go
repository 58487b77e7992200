package graph

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/credentials"
)

func testCreds() *credentials.Credentials {
	return &credentials.Credentials{PageID: "580104038511364", AccessToken: "test-token"}
}

func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	SetBaseURL(server.URL)
}

func TestFetchPageInfo(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/580104038511364", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Contains(t, r.URL.Query().Get("fields"), "fan_count")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"Juan365","fan_count":125000,"followers_count":126500,
			"talking_about_count":4300,"overall_star_rating":4.7,"rating_count":812}`)
	})

	info, err := FetchPageInfo(testCreds())
	require.NoError(t, err)
	assert.Equal(t, "Juan365", info.Name)
	assert.Equal(t, 125000, info.FanCount)
	assert.Equal(t, 4.7, info.OverallStarRating)
	assert.NotEmpty(t, info.FetchedAt)
}

func TestFetchPageInfo_NoCredentials(t *testing.T) {
	_, err := FetchPageInfo(&credentials.Credentials{})
	assert.Error(t, err)
}

func TestFetchPosts_ProcessesReactionAliases(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/580104038511364/posts", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("fields"), "reactions.type(LIKE)")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{
			"id":"580104038511364_122169709076762707",
			"message":"Hello Juan365",
			"created_time":"2025-01-15T08:30:00+0000",
			"permalink_url":"https://www.facebook.com/p/1",
			"status_type":"added_photos",
			"shares":{"count":8},
			"reactions":{"summary":{"total_count":120}},
			"comments":{"summary":{"total_count":15}},
			"like":{"summary":{"total_count":90}},
			"love":{"summary":{"total_count":20}},
			"haha":{"summary":{"total_count":10}},
			"wow":{"summary":{"total_count":0}},
			"sad":{"summary":{"total_count":0}},
			"angry":{"summary":{"total_count":0}}
		},{
			"id":"580104038511364_122169709076762708",
			"created_time":"2025-01-16T19:05:00+0000"
		}]}`)
	})

	snap, err := FetchPosts(testCreds(), 100)
	require.NoError(t, err)
	require.Equal(t, 2, snap.TotalPosts)

	p := snap.Posts[0]
	assert.Equal(t, "580104038511364_122169709076762707", p.ID)
	assert.Equal(t, "added_photos", p.PostType)
	assert.Equal(t, 120, p.Reactions)
	assert.Equal(t, 15, p.Comments)
	assert.Equal(t, 8, p.Shares)
	assert.Equal(t, 143, p.Engagement)
	assert.Equal(t, 90, p.Like)
	assert.Equal(t, 20, p.Love)

	// Missing fields default to zero and an unknown type
	assert.Equal(t, "unknown", snap.Posts[1].PostType)
	assert.Equal(t, 0, snap.Posts[1].Engagement)
}

func TestFetchPosts_GraphError(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`)
	})

	_, err := FetchPosts(testCreds(), 10)
	require.Error(t, err)
}

func TestFetchVideos_TotalsViews(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/580104038511364/videos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[
			{"id":"v1","description":"Launch video","views":12000,"length":63.5,
			 "created_time":"2025-01-10T12:00:00+0000","permalink_url":"/watch/v1"},
			{"id":"v2","description":"Recap","views":8000,"length":30,
			 "created_time":"2025-01-12T12:00:00+0000","permalink_url":"/watch/v2"}
		]}`)
	})

	snap, err := FetchVideos(testCreds(), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.TotalVideos)
	assert.Equal(t, 20000, snap.TotalViews)
	assert.Equal(t, "Launch video", snap.Videos[0].Description)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, "héllo", truncate("héllo world", 5))
}
