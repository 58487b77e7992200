package graph

import (
	"fmt"
	"time"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/credentials"
	cerrors "github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/errors"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

// Field list for the posts endpoint. The reaction aliases give per-emotion
// counts in a single request.
const postFields = "id,message,created_time,shares,permalink_url,status_type," +
	"reactions.type(LIKE).summary(true).as(like)," +
	"reactions.type(LOVE).summary(true).as(love)," +
	"reactions.type(HAHA).summary(true).as(haha)," +
	"reactions.type(WOW).summary(true).as(wow)," +
	"reactions.type(SAD).summary(true).as(sad)," +
	"reactions.type(ANGRY).summary(true).as(angry)," +
	"reactions.summary(true),comments.summary(true)"

const pageFields = "name,fan_count,followers_count,talking_about_count,overall_star_rating,rating_count"

const videoFields = "id,title,description,created_time,length,views,permalink_url"

const maxMessageLen = 200

// FetchPageInfo pulls page-level metrics.
func FetchPageInfo(creds *credentials.Credentials) (*PageInfo, error) {
	if !creds.IsValid() {
		return nil, cerrors.AuthError("No Graph API credentials configured")
	}

	var result struct {
		PageInfo
		Error *apiError `json:"error"`
	}

	resp, err := GetClient().R().
		SetQueryParams(map[string]string{
			"fields":       pageFields,
			"access_token": creds.AccessToken,
		}).
		SetResult(&result).
		Get("/" + creds.PageID)
	if err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, graphError(result.Error, resp.StatusCode())
	}
	if !resp.IsSuccess() {
		return nil, cerrors.APIError(fmt.Sprintf("page info request failed: %s", resp.Status()), resp.StatusCode())
	}

	info := result.PageInfo
	info.FetchedAt = time.Now().Format(time.RFC3339)
	return &info, nil
}

// FetchPosts pulls recent posts with engagement and per-emotion reactions.
func FetchPosts(creds *credentials.Credentials, limit int) (*PostsSnapshot, error) {
	if !creds.IsValid() {
		return nil, cerrors.AuthError("No Graph API credentials configured")
	}
	if limit <= 0 {
		limit = 100
	}

	var result rawPostList
	resp, err := GetClient().R().
		SetQueryParams(map[string]string{
			"fields":       postFields,
			"limit":        fmt.Sprintf("%d", limit),
			"access_token": creds.AccessToken,
		}).
		SetResult(&result).
		Get("/" + creds.PageID + "/posts")
	if err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, graphError(result.Error, resp.StatusCode())
	}
	if !resp.IsSuccess() {
		return nil, cerrors.APIError(fmt.Sprintf("posts request failed: %s", resp.Status()), resp.StatusCode())
	}

	snap := &PostsSnapshot{
		FetchedAt: time.Now().Format(time.RFC3339),
	}
	for _, raw := range result.Data {
		snap.Posts = append(snap.Posts, processPost(raw))
	}
	snap.TotalPosts = len(snap.Posts)

	logger.Info("Fetched posts from Graph API", "count", snap.TotalPosts)
	return snap, nil
}

// FetchVideos pulls videos with view counts.
func FetchVideos(creds *credentials.Credentials, limit int) (*VideosSnapshot, error) {
	if !creds.IsValid() {
		return nil, cerrors.AuthError("No Graph API credentials configured")
	}
	if limit <= 0 {
		limit = 100
	}

	var result rawVideoList
	resp, err := GetClient().R().
		SetQueryParams(map[string]string{
			"fields":       videoFields,
			"limit":        fmt.Sprintf("%d", limit),
			"access_token": creds.AccessToken,
		}).
		SetResult(&result).
		Get("/" + creds.PageID + "/videos")
	if err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, graphError(result.Error, resp.StatusCode())
	}
	if !resp.IsSuccess() {
		return nil, cerrors.APIError(fmt.Sprintf("videos request failed: %s", resp.Status()), resp.StatusCode())
	}

	snap := &VideosSnapshot{
		FetchedAt: time.Now().Format(time.RFC3339),
		Videos:    result.Data,
	}
	snap.TotalVideos = len(snap.Videos)
	for _, v := range snap.Videos {
		snap.TotalViews += v.Views
	}

	logger.Info("Fetched videos from Graph API", "count", snap.TotalVideos, "views", snap.TotalViews)
	return snap, nil
}

func processPost(raw rawPost) APIPost {
	p := APIPost{
		ID:           raw.ID,
		Message:      truncate(raw.Message, maxMessageLen),
		CreatedTime:  raw.CreatedTime,
		PermalinkURL: raw.PermalinkURL,
		PostType:     raw.StatusType,
		Reactions:    count(raw.Reactions),
		Comments:     count(raw.Comments),
		Like:         count(raw.Like),
		Love:         count(raw.Love),
		Haha:         count(raw.Haha),
		Wow:          count(raw.Wow),
		Sad:          count(raw.Sad),
		Angry:        count(raw.Angry),
	}
	if p.PostType == "" {
		p.PostType = "unknown"
	}
	if raw.Shares != nil {
		p.Shares = raw.Shares.Count
	}
	p.Engagement = p.Reactions + p.Comments + p.Shares
	return p
}

func count(s *summaryCount) int {
	if s == nil {
		return 0
	}
	return s.Summary.TotalCount
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func graphError(e *apiError, statusCode int) error {
	if e.Code == 190 {
		return cerrors.TokenExpiredError()
	}
	return cerrors.APIError(fmt.Sprintf("Graph API error: %s", e.Message), statusCode)
}
