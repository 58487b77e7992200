package service

import (
	"fmt"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/credentials"
	cerrors "github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/errors"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/formatter"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/graph"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

// FetchService pulls Graph API snapshots into the data directory.
type FetchService struct {
	dataDir string
}

// NewFetchService creates a new fetch service
func NewFetchService() *FetchService {
	return &FetchService{dataDir: config.GetString("data.dir")}
}

// FetchAll pulls the page, posts and videos snapshots.
func (fs *FetchService) FetchAll(limit int) error {
	creds, err := credentials.Load()
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}
	if !creds.IsValid() {
		return cerrors.AuthError("No Graph API credentials configured")
	}
	if limit <= 0 {
		limit = config.GetInt("api.post_limit")
	}

	logger.Debug("Fetching Graph API snapshots", "limit", limit)

	info, err := graph.FetchPageInfo(creds)
	if err != nil {
		return fmt.Errorf("failed to fetch page info: %w", err)
	}
	if err := graph.SaveSnapshot(fs.dataDir, graph.PageInfoFile, info); err != nil {
		return err
	}
	formatter.PrintSuccess("✓ Page info saved (%s, %s followers)", info.Name, formatter.Number(int64(info.FanCount)))

	posts, err := graph.FetchPosts(creds, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch posts: %w", err)
	}
	if err := graph.SaveSnapshot(fs.dataDir, graph.PostsFile, posts); err != nil {
		return err
	}
	formatter.PrintSuccess("✓ %s posts saved", formatter.Number(int64(posts.TotalPosts)))

	videos, err := graph.FetchVideos(creds, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch videos: %w", err)
	}
	if err := graph.SaveSnapshot(fs.dataDir, graph.VideosFile, videos); err != nil {
		return err
	}
	formatter.PrintSuccess("✓ %s videos saved (%s total views)",
		formatter.Number(int64(videos.TotalVideos)), formatter.Number(int64(videos.TotalViews)))

	return nil
}
