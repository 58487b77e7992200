package graph

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/export"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

// Snapshot file names inside the data directory.
const (
	PageInfoFile = "page_info.json"
	PostsFile    = "posts.json"
	VideosFile   = "videos.json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SaveSnapshot writes a snapshot as indented JSON inside dir.
func SaveSnapshot(dir, name string, v interface{}) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0644)
}

// LoadPageInfo reads page_info.json. A missing file is not an error.
func LoadPageInfo(dir string) (*PageInfo, error) {
	var info PageInfo
	ok, err := loadSnapshot(dir, PageInfoFile, &info)
	if err != nil || !ok {
		return nil, err
	}
	return &info, nil
}

// LoadPosts reads posts.json. A missing file is not an error.
func LoadPosts(dir string) (*PostsSnapshot, error) {
	var snap PostsSnapshot
	ok, err := loadSnapshot(dir, PostsFile, &snap)
	if err != nil || !ok {
		return nil, err
	}
	return &snap, nil
}

// LoadVideos reads videos.json. A missing file is not an error.
func LoadVideos(dir string) (*VideosSnapshot, error) {
	var snap VideosSnapshot
	ok, err := loadSnapshot(dir, VideosFile, &snap)
	if err != nil || !ok {
		return nil, err
	}
	return &snap, nil
}

func loadSnapshot(dir, name string, v interface{}) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// Graph API created_time formats ("+0000" numeric zone, sometimes RFC3339).
var createdTimeLayouts = []string{"2006-01-02T15:04:05-0700", time.RFC3339}

// ExportPosts converts the API snapshot into posts the aggregation pipeline
// can consume, so a dashboard can still be built when no CSV export exists.
// API timestamps are UTC; hourOffset shifts them to Manila time. The posts
// endpoint carries no reach or view counts, so those stay zero.
func (s *PostsSnapshot) ExportPosts(hourOffset int) []export.Post {
	offset := time.Duration(hourOffset) * time.Hour
	posts := make([]export.Post, 0, len(s.Posts))
	for i := range s.Posts {
		ap := &s.Posts[i]
		p := export.Post{
			ID:         ap.ID,
			Message:    ap.Message,
			Permalink:  ap.PermalinkURL,
			Type:       export.CleanType(ap.PostType),
			Reactions:  ap.Reactions,
			Comments:   ap.Comments,
			Shares:     ap.Shares,
			Engagement: ap.Engagement,
			Like:       ap.Like,
			Love:       ap.Love,
			Haha:       ap.Haha,
			Wow:        ap.Wow,
			Sad:        ap.Sad,
			Angry:      ap.Angry,
		}
		p.HasBreakdown = ap.Like+ap.Love+ap.Haha+ap.Wow+ap.Sad+ap.Angry > 0
		p.PublishedAt = parseCreatedTime(ap.CreatedTime, offset)
		posts = append(posts, p)
	}
	return posts
}

func parseCreatedTime(value string, offset time.Duration) time.Time {
	for _, layout := range createdTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Add(offset)
		}
	}
	return time.Time{}
}

// Enrich copies per-emotion reaction counts from an API snapshot onto CSV
// posts. API IDs look like "<page>_<post>" while the export may carry only
// the second part, so both forms are indexed.
func Enrich(posts []export.Post, snap *PostsSnapshot) int {
	if snap == nil || len(snap.Posts) == 0 {
		return 0
	}

	byID := map[string]*APIPost{}
	for i := range snap.Posts {
		ap := &snap.Posts[i]
		byID[ap.ID] = ap
		if idx := strings.LastIndex(ap.ID, "_"); idx >= 0 {
			byID[ap.ID[idx+1:]] = ap
		}
	}

	matched := 0
	for i := range posts {
		ap, ok := byID[posts[i].ID]
		if !ok {
			continue
		}
		posts[i].Like = ap.Like
		posts[i].Love = ap.Love
		posts[i].Haha = ap.Haha
		posts[i].Wow = ap.Wow
		posts[i].Sad = ap.Sad
		posts[i].Angry = ap.Angry
		posts[i].HasBreakdown = ap.Like+ap.Love+ap.Haha+ap.Wow+ap.Sad+ap.Angry > 0
		if posts[i].HasBreakdown {
			matched++
		}
	}

	logger.Debug("Enriched posts with reaction breakdown", "matched", matched)
	return matched
}
