package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	cerrors "github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/errors"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

// Export column headers mapped to canonical field names.
var columnMapping = map[string]string{
	"Post ID":      "post_id",
	"Title":        "message",
	"Publish time": "publish_time",
	"Post type":    "post_type",
	"Permalink":    "permalink",
	"Reactions":    "reactions",
	"Comments":     "comments",
	"Shares":       "shares",
	"Views":        "views",
	"Reach":        "reach",
	"Total clicks": "total_clicks",
}

// Publish time layouts seen in exports (zero-padded and not).
var publishTimeLayouts = []string{
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"01/02/2006 15:04:05",
}

// Loader reads Meta post-level CSV exports from a directory.
type Loader struct {
	Dir        string
	MergedFile string
	HourOffset int
}

// NewLoader builds a loader from configuration.
func NewLoader() *Loader {
	return &Loader{
		Dir:        config.GetString("exports.dir"),
		MergedFile: config.GetString("exports.merged_file"),
		HourOffset: config.GetInt("exports.hour_offset"),
	}
}

// Load reads the merged export if present, otherwise the newest CSV in the
// exports directory.
func (l *Loader) Load() ([]Post, error) {
	path, err := l.PickFile()
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path)
}

// PickFile resolves which export file to read.
func (l *Loader) PickFile() (string, error) {
	merged := filepath.Join(l.Dir, l.MergedFile)
	if _, err := os.Stat(merged); err == nil {
		return merged, nil
	}

	files, err := l.ListCSVs()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", cerrors.NoExportsError(l.Dir)
	}

	// Newest export wins
	sort.Slice(files, func(i, j int) bool {
		return modTime(files[i]).After(modTime(files[j]))
	})
	return files[0], nil
}

// ListCSVs returns the CSV files in the exports directory.
func (l *Loader) ListCSVs() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.NoExportsError(l.Dir)
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(l.Dir, e.Name()))
		}
	}
	return files, nil
}

// LoadFile parses a single export CSV into posts.
func (l *Loader) LoadFile(path string) ([]Post, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.FileNotFoundError(path)
		}
		return nil, err
	}
	defer f.Close()

	posts, err := l.parse(f)
	if err != nil {
		return nil, cerrors.InvalidFormatError(path, err.Error())
	}

	logger.Info("Loaded export", "file", path, "posts", len(posts))
	return posts, nil
}

func (l *Loader) parse(r io.Reader) ([]Post, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := map[string]int{}
	for i, col := range header {
		if name, ok := columnMapping[strings.TrimSpace(col)]; ok {
			index[name] = i
		}
	}
	if _, ok := index["post_id"]; !ok {
		return nil, fmt.Errorf("missing required column %q", "Post ID")
	}

	var posts []Post
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		p := Post{
			ID:          strings.TrimSpace(field("post_id")),
			Message:     field("message"),
			Permalink:   strings.TrimSpace(field("permalink")),
			Type:        CleanType(field("post_type")),
			Reactions:   coerceInt(field("reactions")),
			Comments:    coerceInt(field("comments")),
			Shares:      coerceInt(field("shares")),
			Views:       coerceInt(field("views")),
			Reach:       coerceInt(field("reach")),
			TotalClicks: coerceInt(field("total_clicks")),
		}
		if p.ID == "" {
			continue
		}
		p.Engagement = p.Reactions + p.Comments + p.Shares
		p.PublishedAt = l.parseTime(field("publish_time"))

		posts = append(posts, p)
	}

	return posts, nil
}

// parseTime parses an export publish time and applies the hour offset.
// Unparseable values yield the zero time.
func (l *Loader) parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range publishTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Add(time.Duration(l.HourOffset) * time.Hour)
		}
	}
	logger.Debug("Unparseable publish time", "value", value)
	return time.Time{}
}

// coerceInt parses a metric cell. Blanks, dashes and garbage become 0,
// matching how the exports write missing metrics.
func coerceInt(value string) int {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" {
		return 0
	}
	value = strings.ReplaceAll(value, ",", "")
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
