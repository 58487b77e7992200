package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	cerrors "github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/errors"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

// Canonical header order for the merged export.
var mergedHeader = []string{
	"Post ID", "Title", "Publish time", "Post type", "Permalink",
	"Reactions", "Comments", "Shares", "Views", "Reach", "Total clicks",
}

// Merge combines every CSV in the exports directory into the canonical merged
// file, deduplicating by post ID. Files are applied oldest first so the most
// recent export wins a conflict. Returns the number of distinct posts written.
func (l *Loader) Merge() (int, error) {
	files, err := l.ListCSVs()
	if err != nil {
		return 0, err
	}

	merged := filepath.Join(l.Dir, l.MergedFile)
	var sources []string
	for _, f := range files {
		if f != merged {
			sources = append(sources, f)
		}
	}
	if len(sources) == 0 {
		return 0, cerrors.NoExportsError(l.Dir)
	}

	sort.Slice(sources, func(i, j int) bool {
		return modTime(sources[i]).Before(modTime(sources[j]))
	})

	byID := map[string]Post{}
	var order []string
	for _, src := range sources {
		posts, err := l.LoadFile(src)
		if err != nil {
			return 0, err
		}
		for _, p := range posts {
			if _, seen := byID[p.ID]; !seen {
				order = append(order, p.ID)
			}
			byID[p.ID] = p
		}
	}

	out, err := os.Create(merged)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	offset := time.Duration(l.HourOffset) * time.Hour

	w := csv.NewWriter(out)
	if err := w.Write(mergedHeader); err != nil {
		return 0, err
	}
	for _, id := range order {
		p := byID[id]
		publish := ""
		if p.HasTime() {
			// Undo the hour offset so the merged file round-trips
			publish = p.PublishedAt.Add(-offset).Format("01/02/2006 15:04")
		}
		row := []string{
			p.ID, p.Message, publish, p.Type, p.Permalink,
			strconv.Itoa(p.Reactions), strconv.Itoa(p.Comments), strconv.Itoa(p.Shares),
			strconv.Itoa(p.Views), strconv.Itoa(p.Reach), strconv.Itoa(p.TotalClicks),
		}
		if err := w.Write(row); err != nil {
			return 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}

	logger.Info("Merged exports", "sources", len(sources), "posts", len(order), "out", merged)
	return len(order), nil
}
