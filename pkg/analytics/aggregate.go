package analytics

import (
	"sort"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/export"
)

// Summary holds the headline KPIs for a filtered post set.
type Summary struct {
	Posts         int     `json:"posts"`
	Views         int64   `json:"views"`
	Reach         int64   `json:"reach"`
	Engagement    int64   `json:"engagement"`
	Reactions     int64   `json:"reactions"`
	Comments      int64   `json:"comments"`
	Shares        int64   `json:"shares"`
	TotalClicks   int64   `json:"total_clicks"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// TypeStats aggregates metrics per cleaned post type.
type TypeStats struct {
	Type       string `json:"type"`
	Posts      int    `json:"posts"`
	Reactions  int64  `json:"reactions"`
	Comments   int64  `json:"comments"`
	Shares     int64  `json:"shares"`
	Engagement int64  `json:"engagement"`
}

// DailyStats is one point of the daily performance series.
type DailyStats struct {
	Date       string `json:"date"`
	Views      int64  `json:"views"`
	Reach      int64  `json:"reach"`
	Engagement int64  `json:"engagement"`
	Reactions  int64  `json:"reactions"`
	Comments   int64  `json:"comments"`
}

// MonthlyStats is one point of the monthly engagement series.
type MonthlyStats struct {
	Month      string `json:"month"`
	Engagement int64  `json:"engagement"`
	Posts      int    `json:"posts"`
}

// BucketStats is a row of the weekday or time-slot tables.
type BucketStats struct {
	Name            string  `json:"name"`
	Posts           int     `json:"posts"`
	TotalEngagement int64   `json:"total_engagement"`
	AvgEngagement   float64 `json:"avg_engagement"`
	AvgReactions    float64 `json:"avg_reactions"`
	AvgComments     float64 `json:"avg_comments"`
}

// ReactionBreakdown totals the per-emotion reaction counts over posts that
// carry breakdown data.
type ReactionBreakdown struct {
	Like  int64 `json:"like"`
	Love  int64 `json:"love"`
	Haha  int64 `json:"haha"`
	Wow   int64 `json:"wow"`
	Sad   int64 `json:"sad"`
	Angry int64 `json:"angry"`
	Total int64 `json:"total"`
	Posts int   `json:"posts"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// Summarize computes the headline KPIs.
func Summarize(posts []export.Post) Summary {
	var s Summary
	s.Posts = len(posts)
	for i := range posts {
		p := &posts[i]
		s.Views += int64(p.Views)
		s.Reach += int64(p.Reach)
		s.Engagement += int64(p.Engagement)
		s.Reactions += int64(p.Reactions)
		s.Comments += int64(p.Comments)
		s.Shares += int64(p.Shares)
		s.TotalClicks += int64(p.TotalClicks)
	}
	if s.Posts > 0 {
		s.AvgEngagement = float64(s.Engagement) / float64(s.Posts)
	}
	return s
}

// ByType groups metrics per post type, highest engagement first.
func ByType(posts []export.Post) []TypeStats {
	byType := map[string]*TypeStats{}
	for i := range posts {
		p := &posts[i]
		ts, ok := byType[p.Type]
		if !ok {
			ts = &TypeStats{Type: p.Type}
			byType[p.Type] = ts
		}
		ts.Posts++
		ts.Reactions += int64(p.Reactions)
		ts.Comments += int64(p.Comments)
		ts.Shares += int64(p.Shares)
		ts.Engagement += int64(p.Engagement)
	}

	out := make([]TypeStats, 0, len(byType))
	for _, ts := range byType {
		out = append(out, *ts)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Engagement != out[j].Engagement {
			return out[i].Engagement > out[j].Engagement
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// Daily builds the daily series, ascending by date. Posts without a parsed
// publish time are excluded.
func Daily(posts []export.Post) []DailyStats {
	byDate := map[string]*DailyStats{}
	for i := range posts {
		p := &posts[i]
		if !p.HasTime() {
			continue
		}
		key := p.DateKey()
		ds, ok := byDate[key]
		if !ok {
			ds = &DailyStats{Date: key}
			byDate[key] = ds
		}
		ds.Views += int64(p.Views)
		ds.Reach += int64(p.Reach)
		ds.Engagement += int64(p.Engagement)
		ds.Reactions += int64(p.Reactions)
		ds.Comments += int64(p.Comments)
	}

	out := make([]DailyStats, 0, len(byDate))
	for _, ds := range byDate {
		out = append(out, *ds)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Monthly builds the monthly series, ascending by month.
func Monthly(posts []export.Post) []MonthlyStats {
	byMonth := map[string]*MonthlyStats{}
	for i := range posts {
		p := &posts[i]
		if !p.HasTime() {
			continue
		}
		key := p.MonthKey()
		ms, ok := byMonth[key]
		if !ok {
			ms = &MonthlyStats{Month: key}
			byMonth[key] = ms
		}
		ms.Engagement += int64(p.Engagement)
		ms.Posts++
	}

	out := make([]MonthlyStats, 0, len(byMonth))
	for _, ms := range byMonth {
		out = append(out, *ms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ByWeekday builds the Monday..Sunday table and names the best day by average
// engagement. Days without posts stay in the table with zeros.
func ByWeekday(posts []export.Post) ([]BucketStats, string) {
	return bucketize(posts, export.WeekdayOrder, func(p *export.Post) string {
		return p.WeekdayName()
	})
}

// ByTimeSlot builds the posting-slot table and names the best slot.
func ByTimeSlot(posts []export.Post) ([]BucketStats, string) {
	return bucketize(posts, export.SlotOrder, func(p *export.Post) string {
		return p.TimeSlot()
	})
}

func bucketize(posts []export.Post, order []string, key func(*export.Post) string) ([]BucketStats, string) {
	byName := map[string]*BucketStats{}
	for _, name := range order {
		byName[name] = &BucketStats{Name: name}
	}

	for i := range posts {
		p := &posts[i]
		if !p.HasTime() {
			continue
		}
		bs, ok := byName[key(p)]
		if !ok {
			continue
		}
		bs.Posts++
		bs.TotalEngagement += int64(p.Engagement)
		bs.AvgReactions += float64(p.Reactions)
		bs.AvgComments += float64(p.Comments)
	}

	out := make([]BucketStats, 0, len(order))
	best := ""
	bestAvg := -1.0
	for _, name := range order {
		bs := byName[name]
		if bs.Posts > 0 {
			bs.AvgEngagement = float64(bs.TotalEngagement) / float64(bs.Posts)
			bs.AvgReactions /= float64(bs.Posts)
			bs.AvgComments /= float64(bs.Posts)
			if bs.AvgEngagement > bestAvg {
				bestAvg = bs.AvgEngagement
				best = name
			}
		}
		out = append(out, *bs)
	}
	return out, best
}

// TopPosts returns the n posts with the highest engagement.
func TopPosts(posts []export.Post, n int) []export.Post {
	sorted := make([]export.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Engagement > sorted[j].Engagement
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Reactions totals the per-emotion breakdown. The second return is false when
// no post carries breakdown data, matching how the dashboard gates the section.
func Reactions(posts []export.Post) (ReactionBreakdown, bool) {
	var rb ReactionBreakdown
	var min, max string
	for i := range posts {
		p := &posts[i]
		if !p.HasBreakdown {
			continue
		}
		rb.Posts++
		rb.Like += int64(p.Like)
		rb.Love += int64(p.Love)
		rb.Haha += int64(p.Haha)
		rb.Wow += int64(p.Wow)
		rb.Sad += int64(p.Sad)
		rb.Angry += int64(p.Angry)
		if p.HasTime() {
			key := p.DateKey()
			if min == "" || key < min {
				min = key
			}
			if key > max {
				max = key
			}
		}
	}
	rb.Total = rb.Like + rb.Love + rb.Haha + rb.Wow + rb.Sad + rb.Angry
	rb.From, rb.To = min, max
	return rb, rb.Posts > 0 && rb.Total > 0
}
