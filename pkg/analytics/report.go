package analytics

import (
	"sort"
	"time"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/export"
)

// Report bundles every aggregate the dashboard and the terminal commands
// consume, computed over one filtered post set.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	PostType    string    `json:"post_type"`

	Summary   Summary        `json:"summary"`
	ByType    []TypeStats    `json:"by_type"`
	Daily     []DailyStats   `json:"daily"`
	Monthly   []MonthlyStats `json:"monthly"`
	Weekdays  []BucketStats  `json:"weekdays"`
	BestDay   string         `json:"best_day"`
	TimeSlots []BucketStats  `json:"time_slots"`
	BestSlot  string         `json:"best_slot"`

	Breakdown    ReactionBreakdown `json:"reaction_breakdown"`
	HasBreakdown bool              `json:"has_reaction_breakdown"`

	TopN     int           `json:"top_n"`
	TopPosts []export.Post `json:"top_posts"`
	Posts    []export.Post `json:"posts"`

	PostTypes []string `json:"post_types"`
}

// Build filters the posts and computes the full report. topN bounds the
// top-posts table; the all-posts table keeps the filtered set newest first.
func Build(posts []export.Post, f Filter, topN int) *Report {
	f = f.Clamp(posts)
	filtered := Apply(posts, f)

	r := &Report{
		GeneratedAt: time.Now(),
		PostType:    f.PostType,
		Summary:     Summarize(filtered),
		ByType:      ByType(filtered),
		Daily:       Daily(filtered),
		Monthly:     Monthly(filtered),
		TopN:        topN,
		TopPosts:    TopPosts(filtered, topN),
		PostTypes:   PostTypes(posts),
	}
	if !f.From.IsZero() {
		r.From = f.From.Format("2006-01-02")
	}
	if !f.To.IsZero() {
		r.To = f.To.Format("2006-01-02")
	}

	r.Weekdays, r.BestDay = ByWeekday(filtered)
	r.TimeSlots, r.BestSlot = ByTimeSlot(filtered)
	r.Breakdown, r.HasBreakdown = Reactions(filtered)

	// All-posts table, newest first
	r.Posts = sortByDateDesc(filtered)

	return r
}

func sortByDateDesc(posts []export.Post) []export.Post {
	sorted := make([]export.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return sorted
}
