package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/export"
)

// Filter narrows a post set by inclusive date range and post type.
// Zero times mean unbounded; an empty or "All" type matches everything.
type Filter struct {
	From     time.Time
	To       time.Time
	PostType string
}

// Period preset names accepted by PresetFilter.
var presetDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
	"60d": 60,
	"90d": 90,
}

// PresetFilter resolves a named time period against a reference day. The
// reference's calendar date is taken in its own zone, so "today" means the
// local day, not the UTC one.
func PresetFilter(name string, today time.Time) (Filter, error) {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "", "all", "all-time":
		return Filter{}, nil
	case "today":
		return Filter{From: day, To: day}, nil
	case "yesterday":
		y := day.AddDate(0, 0, -1)
		return Filter{From: y, To: y}, nil
	}

	if days, ok := presetDays[name]; ok {
		return Filter{From: day.AddDate(0, 0, -days), To: day}, nil
	}
	return Filter{}, fmt.Errorf("unknown period %q (use all, today, yesterday, 7d, 14d, 30d, 60d, 90d)", name)
}

// Clamp bounds the filter range to the dataset's min and max dates.
func (f Filter) Clamp(posts []export.Post) Filter {
	min, max := DateBounds(posts)
	if min.IsZero() {
		return f
	}
	if f.From.IsZero() || f.From.Before(min) {
		f.From = min
	}
	if f.To.IsZero() || f.To.After(max) {
		f.To = max
	}
	return f
}

// Matches reports whether a post passes the filter.
func (f Filter) Matches(p *export.Post) bool {
	if f.PostType != "" && !strings.EqualFold(f.PostType, "All") && p.Type != f.PostType {
		return false
	}
	if f.From.IsZero() && f.To.IsZero() {
		return true
	}
	if !p.HasTime() {
		return false
	}
	day := p.PublishedAt.Truncate(24 * time.Hour)
	if !f.From.IsZero() && day.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && day.After(f.To) {
		return false
	}
	return true
}

// Apply returns the posts passing the filter.
func Apply(posts []export.Post, f Filter) []export.Post {
	out := make([]export.Post, 0, len(posts))
	for i := range posts {
		if f.Matches(&posts[i]) {
			out = append(out, posts[i])
		}
	}
	return out
}

// DateBounds returns the earliest and latest publish dates in the set,
// ignoring posts without a parsed time.
func DateBounds(posts []export.Post) (time.Time, time.Time) {
	var min, max time.Time
	for i := range posts {
		if !posts[i].HasTime() {
			continue
		}
		day := posts[i].PublishedAt.Truncate(24 * time.Hour)
		if min.IsZero() || day.Before(min) {
			min = day
		}
		if max.IsZero() || day.After(max) {
			max = day
		}
	}
	return min, max
}

// PostTypes returns the distinct cleaned post types, sorted.
func PostTypes(posts []export.Post) []string {
	seen := map[string]bool{}
	var types []string
	for i := range posts {
		if !seen[posts[i].Type] {
			seen[posts[i].Type] = true
			types = append(types, posts[i].Type)
		}
	}
	sort.Strings(types)
	return types
}
