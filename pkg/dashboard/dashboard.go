package dashboard

import (
	"embed"
	"encoding/base64"
	"html/template"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/analytics"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/formatter"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/graph"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/output"
)

//go:embed template.html
var templateFS embed.FS

// APITotals are page-overview numbers computed from the posts snapshot.
type APITotals struct {
	Posts     int
	Reactions int
	Comments  int
	Shares    int
}

// VideoRow is one row of the top-videos table.
type VideoRow struct {
	Title   string
	Views   int
	Length  float64
	Created string
	Link    string
}

// Data is everything the dashboard template consumes.
type Data struct {
	Title       string
	LogoDataURI template.URL
	GeneratedAt string

	Page       *graph.PageInfo
	APITotals  *APITotals
	VideoViews int
	Videos     []VideoRow

	Report *analytics.Report

	// Inlined datasets for the client-side filter script.
	PostsJSON  template.JS
	VideosJSON template.JS
}

// Build assembles the template data from a report and optional API snapshots.
func Build(report *analytics.Report, page *graph.PageInfo, posts *graph.PostsSnapshot, videos *graph.VideosSnapshot, title, logoPath string) (*Data, error) {
	d := &Data{
		Title:       title,
		GeneratedAt: report.GeneratedAt.Format("2006-01-02 15:04"),
		Page:        page,
		Report:      report,
	}

	if logoPath != "" {
		if uri := logoDataURI(logoPath); uri != "" {
			d.LogoDataURI = template.URL(uri)
		}
	}

	if posts != nil && len(posts.Posts) > 0 {
		totals := &APITotals{Posts: len(posts.Posts)}
		for _, p := range posts.Posts {
			totals.Reactions += p.Reactions
			totals.Comments += p.Comments
			totals.Shares += p.Shares
		}
		d.APITotals = totals
	}

	if videos != nil && len(videos.Videos) > 0 {
		d.VideoViews = videos.TotalViews
		d.Videos = topVideos(videos.Videos, 10)
	}

	postsJSON, err := output.FormatAsJSON(report.Posts)
	if err != nil {
		return nil, err
	}
	d.PostsJSON = template.JS(postsJSON)

	videoList := []VideoRow{}
	if d.Videos != nil {
		videoList = d.Videos
	}
	videosJSON, err := output.FormatAsJSON(videoList)
	if err != nil {
		return nil, err
	}
	d.VideosJSON = template.JS(videosJSON)

	return d, nil
}

// Render writes the dashboard HTML.
func Render(w io.Writer, d *Data) error {
	tmpl, err := template.New("template.html").Funcs(funcMap()).ParseFS(templateFS, "template.html")
	if err != nil {
		return err
	}
	return tmpl.Execute(w, d)
}

// WriteFile renders the dashboard to a file.
func WriteFile(path string, d *Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Render(f, d); err != nil {
		return err
	}
	logger.Info("Wrote dashboard", "path", path, "posts", d.Report.Summary.Posts)
	return nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"comma":  func(n int64) string { return formatter.Number(n) },
		"commai": func(n int) string { return formatter.Number(int64(n)) },
		"commaf": func(f float64) string { return formatter.NumberF(f) },
		"clip": func(s string, n int) string {
			runes := []rune(s)
			if len(runes) <= n {
				return s
			}
			return string(runes[:n]) + "…"
		},
		"shortdate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
	}
}

func logoDataURI(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Logo not found", "path", path)
		return ""
	}
	mime := "image/jpeg"
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func topVideos(videos []graph.Video, n int) []VideoRow {
	sorted := make([]graph.Video, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Views > sorted[j].Views })
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	rows := make([]VideoRow, 0, len(sorted))
	for _, v := range sorted {
		title := v.Description
		if title == "" {
			title = v.Title
		}
		if title == "" {
			title = "Untitled"
		}
		runes := []rune(title)
		if len(runes) > 50 {
			title = string(runes[:50])
		}

		created := v.CreatedTime
		if t, err := time.Parse(time.RFC3339, v.CreatedTime); err == nil {
			created = t.Format("2006-01-02")
		}

		link := v.PermalinkURL
		// The API returns site-relative permalinks for videos
		if strings.HasPrefix(link, "/") {
			link = "https://www.facebook.com" + link
		}

		rows = append(rows, VideoRow{
			Title:   title,
			Views:   v.Views,
			Length:  v.Length,
			Created: created,
			Link:    link,
		})
	}
	return rows
}
