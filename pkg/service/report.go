package service

import (
	"errors"
	"fmt"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/analytics"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/dashboard"
	cerrors "github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/errors"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/export"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/formatter"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/graph"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

// ReportService builds reports and renders the dashboard.
type ReportService struct {
	loader  *export.Loader
	dataDir string
}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{
		loader:  export.NewLoader(),
		dataDir: config.GetString("data.dir"),
	}
}

// LoadPosts loads the export posts and enriches them with any API snapshot.
// When no CSV export exists but a posts snapshot does, the snapshot itself
// becomes the post set, shifted from UTC to Manila time.
func (rs *ReportService) LoadPosts() ([]export.Post, *graph.PostsSnapshot, error) {
	snap, err := graph.LoadPosts(rs.dataDir)
	if err != nil {
		logger.Warn("Could not read posts snapshot", "err", err)
		snap = nil
	}

	posts, err := rs.loader.Load()
	if err != nil {
		var cliErr *cerrors.CLIError
		if errors.As(err, &cliErr) && cliErr.Type == cerrors.ErrorTypeNoExports &&
			snap != nil && len(snap.Posts) > 0 {
			logger.Info("No CSV exports, falling back to API snapshot", "posts", len(snap.Posts))
			return snap.ExportPosts(config.GetInt("api.hour_offset")), snap, nil
		}
		return nil, nil, err
	}

	if snap != nil {
		graph.Enrich(posts, snap)
	}
	return posts, snap, nil
}

// BuildReport loads, filters and aggregates.
func (rs *ReportService) BuildReport(f analytics.Filter, topN int) (*analytics.Report, error) {
	posts, _, err := rs.LoadPosts()
	if err != nil {
		return nil, err
	}
	return analytics.Build(posts, f, topN), nil
}

// Generate renders the dashboard HTML for a filter.
func (rs *ReportService) Generate(f analytics.Filter, topN int, outPath string) error {
	logger.Debug("Generating dashboard", "out", outPath)

	posts, postsSnap, err := rs.LoadPosts()
	if err != nil {
		return err
	}

	report := analytics.Build(posts, f, topN)

	pageInfo, err := graph.LoadPageInfo(rs.dataDir)
	if err != nil {
		logger.Warn("Could not read page info snapshot", "err", err)
	}
	videos, err := graph.LoadVideos(rs.dataDir)
	if err != nil {
		logger.Warn("Could not read videos snapshot", "err", err)
	}

	data, err := dashboard.Build(report, pageInfo, postsSnap, videos,
		config.GetString("dashboard.title"), config.GetString("dashboard.logo"))
	if err != nil {
		return fmt.Errorf("failed to assemble dashboard: %w", err)
	}

	if err := dashboard.WriteFile(outPath, data); err != nil {
		return fmt.Errorf("failed to write dashboard: %w", err)
	}

	formatter.PrintSuccess("✓ Dashboard written to %s (%s posts)", outPath, formatter.Number(int64(report.Summary.Posts)))
	return nil
}

// MergeExports combines the export CSVs into the canonical merged file.
func (rs *ReportService) MergeExports() error {
	n, err := rs.loader.Merge()
	if err != nil {
		return fmt.Errorf("failed to merge exports: %w", err)
	}
	formatter.PrintSuccess("✓ Merged %s posts into %s", formatter.Number(int64(n)), rs.loader.MergedFile)
	return nil
}
