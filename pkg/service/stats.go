package service

import (
	"fmt"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/analytics"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/formatter"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/output"
)

// StatsService prints aggregates to the terminal.
type StatsService struct {
	reports *ReportService
}

// NewStatsService creates a new stats service
func NewStatsService() *StatsService {
	return &StatsService{reports: NewReportService()}
}

// ShowSummary prints the headline KPIs for a filter.
func (ss *StatsService) ShowSummary(f analytics.Filter) error {
	logger.Debug("Showing summary stats")

	report, err := ss.reports.BuildReport(f, 0)
	if err != nil {
		return err
	}
	s := report.Summary

	if output.GetOutputFormat() == output.FormatJSON {
		return formatter.PrintObject(s, "")
	}

	rows := [][]string{
		{"Total Posts", formatter.Number(int64(s.Posts))},
		{"Total Views", formatter.Number(s.Views)},
		{"Total Reach", formatter.Number(s.Reach)},
		{"Total Engagement", formatter.Number(s.Engagement)},
		{"Total Reactions", formatter.Number(s.Reactions)},
		{"Total Comments", formatter.Number(s.Comments)},
		{"Total Shares", formatter.Number(s.Shares)},
		{"Avg Engagement", formatter.NumberF(s.AvgEngagement)},
	}
	ss.printPeriod(report)
	formatter.PrintTable([]string{"Metric", "Value"}, rows)
	return nil
}

// ShowTop prints the top posts by engagement.
func (ss *StatsService) ShowTop(f analytics.Filter, n int) error {
	logger.Debug("Showing top posts", "n", n)

	report, err := ss.reports.BuildReport(f, n)
	if err != nil {
		return err
	}

	if len(report.TopPosts) == 0 {
		fmt.Println("No posts found.")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return formatter.PrintObject(report.TopPosts, "")
	}

	rows := make([][]string, 0, len(report.TopPosts))
	for i := range report.TopPosts {
		p := &report.TopPosts[i]
		rows = append(rows, []string{
			p.DateKey(),
			p.Type,
			clip(p.Message, 50),
			formatter.Number(int64(p.Reactions)),
			formatter.Number(int64(p.Comments)),
			formatter.Number(int64(p.Shares)),
			formatter.Number(int64(p.Engagement)),
		})
	}
	ss.printPeriod(report)
	formatter.PrintTable([]string{"Date", "Type", "Message", "Reactions", "Comments", "Shares", "Engagement"}, rows)
	return nil
}

// ShowBestTimes prints the weekday and time-slot tables.
func (ss *StatsService) ShowBestTimes(f analytics.Filter) error {
	logger.Debug("Showing best posting times")

	report, err := ss.reports.BuildReport(f, 0)
	if err != nil {
		return err
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return formatter.PrintObject(map[string]interface{}{
			"weekdays":   report.Weekdays,
			"best_day":   report.BestDay,
			"time_slots": report.TimeSlots,
			"best_slot":  report.BestSlot,
		}, "")
	}

	ss.printPeriod(report)

	formatter.Bold.Println("Best Posting Days")
	formatter.PrintTable(bucketHeader("Day"), bucketRows(report.Weekdays))
	formatter.PrintSuccess("⭐ Best day: %s", report.BestDay)

	fmt.Println()
	formatter.Bold.Println("Best Posting Times")
	formatter.PrintTable(bucketHeader("Time Slot"), bucketRows(report.TimeSlots))
	formatter.PrintSuccess("⭐ Best time: %s", report.BestSlot)
	return nil
}

func (ss *StatsService) printPeriod(report *analytics.Report) {
	if report.From != "" || report.To != "" {
		formatter.PrintInfo("Period: %s to %s (%s posts)", report.From, report.To,
			formatter.Number(int64(report.Summary.Posts)))
	}
}

func bucketHeader(name string) []string {
	return []string{name, "Posts", "Total Engagement", "Avg Engagement", "Avg Reactions", "Avg Comments"}
}

func bucketRows(buckets []analytics.BucketStats) [][]string {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Name,
			formatter.Number(int64(b.Posts)),
			formatter.Number(b.TotalEngagement),
			formatter.NumberF(b.AvgEngagement),
			formatter.NumberF(b.AvgReactions),
			formatter.NumberF(b.AvgComments),
		})
	}
	return rows
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
