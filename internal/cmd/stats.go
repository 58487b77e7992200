package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/service"
)

var topCount int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary KPIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter()
		if err != nil {
			return err
		}
		statsService := service.NewStatsService()
		return statsService.ShowSummary(f)
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show top posts by engagement",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter()
		if err != nil {
			return err
		}
		statsService := service.NewStatsService()
		return statsService.ShowTop(f, topCount)
	},
}

var bestTimesCmd = &cobra.Command{
	Use:   "best-times",
	Short: "Show best posting days and time slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter()
		if err != nil {
			return err
		}
		statsService := service.NewStatsService()
		return statsService.ShowBestTimes(f)
	},
}

func init() {
	addFilterFlags(statsCmd)
	addFilterFlags(topCmd)
	addFilterFlags(bestTimesCmd)
	topCmd.Flags().IntVarP(&topCount, "count", "n", 15, "Number of posts to show")
}
