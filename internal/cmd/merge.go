package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/service"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge all CSV exports into the canonical merged file",
	Long: `Combine every CSV in the exports directory into one merged export,
deduplicating by post ID. The most recent export wins a conflict.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reportService := service.NewReportService()
		return reportService.MergeExports()
	},
}
