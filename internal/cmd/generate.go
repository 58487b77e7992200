package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/service"
)

var (
	generateExports string
	generateData    string
	generateOut     string
	generateTop     int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the HTML dashboard",
	Long: `Load the CSV exports (plus any Graph API snapshots), aggregate
engagement metrics, and write a self-contained interactive HTML dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyPathFlags()

		f, err := buildFilter()
		if err != nil {
			return err
		}

		out := generateOut
		if out == "" {
			out = config.GetString("dashboard.out")
		}
		top := generateTop
		if top <= 0 {
			top = config.GetInt("dashboard.top_posts")
		}

		reportService := service.NewReportService()
		return reportService.Generate(f, top, out)
	},
}

func init() {
	addFilterFlags(generateCmd)
	generateCmd.Flags().StringVar(&generateExports, "exports", "", "Exports directory (default from config)")
	generateCmd.Flags().StringVar(&generateData, "data", "", "Data directory for API snapshots (default from config)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output HTML path (default from config)")
	generateCmd.Flags().IntVar(&generateTop, "top", 0, "Number of top posts to include (default from config)")
}

// applyPathFlags pushes path overrides into the config so every service
// resolves the same directories.
func applyPathFlags() {
	if generateExports != "" {
		config.Set("exports.dir", generateExports)
	}
	if generateData != "" {
		config.Set("data.dir", generateData)
	}
}
