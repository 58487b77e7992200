package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/service"
)

var fetchLimit int

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch Graph API snapshots",
	Long: `Pull page info, recent posts (with per-emotion reaction counts) and
videos from the Facebook Graph API into the data directory. The dashboard
picks the snapshots up on the next generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetchService := service.NewFetchService()
		return fetchService.FetchAll(fetchLimit)
	},
}

func init() {
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 0, "Max posts/videos to fetch (default from config)")
}
