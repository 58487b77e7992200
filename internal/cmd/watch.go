package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/service"
)

var (
	watchOut string
	watchTop int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the dashboard when exports change",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter()
		if err != nil {
			return err
		}

		out := watchOut
		if out == "" {
			out = config.GetString("dashboard.out")
		}
		top := watchTop
		if top <= 0 {
			top = config.GetInt("dashboard.top_posts")
		}

		watchService := service.NewWatchService()
		return watchService.Watch(f, top, out)
	},
}

func init() {
	addFilterFlags(watchCmd)
	watchCmd.Flags().StringVar(&watchOut, "out", "", "Output HTML path (default from config)")
	watchCmd.Flags().IntVar(&watchTop, "top", 0, "Number of top posts to include (default from config)")
}
