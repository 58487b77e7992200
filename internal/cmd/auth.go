package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/service"
)

var authPageID string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Graph API credentials",
	Long:  "Store, inspect and remove the page ID and access token used by 'fetch'",
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store page ID and access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		authService := service.NewAuthService()
		return authService.Set(authPageID)
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		authService := service.NewAuthService()
		return authService.Status()
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		authService := service.NewAuthService()
		return authService.Clear()
	},
}

func init() {
	authSetCmd.Flags().StringVar(&authPageID, "page-id", "", "Facebook page ID (prompted when omitted)")

	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authClearCmd)
}
