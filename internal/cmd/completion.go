package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for bash, zsh, fish, or powershell.

To load completions in your shell session, run:

Bash:
  source <(juan365 completion bash)

Zsh:
  source <(juan365 completion zsh)

Fish:
  juan365 completion fish | source

PowerShell:
  juan365 completion powershell | Out-String | Invoke-Expression

To load completions for every new session, execute once:

Bash:
  juan365 completion bash > /etc/bash_completion.d/juan365

Zsh:
  juan365 completion zsh > /usr/local/share/zsh/site-functions/_juan365

Fish:
  juan365 completion fish > ~/.config/fish/completions/juan365.fish

PowerShell:
  juan365 completion powershell >> $PROFILE
`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		}
		return fmt.Errorf("unknown shell: %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
