package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for tbl.

Bash:
  $ source <(tbl completion bash)

Zsh:
  $ tbl completion zsh > "${fpath[1]}/_tbl"

Fish:
  $ tbl completion fish > ~/.config/fish/completions/tbl.fish

PowerShell:
  PS> tbl completion powershell | Out-String | Invoke-Expression`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := stdoutFromContext(cmd.Context())
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q (expected bash, zsh, fish or powershell)", args[0])
			}
		},
	}
}
