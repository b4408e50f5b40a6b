package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ribpatch/pkg/errors"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ribpatch.

Bash:
  $ source <(ribpatch completion bash)

Zsh:
  $ ribpatch completion zsh > "${fpath[1]}/_ribpatch"

Fish:
  $ ribpatch completion fish > ~/.config/fish/completions/ribpatch.fish

PowerShell:
  PS> ribpatch completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := exactArgs(1)(cmd, args); err != nil {
				return err
			}
			if !slices.Contains(completionShells, args[0]) {
				return errors.New(errors.ErrCodeUsage, "unsupported shell %q (want one of %v)", args[0], completionShells)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
