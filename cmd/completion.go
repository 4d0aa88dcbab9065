package cmd

import (
	"fmt"

	"github.com/msalah0e/rskeys/internal/render"
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts.
func completionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate completion scripts for your shell.

  # Bash (add to ~/.bashrc)
  eval "$(rskeys completion bash)"

  # Zsh (add to ~/.zshrc)
  eval "$(rskeys completion zsh)"

  # Fish
  rskeys completion fish | source`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q (want bash, zsh, fish or powershell)", args[0])
			}
		},
	}
}

// formatCompletionFunc completes --output values.
func formatCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	completions := make([]string, 0, len(render.Formats))
	for _, f := range render.Formats {
		completions = append(completions, string(f))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
