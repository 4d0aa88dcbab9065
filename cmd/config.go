package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/msalah0e/rskeys/internal/config"
	"github.com/msalah0e/rskeys/internal/ui"
	"github.com/spf13/cobra"
)

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the rskeys config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Subtle.Sprint("# "+config.Path()))
				return toml.NewEncoder(out).Encode(opts.cfg)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default config.toml if none exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				created, err := config.EnsureExists()
				if err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				out := cmd.OutOrStdout()
				if created {
					ui.Good.Fprintf(out, "  %s wrote %s\n", ui.StatusIcon(true), config.Path())
				} else {
					fmt.Fprintf(out, "  %s already exists\n", config.Path())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), config.Path())
			},
		},
	)

	return cmd
}
