package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/msalah0e/rskeys/internal/credential"
	"github.com/msalah0e/rskeys/internal/ui"
	"github.com/msalah0e/rskeys/internal/vault"
	"github.com/spf13/cobra"
)

func vaultCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Keep RESEND_API_KEY in the local vault",
	}

	cmd.AddCommand(
		vaultAddCmd(opts),
		vaultRmCmd(opts),
		vaultShowCmd(opts),
	)

	return cmd
}

func vaultAddCmd(opts *options) *cobra.Command {
	var fromEnv bool
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store RESEND_API_KEY in the vault (reads stdin, or --from-env)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			v, err := opts.openVault(opts.cfg.Vault.Backend)
			if err != nil {
				return err
			}

			var value string
			if fromEnv {
				opts.loadEnvFile()
				cred, err := (&credential.Resolver{Source: opts.cfg.Env.File, LookupEnv: opts.lookupEnv}).Resolve()
				if err != nil {
					ui.Failure(out, err.Error())
					return err
				}
				value = cred.Key
			} else {
				fmt.Fprintf(out, "  Enter value for %s: ", ui.Brand.Sprint(credential.EnvVar))
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				value = strings.TrimSpace(line)
			}

			if value == "" {
				ui.Warn.Fprintln(out, "  Empty value — key not stored")
				return nil
			}

			if err := v.Set(credential.EnvVar, value); err != nil {
				return fmt.Errorf("store key: %w", err)
			}
			ui.Good.Fprintf(out, "  %s %s stored in %s vault\n", ui.StatusIcon(true), credential.EnvVar, v.Backend())
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromEnv, "from-env", false, "Copy the key from the env file instead of prompting")
	return cmd
}

func vaultRmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove RESEND_API_KEY from the vault",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.openVault(opts.cfg.Vault.Backend)
			if err != nil {
				return err
			}
			if err := v.Delete(credential.EnvVar); err != nil {
				return fmt.Errorf("remove key: %w", err)
			}
			ui.Good.Fprintf(cmd.OutOrStdout(), "  %s %s removed from vault\n", ui.StatusIcon(true), credential.EnvVar)
			return nil
		},
	}
}

func vaultShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored key (masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			v, err := opts.openVault(opts.cfg.Vault.Backend)
			if err != nil {
				return err
			}

			val, err := v.Get(credential.EnvVar)
			if errors.Is(err, vault.ErrNotFound) {
				fmt.Fprintln(out, "  No key stored.")
				fmt.Fprintln(out, "  Run `rskeys vault add` to add one")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "  %s  %s  %s\n",
				ui.Brand.Sprint(credential.EnvVar), ui.Subtle.Sprint(vault.Mask(val)), ui.Subtle.Sprint("("+v.Backend()+")"))
			return nil
		},
	}
}
