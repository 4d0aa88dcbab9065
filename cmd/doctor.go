package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/msalah0e/rskeys/internal/config"
	"github.com/msalah0e/rskeys/internal/credential"
	"github.com/msalah0e/rskeys/internal/envfile"
	"github.com/msalah0e/rskeys/internal/render"
	"github.com/msalah0e/rskeys/internal/ui"
	"github.com/spf13/cobra"
)

type checkStatus int

const (
	checkPass checkStatus = iota
	checkWarn
	checkFail
)

type check struct {
	name string
	run  func() (checkStatus, string)
}

func doctorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"dr"},
		Short:   "Check local setup without calling the API",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			ui.Banner(out, "doctor")

			passed, total := 0, 0
			for _, c := range opts.doctorChecks() {
				status, detail := c.run()
				total++
				icon := ui.StatusIcon(status != checkFail)
				if status == checkWarn {
					icon = ui.WarnIcon()
				}
				if status != checkFail {
					passed++
				}
				fmt.Fprintf(out, "  %s %-18s %s\n", icon, c.name, ui.Subtle.Sprint(detail))
			}

			fmt.Fprintf(out, "\n  %d/%d checks passed\n", passed, total)
		},
	}
}

func (o *options) doctorChecks() []check {
	cfg := o.cfg

	// Read the env file once without touching the process environment.
	fileVars, fileErr := envfile.ReadFile(cfg.Env.File)
	key := func() string {
		if v, ok := o.lookupEnv(credential.EnvVar); ok && v != "" {
			return v
		}
		return fileVars[credential.EnvVar]
	}

	return []check{
		{"Config file", func() (checkStatus, string) {
			_, err := config.LoadFile(config.Path())
			switch {
			case err == nil:
				return checkPass, config.Path()
			case errors.Is(err, fs.ErrNotExist):
				return checkPass, "defaults (no config.toml)"
			default:
				return checkWarn, err.Error()
			}
		}},
		{"Env file", func() (checkStatus, string) {
			if fileErr != nil {
				return checkFail, fileErr.Error()
			}
			if _, err := os.Stat(cfg.Env.File); err != nil {
				return checkWarn, cfg.Env.File + " not found"
			}
			return checkPass, fmt.Sprintf("%s (%d vars)", cfg.Env.File, len(fileVars))
		}},
		{credential.EnvVar, func() (checkStatus, string) {
			k := key()
			if k == "" {
				return checkFail, "not set"
			}
			return checkPass, credential.Preview(k)
		}},
		{"Key format", func() (checkStatus, string) {
			k := key()
			if k == "" {
				return checkWarn, "no key to inspect"
			}
			if !credential.LooksValid(k) {
				return checkWarn, "expected a re_ prefix"
			}
			return checkPass, "re_ prefix"
		}},
		{"Vault", func() (checkStatus, string) {
			v, err := o.openVault(cfg.Vault.Backend)
			if err != nil {
				return checkWarn, err.Error()
			}
			ok, err := v.Has(credential.EnvVar)
			if err != nil {
				return checkWarn, err.Error()
			}
			if !ok {
				return checkPass, v.Backend() + ", empty"
			}
			detail := v.Backend() + ", key stored"
			if !cfg.Credentials.VaultFallback {
				detail += " (fallback off)"
			}
			return checkPass, detail
		}},
		{"Output format", func() (checkStatus, string) {
			f, err := render.ParseFormat(cfg.Output.Format)
			if err != nil {
				return checkFail, err.Error()
			}
			return checkPass, string(f)
		}},
		{"Timeout", func() (checkStatus, string) {
			d, err := cfg.TimeoutDuration()
			if err != nil {
				return checkFail, err.Error()
			}
			if d == 0 {
				return checkWarn, "none"
			}
			return checkPass, d.String()
		}},
	}
}
