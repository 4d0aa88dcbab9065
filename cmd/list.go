package cmd

import (
	"fmt"
	"io"

	"github.com/msalah0e/rskeys/internal/credential"
	"github.com/msalah0e/rskeys/internal/envfile"
	"github.com/msalah0e/rskeys/internal/render"
	"github.com/msalah0e/rskeys/internal/resendapi"
	"github.com/msalah0e/rskeys/internal/ui"
	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the API keys on the Resend account (default command)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
}

func runList(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	cfg := opts.cfg

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	opts.loadEnvFile()

	cred, err := opts.resolver().Resolve()
	if err != nil {
		ui.Failure(out, err.Error())
		return err
	}
	ui.Key(out, "Using API key: "+credential.Preview(cred.Key))
	opts.log.Debug("credential resolved", "origin", cred.Origin)

	client, err := opts.newClient(cred.Key, resendapi.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   timeout,
		UserAgent: "rskeys/" + version,
	})
	if err != nil {
		return err
	}

	return report(out, opts, format, client.ListKeys(cmd.Context()))
}

// report prints an outcome. A failed call is only an error under --strict.
func report(out io.Writer, opts *options, format render.Format, outcome resendapi.Outcome) error {
	if !outcome.OK() {
		ui.Failure(out, "Error: "+outcome.Err.Error())
		opts.log.Debug("list failed", "op", outcome.Err.Op, "strict", opts.strict)
		if opts.strict {
			return outcome.Err
		}
		return nil
	}

	fmt.Fprintln(out)
	ui.Success(out, "API Keys:")
	return render.Write(out, format, outcome.Listing)
}

func (o *options) loadEnvFile() {
	l := &envfile.Loader{LookupEnv: o.lookupEnv, Setenv: o.setenv}
	res, err := l.Load(o.cfg.Env.File)
	if err != nil {
		o.log.Debug("env file not loaded", "path", o.cfg.Env.File, "err", err)
		return
	}
	o.log.Debug("env file", "path", res.Path, "found", res.Found, "applied", len(res.Applied), "skipped", len(res.Skipped))
}

func (o *options) resolver() *credential.Resolver {
	r := &credential.Resolver{Source: o.cfg.Env.File, LookupEnv: o.lookupEnv}
	if !o.cfg.Credentials.VaultFallback {
		return r
	}
	v, err := o.openVault(o.cfg.Vault.Backend)
	if err != nil {
		o.log.Warn("vault unavailable", "backend", o.cfg.Vault.Backend, "err", err)
		return r
	}
	r.Fallback = v
	return r
}
