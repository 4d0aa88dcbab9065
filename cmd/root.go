package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/msalah0e/rskeys/internal/config"
	"github.com/msalah0e/rskeys/internal/credential"
	"github.com/msalah0e/rskeys/internal/logging"
	"github.com/msalah0e/rskeys/internal/resendapi"
	"github.com/msalah0e/rskeys/internal/ui"
	"github.com/msalah0e/rskeys/internal/vault"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

// options carries flag values and the collaborators commands need. Tests swap
// the function fields for fakes.
type options struct {
	envFile string
	output  string
	timeout string
	verbose bool
	strict  bool
	noColor bool

	cfg *config.Config
	log *log.Logger

	lookupEnv func(key string) (string, bool)
	setenv    func(key, value string) error
	newClient func(apiKey string, o resendapi.Options) (*resendapi.Client, error)
	openVault func(backend string) (vault.Vault, error)
}

func defaultOptions() *options {
	return &options{
		lookupEnv: os.LookupEnv,
		setenv:    os.Setenv,
		newClient: resendapi.New,
		openVault: vault.Open,
	}
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "rskeys",
		Short: "rskeys — list the API keys on a Resend account",
		Long: ui.Brand.Sprint("rskeys") + " — list the API keys on a Resend account\n" +
			ui.Subtle.Sprint("Reads RESEND_API_KEY from .env.local and calls the Resend API"),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	root.SetVersionTemplate("rskeys {{ .Version }}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file holding RESEND_API_KEY (default .env.local)")
	flags.StringVarP(&opts.output, "output", "o", "", "listing format: raw, json, yaml, table (default raw)")
	flags.StringVar(&opts.timeout, "timeout", "", "HTTP timeout for API calls (default 30s)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug logs to stderr")
	flags.BoolVar(&opts.strict, "strict", false, "Exit 1 when the API call fails")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	_ = root.RegisterFlagCompletionFunc("output", formatCompletionFunc)

	root.AddCommand(
		listCmd(opts),
		doctorCmd(opts),
		vaultCmd(opts),
		configCmd(opts),
		completionCmd(root),
	)

	return root
}

// prepare loads config, applies flag overrides and sets up logging.
func (o *options) prepare(cmd *cobra.Command) error {
	o.log = logging.New(cmd.ErrOrStderr(), o.verbose)

	cfg, err := config.LoadFile(config.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		o.log.Warn("ignoring config file", "path", config.Path(), "err", err)
	}
	cfg.ApplyEnv()

	if o.envFile != "" {
		cfg.Env.File = o.envFile
	}
	if o.output != "" {
		cfg.Output.Format = o.output
	}
	if o.timeout != "" {
		cfg.API.Timeout = o.timeout
	}
	if o.noColor {
		cfg.UI.Color = false
	}
	o.cfg = cfg

	ui.Configure(cfg.UI.Color, cfg.UI.Emoji)
	o.log.Debug("config ready", "env_file", cfg.Env.File, "base_url", cfg.API.BaseURL, "format", cfg.Output.Format)
	return nil
}

// alreadyReported tells Execute not to print err a second time.
func alreadyReported(err error) bool {
	var ce *credential.ConfigError
	var re *resendapi.RemoteError
	return errors.As(err, &ce) || errors.As(err, &re)
}

// Execute runs the root command.
func Execute() error {
	root := newRootCmd(defaultOptions())
	err := root.Execute()
	if err != nil && !alreadyReported(err) {
		ui.Failure(root.ErrOrStderr(), err.Error())
	}
	return err
}
