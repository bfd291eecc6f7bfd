package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/winpath/pkg/config"
	"github.com/macropower/winpath/pkg/log"
	"github.com/macropower/winpath/pkg/pathops"
	"github.com/macropower/winpath/pkg/winpath"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrConfigFailed     = errors.New("config failed")
	ErrInvalidArgument  = errors.New("invalid argument")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVar(args.configPath, "config", "", "Path to a TOML config file")
	cmd.PersistentFlags().StringVar(args.separator, "separator", "", `Separator written by clean and join ("\" or "/")`)
	cmd.PersistentFlags().StringVarP(args.output, "output", "o", OutputText, "Output format (text, json, yaml)")

	err := cmd.MarkPersistentFlagFilename("config", "toml")
	if err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := config.Load(args.GetConfigPath())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfigFailed, err)
		}

		var merr error

		if err := applySeparator(cfg, args.GetSeparator()); err != nil {
			merr = multierror.Append(merr, err)
		}

		if err := validateOutput(args.GetOutput()); err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		if v := args.GetLogLevel(); v != "" {
			cfg.Log.Level = v
		}

		if v := args.GetLogFormat(); v != "" {
			cfg.Log.Format = v
		}

		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			cfg.Log.Level,
			cfg.Log.Format,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		args.setConfig(cfg)

		slog.SetDefault(slog.New(h))

		if cfg.Source() == "" {
			slog.Debug("no config file found, using defaults")
		}

		slog.Debug("ready to go",
			slog.String("config", cfg.Source()),
			slog.String("separator", cfg.Separator),
			slog.Int("path_limit", cfg.Limits.Path),
		)

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		return nil
	}

	for _, m := range pathops.NewRegistry(winpath.New()).Methods() {
		cmd.AddCommand(NewMethodCmd(args, m))
	}

	cmd.AddCommand(NewSplitCmd(args))
	cmd.AddCommand(NewBatchCmd(args))
	cmd.AddCommand(NewConfigCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// applySeparator overrides the separator of cfg when sep is set.
func applySeparator(cfg *config.Config, sep string) error {
	if sep == "" {
		return nil
	}

	if len(sep) != 1 || !winpath.IsSeparator(sep[0]) {
		return fmt.Errorf("separator must be %q or %q, got %q",
			string(winpath.Separator), string(winpath.AltSeparator), sep)
	}

	cfg.Separator = sep

	return nil
}
