package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/reoring/kontrolluppgift/i18n"
	"github.com/reoring/kontrolluppgift/internal/config"
)

const appName = "kontrolluppgift"

// initializeAppContext prepares the environment after the command line has
// been parsed and before a command runs.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)

	cfg, err := config.LoadConfiguration(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if lang := cmd.String("lang"); lang != "" {
		cfg.Language = lang
	}
	if drv := cmd.String("driver"); drv != "" {
		cfg.Decode.Driver, cfg.Encode.Driver = drv, drv
	}
	if err := cfg.Validate(); err != nil {
		return ctx, fmt.Errorf("invalid configuration: %w", err)
	}
	i18n.SetLanguage(cfg.Language)

	if env.dec, env.enc, err = cfg.Drivers(); err != nil {
		return ctx, err
	}
	// console logs go to stderr, stdout carries command output
	if env.log, env.closeLog, err = cfg.Logging.Prepare(env.errOut, env.errOut); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	// from here on errors are reported through the logger
	env.cfg = cfg
	env.log.Debug("Program started",
		zap.Strings("args", cmd.Args().Slice()),
		zap.String("runtime", runtime.Version()),
		zap.String("decoder", env.dec.Name()),
		zap.String("encoder", env.enc.Name()))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := envFromContext(ctx)
	if env.cfg == nil {
		return nil
	}
	env.log.Debug("Program ended", zap.Duration("elapsed", time.Since(env.start)), zap.Strings("parsed args", cmd.Args().Slice()))
	_ = env.log.Sync()
	if env.closeLog != nil {
		if er := env.closeLog(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close log file: %w", er))
		}
	}
	return err
}

// exitErrHandler is called before the environment is destroyed, so the
// error can still be logged.
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.cfg != nil && err != nil {
		env.log.Error("Program ended with error", zap.Error(err))
		env.errHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "encodes, decodes and validates Kontrolluppgift documents",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug messages to the console"},
			&cli.StringFlag{Name: "lang", Usage: "issue message `LANGUAGE` (en, sv)"},
			&cli.StringFlag{Name: "driver", Usage: "XML `DRIVER` for decoding and encoding (encoding/xml, etree)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Decodes documents and reports the first problem of each",
				ArgsUsage: "FILE...",
				Action:    runValidate,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "strict", Usage: "treat repeated fields as errors"},
				},
			},
			{
				Name:      "format",
				Usage:     "Decodes a document and writes it back in canonical form",
				ArgsUsage: "SOURCE [DESTINATION]",
				Action:    runFormat,
			},
			{
				Name:      "dump",
				Usage:     "Decodes a document and prints its content",
				ArgsUsage: "SOURCE",
				Action:    runDump,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "output `FORMAT` (json, yaml, ion)"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write to `FILE` instead of stdout"},
				},
			},
			{
				Name:      "ingest",
				Usage:     "Reads XML Schema documents and prints the derived record tables",
				ArgsUsage: "XSD...",
				Action:    runIngest,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "yaml", Usage: "output `FORMAT` (json, yaml, go)"},
					&cli.StringFlag{Name: "package", Value: "skv", Usage: "Go `PACKAGE` name for --format go"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write to `FILE` instead of stdout"},
					&cli.BoolFlag{Name: "check", Usage: "compare the built-in forms with the ingested records"},
					&cli.BoolFlag{Name: "strict-occurs", Usage: "fail on repeated elements instead of warning"},
				},
			},
			{
				Name:      "dumpconfig",
				Usage:     "Dumps either default or actual configuration (YAML)",
				ArgsUsage: "[DESTINATION]",
				Action:    outputConfiguration,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	ctx = contextWithEnv(ctx, out, errOut)
	err := newApp(out, errOut).Run(ctx, args)
	if err != nil && !envFromContext(ctx).errHandled {
		fmt.Fprintf(errOut, "Program ended with error: %v\n", err)
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
