package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/hbs/internal/config"
	"github.com/aescanero/hbs/internal/runner"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

const usageText = `hbs [options] <template...>

   Templates, partials, helpers and data files may be given as paths,
   glob patterns or module names looked up in HBS_MODULE_PATH.

   Examples:
     hbs -D data.json -P 'partials/*.hbs' -o site 'pages/**/*.hbs'
     hbs -D '{"title": "Home"}' -s index.hbs
     curl -s https://example.com/api | hbs -i -s report.hbs
     hbs -H helpers/strings.so -D redis://localhost:6379/0#site page.hbs`

func init() {
	cli.VersionPrinter = func(cmd *cli.Command) {
		_, _ = fmt.Fprintln(cmd.Root().Writer, cmd.Root().Version)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes hbs and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration loaded",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("config", cfg.String()),
	)

	cmd := newCommand(cfg, logger, stdin, stdout, stderr)
	if err := cmd.Run(ctx, args); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newCommand builds the root command. Help and version output go to stderr
// so stdout only ever carries rendered templates.
func newCommand(cfg *config.Config, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                      "hbs",
		Usage:                     "Render Handlebars templates from the command line",
		UsageText:                 usageText,
		Version:                   Version,
		Writer:                    stderr,
		ErrWriter:                 stderr,
		HideHelpCommand:           true,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "directory to write rendered files to",
				Value:   cfg.OutputDir,
			},
			&cli.StringFlag{
				Name:    "extension",
				Aliases: []string{"e"},
				Usage:   "extension of rendered files",
				Value:   cfg.Extension,
			},
			&cli.BoolFlag{
				Name:    "stdout",
				Aliases: []string{"s"},
				Usage:   "write rendered output to stdout instead of files",
			},
			&cli.BoolFlag{
				Name:    "stdin",
				Aliases: []string{"i"},
				Usage:   "read the data object as JSON from stdin, replacing --data",
			},
			&cli.StringSliceFlag{
				Name:    "partial",
				Aliases: []string{"P"},
				Usage:   "partial file, glob or module (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "helper",
				Aliases: []string{"H"},
				Usage:   "helper plugin file, glob or module (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "data",
				Aliases: []string{"D"},
				Usage:   "inline JSON, data file, glob, module or redis:// reference (repeatable)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return cli.ShowRootCommandHelp(cmd)
			}

			opts := runner.Options{
				Templates: cmd.Args().Slice(),
				Partials:  cmd.StringSlice("partial"),
				Helpers:   cmd.StringSlice("helper"),
				Data:      cmd.StringSlice("data"),
				Stdin:     cmd.Bool("stdin"),
				OutputDir: cmd.String("output"),
				Extension: cmd.String("extension"),
				Stdout:    cmd.Bool("stdout"),
			}

			rn := runner.New(cfg, logger, runner.WithStdin(stdin), runner.WithStdout(stdout))
			return rn.Run(ctx, opts)
		},
	}
}

// initLogger initializes a logger that writes to w
func initLogger(level, format string, w io.Writer) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(zapLevel))
	return zap.New(core)
}
