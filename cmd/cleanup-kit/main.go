// Command cleanup-kit bundles the park cleanup project's small tools.
//
// It provides:
// - summarize: condense an Open ICS lint report into one counts line,
// - flyers: render the printable recruitment flyers as PNG and PDF.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"cleanup-kit/internal/config"
	"cleanup-kit/internal/runlog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type app struct {
	configFile string
	logLevel   string

	runID   string
	cfg     config.Config
	log     *slog.Logger
	runlog  *runlog.Logger
	closers []io.Closer
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	runID := runlog.NewRunID()
	a := &app{
		runID: runID,
		// Replaced once config is loaded; catches early failures.
		log: slog.New(slog.NewTextHandler(stderr, nil)).With("run_id", runID),
	}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error("command failed", "err", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cleanup-kit",
		Short:         "Park cleanup project tools: lint report summary and printable flyers",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default: config.yaml in . or config/)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newSummarizeCmd(a),
		newFlyersCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads .env and config, then rebuilds the logger from config.
func (a *app) setup(stderr io.Writer) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		a.log.Warn(".env load failed", "err", err)
	}
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, closer := newLogger(cfg, a.runID, stderr)
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	a.log = logger
	slog.SetDefault(logger)

	rl, err := runlog.New(cfg.RunLogPath, a.runID)
	if err != nil {
		return err
	}
	if rl != nil {
		a.runlog = rl
		a.closers = append(a.closers, rl)
		a.log.Debug("run journal enabled", "path", cfg.RunLogPath)
	}
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// newLogger writes text records to stderr and, when log.file is set, to a
// size-rotated file as well.
func newLogger(cfg config.Config, runID string, stderr io.Writer) (*slog.Logger, io.Closer) {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(cfg.LogLevel))

	w := stderr
	var closer io.Closer
	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
		}
		w = io.MultiWriter(stderr, lj)
		closer = lj
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("run_id", runID), closer
}
