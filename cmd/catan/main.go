package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/config"
)

var (
	log = logrus.New()

	variantsFile string
	logFile      string
	debug        bool

	engineLog io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "catan",
	Short: "Generate balanced hex board layouts",
	Long: `Generate randomized Regular (19 tile) and Expansion (30 tile) boards
in which no two 6 or 8 tiles touch.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if engineLog != nil {
			engineLog.Close()
		}
	},
}

func init() {
	defaultVariants, _ := config.VariantsFile()
	rootCmd.PersistentFlags().StringVar(&variantsFile, "variants-file", defaultVariants, "YAML file overriding the built-in variant tables")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file, rotated by size")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log every rejected board")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
		log.AddHook(hook)
	}

	if debug {
		w := log.WriterLevel(logrus.DebugLevel)
		engineLog = w
		board.Log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		board.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

func loadConfigs() (map[board.Variant]board.Config, error) {
	if variantsFile == "" {
		return board.DefaultConfigs(), nil
	}
	log.WithField("path", variantsFile).Debug("loading variant tables")
	return config.LoadVariants(variantsFile)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
