package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropseq/internal/config"
	"github.com/ib-77/ropseq/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "ropseq",
	Short: "Check a list of integers, one per line",
	Long: `Reads one integer per line and runs it through a result pipeline.

Modes:
  report     print every valid value doubled, log invalid lines
  fail-fast  print valid values and stop at the first invalid line
  last-err   print valid values, log every invalid line, fail with the last one`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		mode, err := pipeline.ParseMode(cfg.Mode)
		if err != nil {
			return err
		}

		logger, err := setupLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		input, closeInput, err := openInput(cmd, cfg.Input)
		if err != nil {
			return err
		}
		defer closeInput()

		err = pipeline.Run(logger, mode, input, cmd.OutOrStdout())
		if err != nil {
			logger.Error("pipeline failed", zap.String("mode", string(mode)), zap.Error(err))
		}
		return err
	},
}

func init() {
	rootCmd.Flags().StringP(config.Input, "i", "-", "input file, - for stdin")
	rootCmd.Flags().StringP(config.Mode, "m", string(pipeline.ModeReport), "report, fail-fast or last-err")
	rootCmd.Flags().String(config.LogLevel, "info", "log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func setupLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	loggerCfg := &zap.Config{
		Level:    atomicLevel,
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return loggerCfg.Build()
}
