// SPDX-License-Identifier: Apache-2.0

// Package cli wires the trainset commands.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trainset/trainset/internal/dataset"
	"github.com/trainset/trainset/internal/dataset/containers"
)

// Version is set at build time.
var Version = "dev"

type options struct {
	logLevel string
	logger   *slog.Logger
	loader   *dataset.Loader
}

// NewRootCommand builds the trainset command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{loader: containers.Default()}

	root := &cobra.Command{
		Use:           "trainset",
		Short:         "Detect and decode fine-tuning data files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newLoadCommand(opts),
		newDetectCommand(opts),
		newSplitsCommand(opts),
		newServeCommand(opts),
	)
	return root
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
