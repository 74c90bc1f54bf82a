// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trainset/trainset/internal/manifest"
)

func newSplitsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "splits [manifest]",
		Short: "Load every split listed in a data-set manifest",
		Long:  "Load every split listed in a data-set manifest (default " + manifest.DefaultFile + ") and print its schema and record count.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}
			m, err := manifest.Load(path)
			if err != nil {
				return err
			}
			opts.logger.Debug("loaded manifest", "path", path, "data", m.Data, "splits", m.SplitNames())

			results, err := opts.loader.LoadSplits(cmd.Context(), m.Data, m.Splits)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, split := range m.SplitNames() {
				r := results[split]
				opts.logger.Info("loaded split", "split", split, "path", r.Path, "records", len(r.Records))
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", split, r.Container, r.Schema, len(r.Records)); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
