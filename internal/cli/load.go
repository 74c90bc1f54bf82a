// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trainset/trainset/internal/dataset"
)

func newLoadCommand(opts *options) *cobra.Command {
	var (
		dir    string
		name   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Load a data file and print its normalized records",
		Long: "Load a .jsonl or .txt data file, either by path or by --dir and --name.\n" +
			"A logical name is resolved by trying .jsonl before .txt.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadSource(cmd, opts, args, dir, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "lines":
				for _, record := range result.Records {
					if _, err := fmt.Fprintln(out, strconv.Quote(record)); err != nil {
						return err
					}
				}
				return nil
			}
			return fmt.Errorf("unknown output format %q", format)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory holding the data set")
	cmd.Flags().StringVar(&name, "name", "", "Logical name of the data file, e.g. train")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or lines")
	return cmd
}

func loadSource(cmd *cobra.Command, opts *options, args []string, dir, name string) (dataset.LoadResult, error) {
	ctx := cmd.Context()

	var (
		result dataset.LoadResult
		err    error
	)
	switch {
	case len(args) == 1 && (dir != "" || name != ""):
		return dataset.LoadResult{}, fmt.Errorf("use either a file argument or --dir and --name, not both")
	case len(args) == 1:
		result, err = opts.loader.LoadFromFileWithMeta(ctx, args[0])
	case dir != "" && name != "":
		result, err = opts.loader.LoadFromDirectoryWithMeta(ctx, dir, name)
	default:
		return dataset.LoadResult{}, fmt.Errorf("a file argument or --dir and --name are required")
	}
	if err != nil {
		return dataset.LoadResult{}, err
	}

	opts.logger.Info("loaded data file",
		"path", result.Path,
		"container", result.Container,
		"schema", result.Schema.String(),
		"records", len(result.Records))
	return result, nil
}
