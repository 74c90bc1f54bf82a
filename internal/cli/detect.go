// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDetectCommand(opts *options) *cobra.Command {
	var expect string
	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Report the container, record schema and record count of a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadSource(cmd, opts, args, "", "")
			if err != nil {
				return err
			}
			if err := result.ExpectSchema(expect); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "container: %s\nschema: %s\nrecords: %d\n",
				result.Container, result.Schema, len(result.Records))
			return err
		},
	}
	cmd.Flags().StringVar(&expect, "expect-schema", "", "Fail unless the detected schema is this one: chat, tool, text, completion or none")
	return cmd
}
