// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/trainset/trainset/internal/tool"
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dataset tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger.Info("starting MCP server", "version", Version)
			return tool.NewServer(Version).Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
