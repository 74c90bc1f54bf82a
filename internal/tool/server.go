// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverName = "trainset"

// NewServer creates an MCP server with every dataset tool registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	mcp.AddTool(server, MetadataLoadDataset, LoadDataset)
	mcp.AddTool(server, MetadataDetectSchema, DetectSchema)
	mcp.AddTool(server, MetadataListFormats, ListFormats)
	return server
}
