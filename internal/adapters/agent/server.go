package agent

import (
	"cat-breed-info/internal/domain/breeds"

	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer registra el tool y el nodo sobre un servidor MCP.
func NewMCPServer(svc *breeds.Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"cat-breed-info",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	tool := NewBreedTool(svc)
	s.AddTool(tool.Definition(), tool.Handle)

	node := NewBreedNode(svc)
	s.AddTool(node.Definition(), node.Handle)

	return s
}
