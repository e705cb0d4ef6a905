package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/stockroom/stockroom/internal/application"
)

// NewStockroomMCPServer creates an MCP server with every stockroom tool and
// resource registered against svc. The store lives as long as svc does.
func NewStockroomMCPServer(svc *application.ShopService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"stockroom",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
