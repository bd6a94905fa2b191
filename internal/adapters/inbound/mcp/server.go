package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/pkgscope/pkgscope/internal/application"
	"github.com/pkgscope/pkgscope/internal/domain/completion"
)

// NewPkgscopeMCPServer creates an MCP server with every pkgscope tool and
// resource registered. All of them inspect packages through svc.
func NewPkgscopeMCPServer(svc *application.InspectService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"pkgscope",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	aliases := completion.DefaultAliases().Merge(svc.Config().Aliases)
	registerTools(s, svc, aliases)
	registerResources(s, svc)

	return s
}
