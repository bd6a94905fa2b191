package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/pkgscope/pkgscope/internal/adapters/inbound/mcp"
	"github.com/pkgscope/pkgscope/internal/adapters/outbound/cache"
)

func newMCPCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pkgscope MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(e))
	return cmd
}

func newMCPServeCmd(e *env) *cobra.Command {
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start pkgscope MCP server (stdio)",
		Long:  "Start the pkgscope MCP server using stdio transport so assistants can look up the exported API of Go packages.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := cache.NewMemory(cacheSize)
			if err != nil {
				return fmt.Errorf("creating report cache: %w", err)
			}
			s := mcpadapter.NewPkgscopeMCPServer(e.service(e.workspace(), mem), version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().IntVar(&cacheSize, "cache-size", cache.DefaultMemorySize, "Number of package reports kept in memory")

	return cmd
}
