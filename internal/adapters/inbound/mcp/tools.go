package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pkgscope/pkgscope/internal/application"
	"github.com/pkgscope/pkgscope/internal/domain/completion"
)

func registerTools(s *server.MCPServer, svc *application.InspectService, aliases completion.Aliases) {
	s.AddTool(
		mcplib.NewTool("pkgscope_introspect",
			mcplib.WithDescription("Lists the exported functions, types with their members, constants and subpackages of Go packages. Packages that fail to load are left out."),
			mcplib.WithString("paths",
				mcplib.Required(),
				mcplib.Description("Comma-separated import paths, e.g. net/http,encoding/json"),
			),
		),
		handleIntrospect(svc),
	)

	s.AddTool(
		mcplib.NewTool("pkgscope_complete",
			mcplib.WithDescription("Returns completion items such as http.NewRequest matching a query"),
			mcplib.WithString("query",
				mcplib.Required(),
				mcplib.Description("Prefix or camel-case word to match"),
			),
			mcplib.WithString("paths",
				mcplib.Description("Comma-separated import paths to search (defaults to the alias targets)"),
			),
		),
		handleComplete(svc, aliases),
	)

	s.AddTool(
		mcplib.NewTool("pkgscope_type",
			mcplib.WithDescription("Returns the exported members of one type"),
			mcplib.WithString("path", mcplib.Required(), mcplib.Description("Import path of the package")),
			mcplib.WithString("type", mcplib.Required(), mcplib.Description("Type name, e.g. Request")),
		),
		handleType(svc),
	)
}

func handleIntrospect(svc *application.InspectService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("paths")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		paths := splitAndTrim(raw)
		if len(paths) == 0 {
			return errorResult("at least one import path is required"), nil
		}
		return jsonResult(svc.InspectAll(ctx, paths))
	}
}

func handleComplete(svc *application.InspectService, aliases completion.Aliases) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		paths := completion.PackagesToInspect(splitAndTrim(request.GetString("paths", "")), aliases)

		items := completion.Search(completion.Build(svc.InspectAll(ctx, paths), aliases), query)
		if items == nil {
			items = []completion.Item{}
		}
		return jsonResult(items)
	}
}

func handleType(svc *application.InspectService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		typeName, err := request.RequireString("type")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Inspect(ctx, path)
		if err != nil {
			return errorResult(fmt.Sprintf("inspect failed: %v", err)), nil
		}
		members, ok := report.Classes[typeName]
		if !ok {
			return errorResult(fmt.Sprintf("type %q not reported for %s", typeName, path)), nil
		}
		return jsonResult(map[string]any{
			"path":    path,
			"type":    typeName,
			"members": members,
		})
	}
}

func splitAndTrim(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
