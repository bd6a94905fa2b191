package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pkgscope/pkgscope/internal/application"
)

const (
	configURI       = "pkgscope://config"
	packageTemplate = "pkgscope://packages/{path}"
)

func registerResources(s *server.MCPServer, svc *application.InspectService) {
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Configuration",
			mcplib.WithResourceDescription("Effective pkgscope configuration, defaults merged with .pkgscope.yaml"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(svc),
	)

	// The import path must be URL-escaped: pkgscope://packages/net%2Fhttp
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			packageTemplate,
			"Package report",
			mcplib.WithTemplateDescription("Exported API of a single Go package"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handlePackageResource(svc),
	)
}

func handleConfigResource(svc *application.InspectService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(configURI, svc.Config())
	}
}

func handlePackageResource(svc *application.InspectService) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		path, err := templateArg(request.Params.Arguments, "path")
		if err != nil {
			return nil, err
		}
		report, err := svc.Inspect(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("inspect failed: %w", err)
		}
		return jsonContents(request.Params.URI, report)
	}
}

// templateArg returns the unescaped value bound to name by template matching.
func templateArg(args map[string]any, name string) (string, error) {
	var raw string
	switch v := args[name].(type) {
	case string:
		raw = v
	case []string:
		if len(v) > 0 {
			raw = v[0]
		}
	}
	if raw == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	unescaped, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("unescaping %s: %w", name, err)
	}
	return unescaped, nil
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
