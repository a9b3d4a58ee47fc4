package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/sizing"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/application"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

// registerTools registers all vaultcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.AnalyzeService, basePath string) {
	// 1. vaultcheck_analyze
	s.AddTool(
		mcplib.NewTool("vaultcheck_analyze",
			mcplib.WithDescription("Analyze a healthcheck export and return every vault compatibility verdict, the normalized dataset, data errors and the sizing summary as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the healthcheck export JSON"),
			),
			mcplib.WithString("config_dir", mcplib.Description("Directory holding .vaultcheck.yaml (defaults to the export's directory)")),
		),
		handleAnalyze(svc, basePath),
	)

	// 2. vaultcheck_summary
	s.AddTool(
		mcplib.NewTool("vaultcheck_summary",
			mcplib.WithDescription("Return the sizing summary for a healthcheck export"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the healthcheck export JSON"),
			),
			mcplib.WithBoolean("sizing_request", mcplib.Description("Return the capacity-estimation request payload instead")),
		),
		handleSummary(svc, basePath),
	)

	// 3. vaultcheck_rules
	s.AddTool(
		mcplib.NewTool("vaultcheck_rules",
			mcplib.WithDescription("List the vault compatibility rules in evaluation order"),
		),
		handleRules(),
	)
}

func handleAnalyze(svc *application.AnalyzeService, basePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		configDir, _ := request.GetArguments()["config_dir"].(string)
		if configDir != "" {
			configDir = resolve(basePath, configDir)
		}

		report, err := svc.AnalyzeFile(ctx, resolve(basePath, file), configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSummary(svc *application.AnalyzeService, basePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		wantRequest, _ := request.GetArguments()["sizing_request"].(bool)

		report, err := svc.AnalyzeFile(ctx, resolve(basePath, file), "")
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		if wantRequest {
			return jsonResult(sizing.FromReport(report))
		}
		return jsonResult(report.Summary)
	}
}

func handleRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(rules.Catalog())
	}
}

func resolve(basePath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result flagged as an error.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
