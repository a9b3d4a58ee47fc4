package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/config"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/export"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/application"
)

// NewVaultCheckMCPServer creates a new MCP server with all vaultcheck tools and
// resources registered. Relative export paths passed to tools resolve against
// basePath.
func NewVaultCheckMCPServer(basePath string, logger *zap.Logger) (*server.MCPServer, error) {
	reader, err := export.New()
	if err != nil {
		return nil, fmt.Errorf("loading export schema: %w", err)
	}
	svc := application.NewAnalyzeService(reader, config.New(), nil, logger)

	s := server.NewMCPServer(
		"vaultcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, basePath)
	registerResources(s)

	return s, nil
}
