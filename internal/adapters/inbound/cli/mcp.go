package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the vaultcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	var basePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start vaultcheck MCP server (stdio)",
		Long:  "Start the vaultcheck MCP server using stdio transport. This lets AI assistants analyze healthcheck exports and read the rule catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if basePath == "" {
				basePath = "."
			}
			s, err := mcpadapter.NewVaultCheckMCPServer(basePath, opts.logger)
			if err != nil {
				return err
			}
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&basePath, "path", "", "Directory relative export paths resolve against (defaults to current working directory)")

	return cmd
}
