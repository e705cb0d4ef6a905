package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/stockroom/stockroom/internal/adapters/inbound/mcp"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the stockroom MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the stockroom MCP server (stdio)",
		Long:  "Start the stockroom MCP server using stdio transport. The store lives for the lifetime of the server; assistants can list stock and place orders against it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openShop(cmd, flags)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpadapter.NewStockroomMCPServer(svc, version))
		},
	}
}
