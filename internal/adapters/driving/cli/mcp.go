package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The assistant sees the studio through the signed-in session: tools
cover the project register (list_projects, create_project), the
calendar (plan_event, month_schedule) and Drive (create_folder), with
read-only resources for the project list, the month schedule and the
current profile.

By default the server speaks JSON-RPC over stdio, which is what
MCP-compatible desktop assistants expect. Use --port to serve
streamable HTTP instead, for the MCP Inspector or remote use.

Examples:
  # Stdio mode (default)
  senteng mcp serve

  # HTTP mode
  senteng mcp serve --port 8080

Assistant configuration (for example claude_desktop_config.json):
  {
    "mcpServers": {
      "senteng": {
        "command": "/path/to/senteng",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Project:  projectService,
		Schedule: scheduleService,
		Storage:  storageService,
		Session:  sessionService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
