package main

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"illuminate/internal/logging"
	"illuminate/internal/mcp"
)

var mcpFlags struct {
	watchParent bool
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP stdio server",
	Long: `Exposes the illumination engine over the Model Context Protocol on
stdin/stdout. Agent hosts can call illuminate_cycle, get_analytics, and
list_oracles as tools.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpFlags.watchParent, "watch-parent", true, "Exit when the parent process goes away")
}

func runMCP(cmd *cobra.Command, _ []string) error {
	log := logging.New("mcp")

	p, err := loadProfile()
	if err != nil {
		return err
	}
	eng, registry := buildEngine(p)
	st, err := openStore(p)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := mcp.NewServer(eng, registry, st, p.PatternDefs())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if mcpFlags.watchParent {
		mcp.WatchParent(ctx, cancel)
	}

	log.Info("starting MCP stdio server")
	if err := srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
