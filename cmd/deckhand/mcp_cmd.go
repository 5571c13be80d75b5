// ABOUTME: The "mcp" subcommand: serve the core operations as MCP tools over stdio.
// ABOUTME: Intended to be launched by an MCP-speaking agent frontend, not by hand.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/2389-research/deckhand/mcp"
)

// runMCP serves MCP over stdio until the client disconnects.
func runMCP(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("deckhand mcp", flag.ContinueOnError)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand mcp [flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Serve list_boards, get_board, create_task, and move_task as MCP")
		fmt.Fprintln(os.Stderr, "tools over stdio.")
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	server := mcp.NewServer(client, version)
	if err := server.Run(ctx); err != nil {
		return fail(err)
	}
	return 0
}
