// ABOUTME: CLI entrypoint for the deckhand kanban client with subcommand dispatch.
// ABOUTME: Loads .env files, then routes to boards, board, task, timer, users, attach, raw, docs, tui, and mcp.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	loadDotEnvAuto()
	os.Exit(run(os.Args[1:]))
}

// run dispatches a subcommand and returns its exit code: 0 for success,
// 1 for failure, 2 for usage errors.
func run(args []string) int {
	if len(args) == 0 {
		printHelp(os.Stderr, version)
		return 0
	}

	switch args[0] {
	case "boards":
		return runBoards(args[1:])
	case "board":
		return runBoard(args[1:])
	case "task":
		return runTask(args[1:])
	case "timer":
		return runTimer(args[1:])
	case "users":
		return runUsers(args[1:])
	case "attach":
		return runAttach(args[1:])
	case "raw":
		return runRaw(args[1:])
	case "docs":
		return runDocs(args[1:])
	case "tui":
		return runTUI(args[1:])
	case "mcp":
		return runMCP(args[1:])
	case "version", "-version", "--version":
		fmt.Printf("deckhand %s\n", version)
		return 0
	case "help", "-help", "--help", "-h":
		printHelp(os.Stdout, version)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", args[0])
		printHelp(os.Stderr, version)
		return 2
	}
}
