// ABOUTME: Help display for the deckhand CLI with grouped commands, examples, and environment status.
// ABOUTME: Provides printHelp for polished usage output and envStatus for token detection.
package main

import (
	"fmt"
	"io"
	"os"
)

const deckhandASCII = `
          |    |    |
         )_)  )_)  )_)
        )___))___))___)\
       )____)____)_____)\\
     _____|____|____|____\\\__
 ----\                   /-----
   ^^^^^^^^^^^^^^^^^^^^^^^^^^^
     ^^^^      ^^^^     ^^^
`

// printHelp writes a formatted help message to w, including usage patterns,
// grouped commands, examples, and environment status.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, deckhandASCII)
	fmt.Fprintf(w, "deckhand %s — name-resolving kanban CLI\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  deckhand <command> [flags] [args]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Browse:")
	fmt.Fprintln(w, "  boards                List every board across every project")
	fmt.Fprintln(w, "  board <name>          Show a board's columns and tasks")
	fmt.Fprintln(w, "  users                 List workspace members")
	fmt.Fprintln(w, "  tui                   Interactive board browser")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tasks:")
	fmt.Fprintln(w, "  task create <title>   Create a task (resolves -board, -column, -assignee by name)")
	fmt.Fprintln(w, "  task show <id>        Show one task")
	fmt.Fprintln(w, "  task move <id> <col>  Move a task within its board")
	fmt.Fprintln(w, "  task assign <id> <u>  Assign a task by member name")
	fmt.Fprintln(w, "  task complete <id>    Mark a task completed")
	fmt.Fprintln(w, "  task delete <id>      Delete a task")
	fmt.Fprintln(w, "  timer start|stop <id> Track time on a task (timer log <id> lists entries)")
	fmt.Fprintln(w, "  attach <id> <file>    Upload a file as a task attachment")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  raw [-X m] [-d b] <p> Issue a request against any API path")
	fmt.Fprintln(w, "  docs [topic]          Show the API catalog or a topic guide")
	fmt.Fprintln(w, "  mcp                   Serve the core operations as MCP tools over stdio")
	fmt.Fprintln(w, "  version               Print version and exit")
	fmt.Fprintln(w, "  help                  Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  deckhand boards")
	fmt.Fprintln(w, "  deckhand board \"Release 2.0\"")
	fmt.Fprintln(w, "  deckhand task create -board release -column doing -assignee ada \\")
	fmt.Fprintln(w, "      -subtask \"write tests\" -subtask \"update docs\" \"Ship the thing\"")
	fmt.Fprintln(w, "  deckhand task move 1234 done")
	fmt.Fprintln(w, "  deckhand raw -q projectId=7 /tm/boards")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  WEEEK_API_TOKEN       %s\n", envStatus("WEEEK_API_TOKEN"))
	fmt.Fprintf(w, "  DECKHAND_BASE_URL     %s\n", envStatus("DECKHAND_BASE_URL"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  The token is required for every command except docs and help.")
	fmt.Fprintln(w, "  Values can also come from a .env file or .deckhand.yaml.")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
