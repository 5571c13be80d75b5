// ABOUTME: The "tui" subcommand: the interactive read-only board browser.
// ABOUTME: Runs the Bubble Tea program in alt-screen mode until the user quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/deckhand/tui"
)

// runTUI starts the interactive board browser.
func runTUI(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("deckhand tui", flag.ContinueOnError)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand tui [flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Browse boards interactively. Read-only; mutations go through the CLI.")
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

	p := tea.NewProgram(tui.NewAppModel(ctx, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fail(err)
	}
	return 0
}
