// ABOUTME: The "boards", "board", and "users" subcommands: cross-project listing and board inspection.
// ABOUTME: Board bodies reuse the tui package's column/task renderer for consistent output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/2389-research/deckhand/tui"
)

// runBoards lists every board across every project, grouped by project.
func runBoards(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("deckhand boards", flag.ContinueOnError)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand boards [flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "List every board across every project.")
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

	boards, err := client.AllBoards(ctx)
	if err != nil {
		return fail(err)
	}

	if len(boards) == 0 {
		fmt.Println("no boards")
		return 0
	}

	// Boards arrive grouped by project already; print a header at each
	// project change.
	lastProject := ""
	for _, b := range boards {
		if b.ProjectName != lastProject {
			fmt.Println(headerStyle.Render(b.ProjectName))
			lastProject = b.ProjectName
		}
		fmt.Printf("  %s %s\n", b.Name, dimStyle.Render(fmt.Sprintf("(id %d)", b.ID)))
	}
	return 0
}

// runBoard resolves a board by name and prints its columns and tasks.
func runBoard(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("deckhand board", flag.ContinueOnError)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand board [flags] <name>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Show a board's columns and tasks. The name is matched exact-first,")
		fmt.Fprintln(os.Stderr, "then by substring, across all projects.")
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name := strings.Join(fs.Args(), " ")

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	bctx, err := client.BoardWithContext(ctx, name)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s %s\n\n",
		headerStyle.Render(bctx.Board.Name),
		dimStyle.Render("— "+bctx.Board.ProjectName))
	fmt.Print(tui.RenderBoard(bctx))
	return 0
}

// runUsers lists the workspace members.
func runUsers(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("deckhand users", flag.ContinueOnError)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand users [flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "List workspace members.")
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

	users, err := client.Users(ctx)
	if err != nil {
		return fail(err)
	}

	if len(users) == 0 {
		fmt.Println("no members")
		return 0
	}
	for _, u := range users {
		line := u.Name()
		if u.Email != "" && line != u.Email {
			line += " " + dimStyle.Render("<"+u.Email+">")
		}
		fmt.Printf("%s %s\n", line, dimStyle.Render("(id "+u.ID+")"))
	}
	return 0
}
