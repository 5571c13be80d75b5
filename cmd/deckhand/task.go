// ABOUTME: The "task" subcommand family: create, show, move, assign, complete, uncomplete, delete.
// ABOUTME: Create runs the full name-resolving workflow; the rest are one resolution plus one mutation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/2389-research/deckhand/weeek"
)

// runTask dispatches the task subcommand family.
func runTask(args []string) int {
	if len(args) == 0 {
		printTaskUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "create":
		return runTaskCreate(args[1:])
	case "show":
		return runTaskShow(args[1:])
	case "move":
		return runTaskMove(args[1:])
	case "assign":
		return runTaskAssign(args[1:])
	case "complete":
		return runTaskToggle(args[1:], true)
	case "uncomplete":
		return runTaskToggle(args[1:], false)
	case "delete":
		return runTaskDelete(args[1:])
	case "help", "-help", "--help", "-h":
		printTaskUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "error: unknown task command %q\n\n", args[0])
		printTaskUsage(os.Stderr)
		return 2
	}
}

func printTaskUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: deckhand task <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  create <title>        Create a task, resolving board/column/assignee by name")
	fmt.Fprintln(w, "  show <id>             Show one task")
	fmt.Fprintln(w, "  move <id> <column>    Move a task to a column of its current board")
	fmt.Fprintln(w, "  assign <id> <user>    Assign a task to a member by name")
	fmt.Fprintln(w, "  complete <id>         Mark a task completed")
	fmt.Fprintln(w, "  uncomplete <id>       Reopen a completed task")
	fmt.Fprintln(w, "  delete <id>           Delete a task")
}

// runTaskCreate runs the orchestrated create workflow.
func runTaskCreate(args []string) int {
	var (
		common   commonFlags
		board    string
		column   string
		assignee string
		priority string
		desc     string
		subtasks repeatedFlag
	)
	fs := flag.NewFlagSet("deckhand task create", flag.ContinueOnError)
	common.register(fs)
	fs.StringVar(&board, "board", "", "Board name, matched across all projects")
	fs.StringVar(&column, "column", "", "Column name within the board (default: first column)")
	fs.StringVar(&assignee, "assignee", "", "Member name to assign")
	fs.StringVar(&priority, "priority", "low", "Priority: low, medium, high, urgent (or 0-3)")
	fs.StringVar(&desc, "desc", "", "Task description")
	fs.Var(&subtasks, "subtask", "Subtask title, repeatable; created in order")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand task create [flags] <title>")
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
	title := strings.Join(fs.Args(), " ")

	prio, ok := weeek.ParsePriority(priority)
	if !ok {
		n, err := strconv.Atoi(priority)
		if err != nil || n < weeek.PriorityLow || n > weeek.PriorityUrgent {
			fmt.Fprintf(os.Stderr, "error: invalid priority %q\n", priority)
			return 2
		}
		prio = n
	}

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	task, err := client.CreateTaskDetailed(ctx, weeek.TaskSpec{
		Title:       title,
		Board:       board,
		Column:      column,
		Assignee:    assignee,
		Priority:    prio,
		Description: desc,
		Subtasks:    subtasks,
	})
	if err != nil {
		// On partial failure the primary task was still created; show it
		// before the per-subtask report.
		var partial *weeek.PartialFailureError
		if errors.As(err, &partial) && task != nil {
			printTask(task)
		}
		return fail(err)
	}

	fmt.Println(okStyle.Render("created"))
	printTask(task)
	return 0
}

func runTaskShow(args []string) int {
	common, fs := taskIDFlagSet("show", "Show one task.")
	id, _, code := parseTaskID(fs, args)
	if code >= 0 {
		return code
	}

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	task, err := client.Task(ctx, id)
	if err != nil {
		return fail(err)
	}
	printTask(task)
	return 0
}

func runTaskMove(args []string) int {
	common, fs := taskIDFlagSet("move", "Move a task to a column of its current board, resolved by name.")
	id, rest, code := parseTaskID(fs, args)
	if code >= 0 {
		return code
	}
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}
	columnName := strings.Join(rest, " ")

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	col, err := client.MoveTaskToColumn(ctx, id, columnName)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s moved #%d to %s %s\n",
		okStyle.Render("ok"), id, col.Name, dimStyle.Render(fmt.Sprintf("(column %d)", col.ID)))
	return 0
}

func runTaskAssign(args []string) int {
	common, fs := taskIDFlagSet("assign", "Assign a task to a workspace member, resolved by name.")
	id, rest, code := parseTaskID(fs, args)
	if code >= 0 {
		return code
	}
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}
	userName := strings.Join(rest, " ")

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	user, err := client.AssignTask(ctx, id, userName)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s assigned #%d to %s %s\n",
		okStyle.Render("ok"), id, user.Name(), dimStyle.Render("(id "+user.ID+")"))
	return 0
}

func runTaskToggle(args []string, complete bool) int {
	verb := "complete"
	if !complete {
		verb = "uncomplete"
	}
	common, fs := taskIDFlagSet(verb, "Toggle a task's completion state.")
	id, _, code := parseTaskID(fs, args)
	if code >= 0 {
		return code
	}

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	if complete {
		err = client.CompleteTask(ctx, id)
	} else {
		err = client.UncompleteTask(ctx, id)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s %sd #%d\n", okStyle.Render("ok"), verb, id)
	return 0
}

func runTaskDelete(args []string) int {
	common, fs := taskIDFlagSet("delete", "Delete a task.")
	id, _, code := parseTaskID(fs, args)
	if code >= 0 {
		return code
	}

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	if err := client.DeleteTask(ctx, id); err != nil {
		return fail(err)
	}
	fmt.Printf("%s deleted #%d\n", okStyle.Render("ok"), id)
	return 0
}

// taskIDFlagSet builds the flag set shared by the id-addressed task commands.
func taskIDFlagSet(verb, blurb string) (*commonFlags, *flag.FlagSet) {
	common := &commonFlags{}
	fs := flag.NewFlagSet("deckhand task "+verb, flag.ContinueOnError)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: deckhand task %s [flags] <id> [args]\n\n%s\n\n", verb, blurb)
		fs.PrintDefaults()
	}
	return common, fs
}

// parseTaskID parses flags plus a leading numeric task id. The returned code
// is -1 when parsing succeeded and the command should proceed.
func parseTaskID(fs *flag.FlagSet, args []string) (id int, rest []string, code int) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, nil, 0
		}
		return 0, nil, 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 0, nil, 2
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid task id %q\n", fs.Arg(0))
		return 0, nil, 2
	}
	return id, fs.Args()[1:], -1
}
