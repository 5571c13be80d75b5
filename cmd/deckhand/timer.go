// ABOUTME: The "timer" subcommand: start and stop time tracking on a task.
// ABOUTME: Each command is a single mutation against the task's timer endpoint.
package main

import (
	"fmt"
	"os"
)

// runTimer dispatches timer start/stop.
func runTimer(args []string) int {
	if len(args) == 0 {
		printTimerUsage(os.Stderr)
		return 2
	}

	var start bool
	switch args[0] {
	case "start":
		start = true
	case "stop":
		start = false
	case "log":
		return runTimerLog(args[1:])
	case "help", "-help", "--help", "-h":
		printTimerUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "error: unknown timer command %q\n\n", args[0])
		printTimerUsage(os.Stderr)
		return 2
	}

	common, fs := taskIDFlagSet("timer "+args[0], "Start or stop the task's timer.")
	id, _, code := parseTaskID(fs, args[1:])
	if code >= 0 {
		return code
	}

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	if start {
		err = client.StartTimer(ctx, id)
	} else {
		err = client.StopTimer(ctx, id)
	}
	if err != nil {
		return fail(err)
	}
	done := "stopped"
	if start {
		done = "started"
	}
	fmt.Printf("%s timer %s on #%d\n", okStyle.Render("ok"), done, id)
	return 0
}

// runTimerLog lists the recorded time entries for a task.
func runTimerLog(args []string) int {
	common, fs := taskIDFlagSet("timer log", "List recorded time entries for the task.")
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

	entries, err := client.TimeEntries(ctx, id)
	if err != nil {
		return fail(err)
	}
	if len(entries) == 0 {
		fmt.Println("no time entries")
		return 0
	}

	total := 0
	for _, e := range entries {
		line := fmt.Sprintf("%s  %dh%02dm", e.Date, e.Duration/60, e.Duration%60)
		if e.IsActive {
			line += " " + okStyle.Render("(running)")
		}
		if e.UserID != "" {
			line += " " + dimStyle.Render("by "+e.UserID)
		}
		fmt.Println(line)
		total += e.Duration
	}
	fmt.Printf("%s %dh%02dm\n", dimStyle.Render("total:"), total/60, total%60)
	return 0
}

func printTimerUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: deckhand timer <start|stop|log> <task-id>")
}
