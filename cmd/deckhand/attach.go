// ABOUTME: The "attach" subcommand: upload a local file as a task attachment.
// ABOUTME: Streams the file through the client's multipart upload.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// runAttach uploads a file to a task.
func runAttach(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("deckhand attach", flag.ContinueOnError)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand attach [flags] <task-id> <file>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Upload a local file as an attachment on the task.")
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}

	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid task id %q\n", fs.Arg(0))
		return 2
	}
	path := fs.Arg(1)

	f, err := os.Open(path)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	att, err := client.UploadAttachment(ctx, id, filepath.Base(path), f)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s uploaded %s to #%d", okStyle.Render("ok"), att.Name, id)
	if att.URL != "" {
		fmt.Printf(" %s", dimStyle.Render(att.URL))
	}
	fmt.Println()
	return 0
}
