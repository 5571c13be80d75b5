// ABOUTME: The "raw" subcommand: direct passthrough requests against any API path.
// ABOUTME: Covers endpoints without a dedicated command (archive, column admin, arbitrary filters).
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// runRaw issues one request against an arbitrary API path and pretty-prints
// the JSON response.
func runRaw(args []string) int {
	var (
		common commonFlags
		method string
		data   string
		query  repeatedFlag
	)
	fs := flag.NewFlagSet("deckhand raw", flag.ContinueOnError)
	common.register(fs)
	fs.StringVar(&method, "X", "GET", "HTTP method")
	fs.StringVar(&data, "d", "", "JSON request body, or @file to read one")
	fs.Var(&query, "q", "Query parameter as key=value, repeatable")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand raw [flags] <path>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Issue a single request against an API path, e.g. /tm/projects.")
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
	path := fs.Arg(0)

	var body any
	if data != "" {
		raw := []byte(data)
		if strings.HasPrefix(data, "@") {
			var err error
			raw, err = os.ReadFile(data[1:])
			if err != nil {
				return fail(err)
			}
		}
		var parsed json.RawMessage
		if err := json.Unmarshal(raw, &parsed); err != nil {
			fmt.Fprintf(os.Stderr, "error: request body is not valid JSON: %v\n", err)
			return 2
		}
		body = parsed
	}

	params := map[string]string{}
	for _, q := range query {
		key, value, ok := strings.Cut(q, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "error: invalid query parameter %q (want key=value)\n", q)
			return 2
		}
		params[key] = value
	}

	client, err := common.newClient()
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	resp, err := client.Do(ctx, strings.ToUpper(method), path, body, params)
	if err != nil {
		return fail(err)
	}
	if len(resp) == 0 {
		fmt.Println(okStyle.Render("ok"))
		return 0
	}

	var pretty map[string]any
	if err := json.Unmarshal(resp, &pretty); err == nil {
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err == nil {
			fmt.Println(string(out))
			return 0
		}
	}
	fmt.Println(string(resp))
	return 0
}
