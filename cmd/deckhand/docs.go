// ABOUTME: The "docs" subcommand: render the bundled API catalog and topic guides.
// ABOUTME: Works offline; no token required.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/2389-research/deckhand/apidoc"
)

// runDocs renders the endpoint catalog, one endpoint group, or a topic guide.
func runDocs(args []string) int {
	var catalogFile string
	fs := flag.NewFlagSet("deckhand docs", flag.ContinueOnError)
	fs.StringVar(&catalogFile, "catalog", "", "Load an endpoint catalog from a YAML file instead of the bundled one")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: deckhand docs [flags] [group-or-topic]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Without arguments, prints the full endpoint catalog. With a name,")
		fmt.Fprintln(os.Stderr, "prints that endpoint group, or the topic guide if one exists.")
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	catalog, err := loadCatalog(catalogFile)
	if err != nil {
		return fail(err)
	}

	if fs.NArg() == 0 {
		fmt.Print(apidoc.RenderCatalog(catalog))
		return 0
	}
	name := strings.ToLower(fs.Arg(0))

	// Topic guides take precedence over the bare endpoint listing.
	if source, err := catalog.TopicSource(name); err == nil {
		fmt.Print(apidoc.RenderMarkdown(source))
		return 0
	}

	group, ok := catalog.Group(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: no endpoint group or topic %q\n", name)
		fmt.Fprintf(os.Stderr, "groups: %s\n", strings.Join(groupNames(catalog), ", "))
		return 1
	}
	fmt.Print(apidoc.RenderGroup(group))
	return 0
}

func loadCatalog(path string) (*apidoc.Catalog, error) {
	if path != "" {
		return apidoc.LoadFile(path)
	}
	return apidoc.Load()
}

func groupNames(cat *apidoc.Catalog) []string {
	var out []string
	for _, g := range cat.Groups {
		out = append(out, g.Name)
	}
	return out
}
