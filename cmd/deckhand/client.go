// ABOUTME: Shared CLI plumbing: common flags, client construction, and a signal-cancelled context.
// ABOUTME: Token and base URL resolution order is flag, then environment, then config file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2389-research/deckhand/weeek"
)

// commonFlags holds flags shared by every API-backed subcommand.
type commonFlags struct {
	verbose bool
	baseURL string
}

// register adds the shared flags to a subcommand's flag set.
func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "Print request traces to stderr")
	fs.StringVar(&c.baseURL, "base-url", "", "Custom API base URL")
}

// newClient builds an API client from flags, environment, and the optional
// config file.
func (c *commonFlags) newClient() (*weeek.Client, error) {
	cfg, err := loadFileConfig()
	if err != nil {
		return nil, err
	}

	token := os.Getenv("WEEEK_API_TOKEN")
	if token == "" {
		token = cfg.Token
	}

	baseURL := c.baseURL
	if baseURL == "" {
		baseURL = os.Getenv("DECKHAND_BASE_URL")
	}
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}

	var opts []weeek.Option
	if baseURL != "" {
		opts = append(opts, weeek.WithBaseURL(baseURL))
	}
	if c.verbose || cfg.Verbose {
		opts = append(opts, weeek.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "[api] "+format+"\n", args...)
		}))
	}

	return weeek.New(token, opts...)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	return ctx, cancel
}

// repeatedFlag collects a string flag that may be passed multiple times.
type repeatedFlag []string

func (r *repeatedFlag) String() string { return fmt.Sprint([]string(*r)) }

func (r *repeatedFlag) Set(value string) error {
	*r = append(*r, value)
	return nil
}
