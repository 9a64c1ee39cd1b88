// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

// gemini-dispatch is a small CLI over the dispatch library: it sends one
// generate content request to whichever platform the configured credentials
// select and writes the raw response body to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/envoyproxy/gemini-dispatch/internal/version"
)

type (
	// cmd corresponds to the top-level `gemini-dispatch` command.
	cmd struct {
		// Version is the sub-command to show the version.
		Version struct{} `cmd:"" help:"Show version."`
		// Generate is the sub-command parsed by the `cmdGenerate` struct.
		Generate cmdGenerate `cmd:"" help:"Send a generate content request and print the raw response body."`
	}
	// cmdGenerate corresponds to the `gemini-dispatch generate` command.
	cmdGenerate struct {
		Debug  bool   `help:"Enable debug logging emitted to stderr."`
		Config string `help:"Path to the connection configuration yaml file. Optional when GEMINI_API_KEY is set." type:"path"`
		Model  string `help:"Model identifier, overriding the configured one." default:""`
		Prompt string `arg:"" help:"Prompt text to send."`
	}

	generateFn func(context.Context, cmdGenerate, io.Writer, *slog.Logger) error
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	doMain(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Exit, generate)
}

// doMain parses the command line arguments and executes the appropriate
// command. The writers, exit function, and generate function are injectable
// for testing.
func doMain(ctx context.Context, stdout, stderr io.Writer, args []string, exitFn func(int), gf generateFn) {
	var c cmd
	parser, err := kong.New(&c,
		kong.Name("gemini-dispatch"),
		kong.Description("Gemini request dispatch CLI"),
		kong.Writers(stdout, stderr),
		kong.Exit(exitFn),
	)
	if err != nil {
		log.Fatalf("Error creating parser: %v", err)
	}
	parsed, err := parser.Parse(args)
	parser.FatalIfErrorf(err)
	switch parsed.Command() {
	case "version":
		_, _ = fmt.Fprintf(stdout, "%s: %s\n", version.LibraryName, version.Current())
	case "generate <prompt>":
		level := slog.LevelInfo
		if c.Generate.Debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
		if err = gf(ctx, c.Generate, stdout, logger); err != nil {
			log.Fatalf("Error generating: %v", err)
		}
	default:
		panic("unreachable")
	}
}
