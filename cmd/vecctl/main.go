package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/zeusync/easyvector/internal/core/observability/log"
	"github.com/zeusync/easyvector/internal/injector"
	"github.com/zeusync/easyvector/internal/scenario"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run evaluates the scenario files named in args and writes the YAML report
// to stdout. It returns exitFailed when any step fails and exitUsage for bad
// flags or unreadable documents.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("vecctl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	levelFlag := flags.String("level", os.Getenv("LOG_LEVEL"), "log level: debug|info|warn|error")
	parallel := flags.Int("parallel", runtime.GOMAXPROCS(0), "scenarios evaluated at once (<= 0 means unbounded)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: vecctl [flags] scenario.yaml...\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	level, err := log.ParseLevel(*levelFlag)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}

	docs := make([]*scenario.Document, 0, flags.NArg())
	for _, path := range flags.Args() {
		doc, err := scenario.LoadFile(path)
		if err != nil {
			fmt.Fprintln(stderr, "Error loading scenarios:", err)
			return exitUsage
		}
		docs = append(docs, doc)
	}

	app, err := injector.InitializeApp(level)
	if err != nil {
		fmt.Fprintln(stderr, "Error creating logger:", err)
		return exitUsage
	}
	defer func() { _ = app.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := app.Runner.WithParallelism(*parallel).Run(ctx, docs...)
	if werr := report.WriteYAML(stdout); werr != nil {
		app.Logger.Error("write report", log.Error(werr))
		return exitFailed
	}
	if err != nil || !report.Passed() {
		return exitFailed
	}
	return exitOK
}
