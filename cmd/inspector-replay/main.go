// Package main provides the CLI entrypoint for inspector-replay.
//
// inspector-replay builds a scene from a YAML script, plays the script's change
// events through the inspector dispatchers and prints what was applied:
//   - events that produce a command are executed on the command stack
//   - events that produce nothing are reported with field name suggestions
//   - the last N commands can be undone before the final state is printed
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/davecgh/go-spew/spew"

	"scene-inspector/command"
	"scene-inspector/internal/config"
	"scene-inspector/internal/replay"
	"scene-inspector/internal/script"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inspector-replay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	scriptPath := fs.String("script", "", "YAML scene and event script (required)")
	configPath := fs.String("config", "", "YAML settings file")
	undo := fs.Int("undo", 0, "undo the last N applied commands after the replay")
	dump := fs.Bool("dump", false, "dump the final scene")
	logLevel := fs.String("log-level", "", "override the configured log level")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if *scriptPath == "" {
		fmt.Fprintln(stderr, "error: -script is required")
		fs.Usage()

		return exitUsage
	}

	if *undo < 0 {
		fmt.Fprintln(stderr, "error: -undo must not be negative")

		return exitUsage
	}

	cfg, err := loadConfig(*configPath, *logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFailure
	}

	logger, err := cfg.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFailure
	}

	file, err := script.LoadFile(*scriptPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFailure
	}

	s, err := file.Build()
	if err != nil {
		fmt.Fprintf(stderr, "error: build %s: %v\n", *scriptPath, err)

		return exitFailure
	}

	stack := command.NewStack(command.WithLimit(cfg.HistoryLimit), command.WithLogger(logger))
	res := replay.NewRunner(stack, logger).Run(s, *undo)

	for _, d := range res.Diagnostics.All() {
		fmt.Fprintf(stdout, "%s: %s\n", d.Severity, d)
	}

	fmt.Fprintf(stdout, "applied %d, declined %d, undone %d\n", res.Applied, res.Declined, res.Undone)
	printNodes(stdout, s)

	if *dump {
		spew.Fdump(stdout, s.Graph)
	}

	if res.Diagnostics.HasErrors() {
		return exitFailure
	}

	return exitOK
}

func loadConfig(path, level string) (config.Config, error) {
	cfg := config.Default()

	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return config.Config{}, err
		}
	}

	if level != "" {
		cfg.Log.Level = level
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

func printNodes(w io.Writer, s *script.Script) {
	ids := make([]string, 0, len(s.Handles))
	for id := range s.Handles {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	for _, id := range ids {
		node, ok := s.Graph.Node(s.Handles[id])
		if !ok {
			continue
		}

		base := node.NodeBase()
		fmt.Fprintf(w, "%-8s %-16s name=%q visible=%t tag=%q\n",
			id, node.Kind(), base.Name, base.Visibility, base.Tag)
	}
}
