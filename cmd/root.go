// Package cmd wires up the CLI flags and starts the server.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"cmdsrv/config"
	"cmdsrv/internal/core"
	"cmdsrv/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X cmdsrv/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the server until ctx is cancelled or a
// fatal listener error occurs.
func Execute(ctx context.Context, args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("cmdsrv", flag.ContinueOnError)

	// ── listener ─────────────────────────────────────────────────
	var portSpec string
	fs.StringVarP(&portSpec, "port", "p", "", fmt.Sprintf("Listen port (default %d)", config.DefaultPort))
	fs.IntVar(&cfg.Backlog, "backlog", config.DefaultBacklog, "Pending connection queue length")

	// ── requests ─────────────────────────────────────────────────
	fs.StringVarP(&cfg.Root, "root", "r", "", "Only serve command files beneath this directory")
	var timeoutSec int
	fs.IntVarP(&timeoutSec, "timeout", "w", 0, "Per-connection timeout in seconds (0 = none)")

	// ── output ───────────────────────────────────────────────────
	var verbose int
	var quiet bool
	fs.CountVarP(&verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("cmdsrv %s\n", version)
		return nil
	}

	// ── positional arguments ─────────────────────────────────────
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		portSpec = rest[0]
	default:
		return fmt.Errorf("too many arguments (use --help for usage)")
	}
	if portSpec != "" {
		port, err := config.ParsePort(portSpec)
		if err != nil {
			return err
		}
		cfg.Port = port
	}

	cfg.Timeout = time.Duration(timeoutSec) * time.Second
	cfg.Verbose = config.DefaultVerbosity + verbose
	if quiet {
		cfg.Verbose = 0
	}

	// ── build and run ────────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `cmdsrv – command file server v%s

Serves one TCP client at a time.  A client sends the path of a command
file; the server evaluates it and replies with the result text.

Usage:
  cmdsrv [options] [port]

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Command files:
  add | sub              followed by two integer lines
  hash_generic           followed by one message line (BLAKE2b-256)
  hash_sha256            followed by one message line
  hash_sha512            followed by one message line

Examples:
  cmdsrv                                      Listen on %d
  cmdsrv 9000                                 Listen on 9000
  cmdsrv -r /srv/commands -w 5                Sandboxed, 5s timeout
  printf '/tmp/cmd1' | nc localhost 12345     Send a request
`, config.DefaultPort)
}
