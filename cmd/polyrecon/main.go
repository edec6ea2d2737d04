// Command polyrecon reconstructs secrets from test case files, generates
// test cases, and serves reconstruction over HTTP.
//
// Usage:
//
//	polyrecon recon [flags] files...
//	polyrecon deal -secret S -k K -n N [flags]
//	polyrecon serve [flags]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shaih/go-polyrecon/config"
	log "github.com/sirupsen/logrus"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout, stderr io.Writer) int
}

var commands = []command{
	{"recon", "reconstruct the secrets of test case files", runRecon},
	{"deal", "generate a test case from a secret", runDeal},
	{"serve", "serve reconstruction over HTTP", runServe},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], stdout, stderr)
		}
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(stdout)
		return exitOK
	}
	fmt.Fprintf(stderr, "unknown command %q\n", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: polyrecon <command> [flags]")
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-6s %s\n", c.name, c.usage)
	}
}

// loadConfig loads the configuration file path and sets the log level from it.
// debug forces the debug level.
func loadConfig(path string, debug bool, stderr io.Writer) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.SetOutput(stderr)
	if debug {
		cfg.LogLevel = log.DebugLevel.String()
	}
	if err := cfg.ApplyLogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}
