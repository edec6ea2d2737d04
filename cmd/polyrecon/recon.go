package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/profile"
	"github.com/shaih/go-polyrecon/casefile"
	"github.com/shaih/go-polyrecon/primitives/shamir"
)

func runRecon(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Configuration file (yaml, json or toml)")
	format := fs.String("format", "text", "Output format: text or json")
	debug := fs.Bool("debug", false, "Log at debug level and dump decoded test cases")
	cpuProfile := fs.String("cpuprofile", "", "Write a CPU profile to this directory")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "recon: no test case file given")
		return exitUsage
	}
	if *format != "text" && *format != "json" {
		fmt.Fprintf(stderr, "recon: unknown output format %q\n", *format)
		return exitUsage
	}

	cfg, err := loadConfig(*configPath, *debug, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "recon: %v\n", err)
		return exitFail
	}
	opts := cfg.Options()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	status := exitOK
	for _, path := range fs.Args() {
		report := processFile(path, opts, *debug, stderr)
		if report.Failed() {
			status = exitFail
		}
		if err := writeReport(stdout, report, *format); err != nil {
			fmt.Fprintf(stderr, "recon: %v\n", err)
			return exitFail
		}
	}
	return status
}

// processFile never fails: errors are recorded in the report
func processFile(path string, opts shamir.Options, debug bool, stderr io.Writer) *casefile.Report {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	tc, err := casefile.Load(path)
	if err != nil {
		return casefile.NewReport(name, nil, nil, err)
	}
	if debug {
		spew.Fdump(stderr, tc)
	}
	rec, v, err := shamir.Process(tc, opts)
	return casefile.NewReport(name, rec, v, err)
}

func writeReport(w io.Writer, report *casefile.Report, format string) error {
	if format == "json" {
		if err := casefile.EncodeReport(w, report, casefile.FormatJSON); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	return casefile.WriteText(w, report)
}
