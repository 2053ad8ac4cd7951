package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "show":
		err = runShow(args[1:], stdout)
	case "check":
		if len(args) < 2 {
			fmt.Fprintln(stderr, "Usage: blogconf check <file>")
			return 1
		}
		var ok bool
		ok, err = runCheck(args[1], stdout)
		if err == nil && !ok {
			return 1
		}
	case "init":
		if len(args) < 2 {
			fmt.Fprintln(stderr, "Usage: blogconf init <file> [revision]")
			return 1
		}
		err = runInit(args[1:], stdout)
	case "serve":
		if len(args) < 2 {
			fmt.Fprintln(stderr, "Usage: blogconf serve <file|revision>")
			return 1
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = runServe(ctx, args[1], stdout)
	case "version":
		fmt.Fprintf(stdout, "blogconf %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `blogconf - Site configuration for the blog generator

Usage:
  blogconf <command> [arguments]

Commands:
  show [revision] [yaml|json]   Print a preset configuration (default: latest, yaml)
  check <file>                  Lint a configuration file
  init <file> [revision]        Write a preset configuration to file
  serve <file|revision>         Serve a read-only preview (address from BLOGCONF_ADDR)
  version                       Print the blogconf version
  help                          Show this help message

Examples:
  blogconf show r1 json
  blogconf init pelicanconf.yaml
  blogconf check pelicanconf.yaml`)
}
