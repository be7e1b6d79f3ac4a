package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/decor/internal/config"
)

const configPathUsage = "Config file path (default: ~/.config/decor/config.yaml)"

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  decor config validate [--path PATH]")
	fmt.Fprintln(w, "  decor config print [--path PATH] [--defaults]")
	fmt.Fprintln(w, "  decor config explain [--path PATH] <yaml.path>")
}

// configCmd runs one config subcommand against a parsed flag set.
type configCmd struct {
	fs     *flag.FlagSet
	path   *string
	stdout io.Writer
	stderr io.Writer
}

func runConfig(args []string) int {
	return runConfigTo(os.Stdout, os.Stderr, args)
}

func runConfigTo(stdout, stderr io.Writer, args []string) int {
	if len(args) == 0 {
		printConfigUsage(stderr)
		return 2
	}
	cmds := map[string]func(*configCmd) func([]string) int{
		"validate": (*configCmd).validate,
		"print":    (*configCmd).print,
		"explain":  (*configCmd).explain,
	}
	run, ok := cmds[args[0]]
	if !ok {
		if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
			printConfigUsage(stdout)
			return 0
		}
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n\n", args[0])
		printConfigUsage(stderr)
		return 2
	}

	fs := flag.NewFlagSet("config "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &configCmd{
		fs:     fs,
		path:   fs.String("path", "", configPathUsage),
		stdout: stdout,
		stderr: stderr,
	}
	return run(c)(args[1:])
}

func (c *configCmd) load() (*config.LoadResult, bool) {
	res, err := loadConfig(*c.path)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return nil, false
	}
	return res, true
}

func (c *configCmd) validate() func([]string) int {
	return func(args []string) int {
		if err := c.fs.Parse(args); err != nil {
			return 2
		}
		res, ok := c.load()
		if !ok {
			return 1
		}
		fmt.Fprintf(c.stdout, "config: ok (%d file(s))\n", len(res.Files))
		return 0
	}
}

func (c *configCmd) print() func([]string) int {
	defaults := c.fs.Bool("defaults", false, "Print built-in defaults (no files)")
	return func(args []string) int {
		if err := c.fs.Parse(args); err != nil {
			return 2
		}
		cfg := config.DefaultConfig()
		if !*defaults {
			res, ok := c.load()
			if !ok {
				return 1
			}
			cfg = res.Config
		}
		return c.writeYAML(cfg)
	}
}

func (c *configCmd) explain() func([]string) int {
	return func(args []string) int {
		if err := c.fs.Parse(args); err != nil {
			return 2
		}
		if c.fs.NArg() != 1 {
			fmt.Fprintln(c.stderr, "explain takes one <yaml.path>; known paths:")
			for _, p := range config.Paths() {
				fmt.Fprintln(c.stderr, "  "+p)
			}
			return 2
		}

		res, ok := c.load()
		if !ok {
			return 1
		}
		query := c.fs.Arg(0)
		value, src, err := config.Explain(res, query)
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			return 1
		}
		fmt.Fprintf(c.stdout, "path: %s\nsource: %s\nvalue:\n", query, config.FormatSource(src))
		return c.writeYAML(value)
	}
}

func (c *configCmd) writeYAML(v any) int {
	enc := yaml.NewEncoder(c.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}
	return 0
}
