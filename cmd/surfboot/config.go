package main

import (
	"flag"
	"fmt"
	"os"

	"surfboot/internal/config"
)

func runConfig(args []string) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	o := bindOverrides(fs)
	defaults := fs.Bool("defaults", false, "print the built-in defaults instead")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: surfboot config [flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the effective configuration as YAML, after flag overrides.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "config takes no arguments")
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if !*defaults {
		var err error
		if cfg, err = o.load(fs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}
