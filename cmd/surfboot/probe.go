package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"surfboot/internal/platform"
	"surfboot/internal/platform/glfwwin"
)

// probeReport is what probe prints.
type probeReport struct {
	Driver      string
	Protocol    platform.Protocol
	SessionHint platform.Protocol
	SessionEnv  string
	Descriptor  platform.Descriptor
}

func runProbe(args []string) int {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	verbose := fs.Bool("v", false, "development logging at debug level")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: surfboot probe [-v]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a hidden window and report the active windowing protocol and its native handles.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "probe takes no arguments")
		fs.Usage()
		return 2
	}

	logger, err := newLogger("warn", *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	if err := glfw.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "glfw init: %v\n", err)
		return 1
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	w, err := glfw.CreateWindow(64, 64, "surfboot probe", nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create window: %v\n", err)
		return 1
	}
	defer w.Destroy()

	r := probe(glfwwin.Library{}, glfwwin.Wrap(w))
	printProbe(r)
	if !r.Descriptor.Valid() {
		return 1
	}
	return 0
}

func probe(lib platform.Library, win platform.Window) probeReport {
	r := probeReport{
		Protocol:    platform.DetectActiveProtocol(lib),
		SessionHint: platform.SessionHint(),
		SessionEnv:  platform.SessionEnv(),
	}
	if lib != nil {
		r.Driver = lib.CurrentVideoDriver()
	}
	if h, ok := platform.ExtractHandles(win, r.Protocol); ok {
		r.Descriptor = platform.Build(h)
	}
	return r
}

func printProbe(r probeReport) {
	fmt.Printf("driver:       %q\n", r.Driver)
	fmt.Printf("protocol:     %s\n", r.Protocol)
	fmt.Printf("session_hint: %s\n", r.SessionHint)
	if r.SessionEnv != "" {
		fmt.Printf("session_env:  %s\n", r.SessionEnv)
	}
	fmt.Printf("handles:      %v\n", r.Descriptor.Valid())
	fmt.Printf("descriptor:   %s\n", r.Descriptor)
}
