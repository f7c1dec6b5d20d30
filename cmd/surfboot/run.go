package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"surfboot/internal/frame"
	"surfboot/internal/graphics/backend/opengl"
	"surfboot/internal/graphics/renderer"
	"surfboot/internal/platform/glfwwin"
	"surfboot/internal/profiling"
)

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	o := bindOverrides(fs)
	frames := fs.Int("frames", 0, "exit after this many frames, 0 to run until closed")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: surfboot run [flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window, bootstrap the renderer on its native surface and keep it open.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := o.load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger, err := newLogger(cfg.LogLevel, o.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()
	cfg.Apply()

	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := glfw.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "glfw init: %v\n", err)
		return 1
	}
	defer glfw.Terminate()

	w, err := setupWindow(cfg, opts, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create window: %v\n", err)
		return 1
	}
	defer w.Destroy()
	win := glfwwin.Wrap(w)

	boot := setupBackends(win)
	ctx, err := boot.Start(glfwwin.Library{}, win, opts)
	if err != nil {
		printBootstrapError(err)
		return 1
	}
	closer.Bind(func() { _ = ctx.Close() })
	defer ctx.Close()

	for _, s := range profiling.Stages() {
		logger.Debug("bootstrap stage", zap.String("stage", s.Name), zap.Duration("took", s.Duration))
	}

	loop(w, ctx, *frames)
	return 0
}

// loop keeps the window responsive until it is closed or the frame budget
// runs out.
func loop(w *glfw.Window, ctx renderer.Context, frames int) {
	limiter := frame.NewLimiter()
	glctx, _ := ctx.(*opengl.Context)

	for n := 0; !w.ShouldClose(); n++ {
		if frames > 0 && n >= frames {
			break
		}
		glfw.PollEvents()
		if glctx != nil {
			glctx.Flush()
			w.SwapBuffers()
		}
		idle := w.GetAttrib(glfw.Iconified) == glfw.True || w.GetAttrib(glfw.Focused) == glfw.False
		limiter.Wait(idle)
	}
}

func printBootstrapError(err error) {
	fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)

	var rerr *renderer.Error
	if !errors.As(err, &rerr) {
		return
	}
	switch {
	case errors.Is(err, renderer.ErrProtocolUndetected):
		fmt.Fprintln(os.Stderr, "the windowing library did not report x11 or wayland; is a display server running?")
	case errors.Is(err, renderer.ErrHandlesAbsent):
		fmt.Fprintf(os.Stderr, "the window exposes no native %s handles\n", rerr.Protocol)
	case errors.Is(err, renderer.ErrBackendInitFailed):
		fmt.Fprintf(os.Stderr, "try another renderer with -renderer (%s was selected)\n", rerr.Renderer)
	}
}
