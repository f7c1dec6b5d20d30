package main

import (
	"flag"
	"strings"

	"surfboot/internal/config"
)

// overrides are the command-line counterparts of config fields.
type overrides struct {
	configPath string
	renderer   string
	width      uint
	height     uint
	reset      string
	fps        int
	title      string
	logLevel   string
	verbose    bool
}

func bindOverrides(fs *flag.FlagSet) *overrides {
	o := &overrides{}
	fs.StringVar(&o.configPath, "config", "", "config file (default ~/.config/surfboot/config.yaml)")
	fs.StringVar(&o.renderer, "renderer", "", "renderer: noop, opengl, vulkan, webgpu")
	fs.UintVar(&o.width, "width", 0, "window width")
	fs.UintVar(&o.height, "height", 0, "window height")
	fs.StringVar(&o.reset, "reset", "", "comma-separated reset flags: vsync, msaa, srgb, flush_after_render")
	fs.IntVar(&o.fps, "fps", 0, "frame cap, 0 for uncapped")
	fs.StringVar(&o.title, "title", "", "window title")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&o.verbose, "v", false, "development logging at debug level")
	return o
}

// load reads the config file and applies the flags that were set on fs.
func (o *overrides) load(fs *flag.FlagSet) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFromPath(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	o.apply(cfg, fs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *overrides) apply(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			cfg.Renderer = o.renderer
		case "width":
			cfg.Width = uint32(o.width)
		case "height":
			cfg.Height = uint32(o.height)
		case "reset":
			cfg.Reset = splitList(o.reset)
		case "fps":
			cfg.FPSLimit = o.fps
		case "title":
			cfg.Title = o.title
		case "log-level":
			cfg.LogLevel = o.logLevel
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
