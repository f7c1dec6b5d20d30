package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"surfboot/internal/graphics/renderer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Renderer != Default().Renderer || cfg.Width != 900 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != "surfboot" {
		t.Fatalf("expected default title, got %q", cfg.Title)
	}
}

func TestLoadFromPath_OverridesFields(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"renderer: vulkan",
		"width: 1280",
		"height: 720",
		"reset: [msaa, srgb]",
		"fps_limit: 144",
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Renderer != renderer.TypeVulkan {
		t.Errorf("renderer = %v, want vulkan", opts.Renderer)
	}
	if opts.Resolution.Width != 1280 || opts.Resolution.Height != 720 {
		t.Errorf("resolution = %v", opts.Resolution)
	}
	if opts.Resolution.Reset != renderer.ResetMSAA|renderer.ResetSRGB {
		t.Errorf("reset = %v", opts.Resolution.Reset)
	}
	if cfg.FPSLimit != 144 {
		t.Errorf("fps_limit = %d", cfg.FPSLimit)
	}
	// untouched fields keep their defaults
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q", cfg.LogLevel)
	}
}

func TestLoadFromPath_RejectsInvalid(t *testing.T) {
	tests := []struct {
		body string
		path string
	}{
		{"renderer: directx\n", "renderer"},
		{"width: 0\n", "width"},
		{"height: 0\n", "height"},
		{"reset: [triple_buffer]\n", "reset"},
		{"fps_limit: -1\n", "fps_limit"},
		{"log_level: chatty\n", "log_level"},
	}
	for _, tt := range tests {
		_, err := LoadFromPath(writeConfig(t, tt.body))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%q: expected ValidationError, got %v", tt.body, err)
		}
		if verr.Path != tt.path {
			t.Errorf("%q: path = %q, want %q", tt.body, verr.Path, tt.path)
		}
	}
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	if _, err := LoadFromPath(writeConfig(t, "width: [\n")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Renderer = "opengl"
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "renderer: opengl") {
		t.Fatalf("unexpected yaml:\n%s", data)
	}

	loaded, err := LoadFromPath(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Renderer != "opengl" {
		t.Fatalf("renderer = %q", loaded.Renderer)
	}
}

func TestSetFPSLimit_Clamps(t *testing.T) {
	defer SetFPSLimit(DefaultFPSLimit)

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("negative limit: got %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != MaxFPSLimit {
		t.Errorf("large limit: got %d, want %d", got, MaxFPSLimit)
	}

	cfg := Default()
	cfg.FPSLimit = 75
	cfg.Apply()
	if got := GetFPSLimit(); got != 75 {
		t.Errorf("apply: got %d, want 75", got)
	}
}
