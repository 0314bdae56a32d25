package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/art/sheets", "/art/sheets"},
		{"single trailing slash", "/art/sheets/", "/art/sheets"},
		{"multiple trailing slashes", "/art/sheets///", "/art/sheets"},
		{"root path", "/", "/"},
		{"relative path", "results", "results"},
		{"relative with slash", "results/", "results"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegion_Fits(t *testing.T) {
	idle := Region{Left: 0, Top: 512, Width: 64, Height: 256}
	tests := []struct {
		name string
		w, h int
		want bool
	}{
		{"exact fit", 64, 768, true},
		{"roomy sheet", 640, 1088, true},
		{"too short", 640, 500, false},
		{"too narrow", 63, 1088, false},
		{"one pixel short", 64, 767, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idle.Fits(tt.w, tt.h); got != tt.want {
				t.Errorf("Fits(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestRegion_Rect(t *testing.T) {
	r := Region{Left: 10, Top: 20, Width: 30, Height: 40}
	got := r.Rect()
	if got.Min.X != 10 || got.Min.Y != 20 || got.Dx() != 30 || got.Dy() != 40 {
		t.Errorf("Rect() = %v", got)
	}
}

func TestPattern_DerivedFromTargets(t *testing.T) {
	cfg := DefaultConfig()
	if got, want := cfg.Pattern(), "spritesheets/**/*/*.png"; got != want {
		t.Errorf("Pattern() = %q, want %q", got, want)
	}

	cfg.Targets = "art/in"
	if got, want := cfg.Pattern(), "art/in/**/*/*.png"; got != want {
		t.Errorf("Pattern() = %q, want %q", got, want)
	}

	cfg.SpriteSheetPattern = "other/*.png"
	if got := cfg.Pattern(); got != "other/*.png" {
		t.Errorf("explicit Pattern() = %q", got)
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Animations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"no animations", func(c *Config) { c.Animations = nil }, "no animations"},
		{"missing region", func(c *Config) { c.Animations = []string{"Jump"} }, "no region"},
		{"duplicate", func(c *Config) { c.Animations = []string{"Idle", "Idle"} }, "more than once"},
		{"blank name", func(c *Config) { c.Animations = []string{" "} }, "must not be empty"},
		{"negative origin", func(c *Config) {
			c.AnimationsData["Idle"] = Region{Left: -1, Top: 0, Width: 64, Height: 64}
		}, "negative"},
		{"zero width", func(c *Config) {
			c.AnimationsData["Idle"] = Region{Left: 0, Top: 0, Width: 0, Height: 64}
		}, "positive"},
		{"unused broken region is ignored", func(c *Config) {
			c.Animations = []string{"Walk"}
			c.AnimationsData["Idle"] = Region{}
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_PathsAndWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Targets = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with empty targets")
	}

	cfg = DefaultConfig()
	cfg.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with zero workers")
	}

	cfg = DefaultConfig()
	cfg.SpriteSheetPattern = "sheets/[*.png"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with a malformed glob")
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		targets string
		results string
		wantErr bool
	}{
		{"separate directories", "/art/spritesheets", "/art/results", false},
		{"results equals targets", "/art/sheets", "/art/sheets", true},
		{"results inside targets", "/art/sheets", "/art/sheets/out", true},
		{"results is parent of targets", "/art/sheets/sub", "/art/sheets", false},
		{"similar prefix not nested", "/art/sheets", "/art/sheets2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.targets, tt.results)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.targets, tt.results, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Targets != "spritesheets" || cfg.Results != "results" {
		t.Errorf("default paths = %q, %q", cfg.Targets, cfg.Results)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("default Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.DryRun || cfg.Strict {
		t.Error("default DryRun and Strict should be false")
	}
	want := []string{"Idle", "Slash", "Thrust", "Walk", "Shoot", "Cast"}
	if strings.Join(cfg.Animations, ",") != strings.Join(want, ",") {
		t.Errorf("default Animations = %v, want %v", cfg.Animations, want)
	}
	if got := cfg.AnimationsData["Idle"]; got != (Region{Left: 0, Top: 512, Width: 64, Height: 256}) {
		t.Errorf("default Idle region = %+v", got)
	}
}

func TestDefaultConfig_Independent(t *testing.T) {
	a := DefaultConfig()
	a.AnimationsData["Idle"] = Region{}
	a.Animations[0] = "Changed"

	b := DefaultConfig()
	if b.AnimationsData["Idle"].Width != 64 || b.Animations[0] != "Idle" {
		t.Error("DefaultConfig values must not share state between calls")
	}
}

func TestLoad_MissingDefaultFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, _, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists should be false without a config file")
	}
	if cfg.Targets != "spritesheets" {
		t.Errorf("Targets = %q, want default", cfg.Targets)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("Load should fail for a missing explicit config file")
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetcrop.toml")
	body := `
targets = "art/in/"
results = "art/out"
workers = 3
strict = true
animations = ["Walk"]

[animations_data]
Walk = { left = 0, top = 0, width = 128, height = 64 }
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Errorf("exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Targets != "art/in" || cfg.Results != "art/out" {
		t.Errorf("paths = %q, %q", cfg.Targets, cfg.Results)
	}
	if cfg.Workers != 3 || !cfg.Strict {
		t.Errorf("Workers=%d Strict=%v", cfg.Workers, cfg.Strict)
	}
	if len(cfg.AnimationsData) != 1 {
		t.Errorf("animations_data should replace defaults, got %d entries", len(cfg.AnimationsData))
	}
	if cfg.AnimationsData["Walk"].Width != 128 {
		t.Errorf("Walk region = %+v", cfg.AnimationsData["Walk"])
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("absent color key should keep default, got %q", cfg.ColorMode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetcrop.toml")
	if err := os.WriteFile(path, []byte("tragets = \"typo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Error("Load should reject unknown keys")
	}
}

func TestCreateSample_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "sheetcrop.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config invalid: %v", err)
	}
	def := DefaultConfig()
	for name, r := range def.AnimationsData {
		if cfg.AnimationsData[name] != r {
			t.Errorf("sample %s = %+v, want %+v", name, cfg.AnimationsData[name], r)
		}
	}

	if err := CreateSample(path); err == nil {
		t.Error("CreateSample should refuse to overwrite")
	}
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("sheetcrop", pflag.ContinueOnError)
	vals := BindFlags(fs)
	err := fs.Parse([]string{
		"--targets", "in/", "--results", "out",
		"--animations", "walk,IDLE",
		"-j", "2", "--dry-run", "--no-color",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Strict = true // set by file; untouched flag must not reset it
	if err := ApplyFlags(fs, vals, &cfg); err != nil {
		t.Fatalf("ApplyFlags: %v", err)
	}

	if cfg.Targets != "in" || cfg.Results != "out" {
		t.Errorf("paths = %q, %q", cfg.Targets, cfg.Results)
	}
	if got := strings.Join(cfg.Animations, ","); got != "Walk,Idle" {
		t.Errorf("Animations = %q, want canonical names in flag order", got)
	}
	if cfg.Workers != 2 || !cfg.DryRun || !cfg.Strict {
		t.Errorf("Workers=%d DryRun=%v Strict=%v", cfg.Workers, cfg.DryRun, cfg.Strict)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
}

func TestApplyFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown animation", []string{"--animations", "Jump"}},
		{"bad color", []string{"--color", "rainbow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("sheetcrop", pflag.ContinueOnError)
			vals := BindFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			cfg := DefaultConfig()
			if err := ApplyFlags(fs, vals, &cfg); err == nil {
				t.Error("ApplyFlags should fail")
			}
		})
	}
}
