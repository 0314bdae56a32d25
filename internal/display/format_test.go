package display

import (
	"strings"
	"testing"

	"github.com/backmassage/sheetcrop/internal/config"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"negative", -2048, "-2.0 KiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatRegion(t *testing.T) {
	r := config.Region{Left: 0, Top: 512, Width: 64, Height: 256}
	if got, want := FormatRegion(r), "64x256 @ 0,512"; got != want {
		t.Errorf("FormatRegion = %q, want %q", got, want)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Count"},
		[][]string{{"written", "3"}, {"short"}},
		[]Align{AlignLeft, AlignRight},
	)
	for _, want := range []string{"Name", "Count", "written", "short"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if RenderTable(nil, nil, nil) != "" {
		t.Error("no headers should render nothing")
	}
}

func TestRenderRegions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animations = append(cfg.Animations, "Jump")
	out := RenderRegions(&cfg)

	if !strings.Contains(out, "Idle") || !strings.Contains(out, "64x768") {
		t.Errorf("Idle row missing or wrong min sheet:\n%s", out)
	}
	if !strings.Contains(out, "missing") {
		t.Errorf("unconfigured animation should be flagged:\n%s", out)
	}
}

func TestRegionRows(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animations = []string{"Shoot", "Idle"}

	rows := RegionRows(&cfg)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := strings.Join(rows[0], "|"); got != "Shoot|0|1024|832|256|832x1280" {
		t.Errorf("Shoot row = %s", got)
	}
	if rows[1][0] != "Idle" {
		t.Errorf("rows should follow animation order, got %v", rows[1])
	}
}
