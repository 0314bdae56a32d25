package planner

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/naming"
	"github.com/backmassage/sheetcrop/internal/probe"
)

// --- Helper builders ---

func defaultCfg() *config.Config {
	cfg := config.DefaultConfig()
	return &cfg
}

func idleOnly() *config.Config {
	cfg := defaultCfg()
	cfg.Animations = []string{"Idle"}
	return cfg
}

func sheetInfo(w, h int) *probe.SheetInfo {
	return &probe.SheetInfo{Path: "sheet.png", Format: "png", Width: w, Height: h}
}

func knight() naming.Sheet {
	return naming.ParseSheet(filepath.Join("spritesheets", "body", "Knight", "knight_007.png"))
}

// --- Tests ---

func TestBuildPlan_IdleFits(t *testing.T) {
	plan := BuildPlan(idleOnly(), knight(), sheetInfo(640, 1088))
	if len(plan.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(plan.Tasks))
	}
	task := plan.Tasks[0]
	if task.Action != ActionExtract {
		t.Errorf("Action = %v, want extract (%s)", task.Action, task.SkipReason)
	}
	if task.Region != (config.Region{Left: 0, Top: 512, Width: 64, Height: 256}) {
		t.Errorf("Region = %v", task.Region)
	}
	want := filepath.Join("results", "body", "Knight", "Idle", "knight_idle_007.png")
	if task.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", task.OutputPath, want)
	}
	if !plan.Extractable() {
		t.Error("plan with an extract task should be extractable")
	}
}

func TestBuildPlan_IdleOutOfBounds(t *testing.T) {
	plan := BuildPlan(idleOnly(), knight(), sheetInfo(640, 500))
	task := plan.Tasks[0]
	if task.Action != ActionSkipBounds {
		t.Fatalf("Action = %v, want skip-bounds", task.Action)
	}
	if !strings.Contains(task.SkipReason, "640x500") {
		t.Errorf("SkipReason %q should name the sheet size", task.SkipReason)
	}
	if plan.Extractable() {
		t.Error("plan with only out-of-bounds tasks should not be extractable")
	}
}

func TestBuildPlan_BoundsEdges(t *testing.T) {
	cfg := defaultCfg()
	cfg.Animations = []string{"Box"}
	cfg.AnimationsData = map[string]config.Region{"Box": {Left: 10, Top: 20, Width: 30, Height: 40}}

	tests := []struct {
		name string
		w, h int
		want Action
	}{
		{"exact fit", 40, 60, ActionExtract},
		{"roomy", 100, 100, ActionExtract},
		{"one column short", 39, 60, ActionSkipBounds},
		{"one row short", 40, 59, ActionSkipBounds},
		{"tiny", 1, 1, ActionSkipBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(cfg, knight(), sheetInfo(tt.w, tt.h))
			if got := plan.Tasks[0].Action; got != tt.want {
				t.Errorf("Action = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPlan_FollowsAnimationOrder(t *testing.T) {
	cfg := defaultCfg()
	cfg.Animations = []string{"Walk", "Cast", "Idle"}

	plan := BuildPlan(cfg, knight(), sheetInfo(832, 1344))
	var got []string
	for _, task := range plan.Tasks {
		got = append(got, task.Animation)
	}
	if strings.Join(got, ",") != "Walk,Cast,Idle" {
		t.Errorf("task order = %v", got)
	}
	if n := plan.Count(ActionExtract); n != 3 {
		t.Errorf("Count(extract) = %d, want 3", n)
	}
}

func TestBuildPlan_DefaultsOnSmallSheet(t *testing.T) {
	// 576 wide fits Cast, Thrust, Walk, Idle and Slash but not Shoot (832).
	plan := BuildPlan(defaultCfg(), knight(), sheetInfo(576, 1344))
	skipped := map[string]bool{}
	for _, task := range plan.Tasks {
		if task.Action == ActionSkipBounds {
			skipped[task.Animation] = true
		}
	}
	if len(skipped) != 1 || !skipped["Shoot"] {
		t.Errorf("skipped = %v, want only Shoot", skipped)
	}
	if plan.Count(ActionSkipBounds) != 1 {
		t.Errorf("Count(skip-bounds) = %d", plan.Count(ActionSkipBounds))
	}
}

func TestAction_String(t *testing.T) {
	if ActionExtract.String() != "extract" || ActionSkipBounds.String() != "skip-bounds" {
		t.Error("unexpected Action names")
	}
	if Action(99).String() != "unknown" {
		t.Error("out-of-range Action should be unknown")
	}
}
