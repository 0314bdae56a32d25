package planner

import (
	"fmt"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/display"
	"github.com/backmassage/sheetcrop/internal/naming"
	"github.com/backmassage/sheetcrop/internal/probe"
)

// BuildPlan produces the task list for one sheet. This is the decision step
// the pipeline calls for every probed sheet.
//
// Flow, per configured animation:
//  1. Resolve the region from cfg.AnimationsData
//  2. Reject it when it does not fit inside the sheet (no clamping)
//  3. Derive the output path from the sheet location and item identifier
func BuildPlan(cfg *config.Config, sheet naming.Sheet, info *probe.SheetInfo) *SheetPlan {
	plan := &SheetPlan{
		Sheet: sheet,
		Info:  info,
		Tasks: make([]Task, 0, len(cfg.Animations)),
	}

	for _, name := range cfg.Animations {
		r := cfg.AnimationsData[name]
		t := Task{
			Animation:  name,
			Region:     r,
			OutputPath: naming.OutputPath(sheet, name, cfg.Targets, cfg.Results),
			Action:     ActionExtract,
		}
		if !r.Fits(info.Width, info.Height) {
			t.Action = ActionSkipBounds
			t.SkipReason = fmt.Sprintf("region %s exceeds sheet %s",
				display.FormatRegion(r), display.FormatDimensions(info.Width, info.Height))
		}
		plan.Tasks = append(plan.Tasks, t)
	}
	return plan
}
