package planner

import (
	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/naming"
	"github.com/backmassage/sheetcrop/internal/probe"
)

// Action describes the per-task processing decision.
type Action int

const (
	ActionExtract Action = iota
	ActionSkipBounds
)

func (a Action) String() string {
	switch a {
	case ActionExtract:
		return "extract"
	case ActionSkipBounds:
		return "skip-bounds"
	default:
		return "unknown"
	}
}

// Task is one (sheet, animation) pair.
type Task struct {
	Animation  string
	Region     config.Region
	OutputPath string
	Action     Action
	SkipReason string
}

// SheetPlan holds every task for one sheet, in configured animation order.
// It is produced by BuildPlan and consumed by the pipeline runner.
type SheetPlan struct {
	Sheet naming.Sheet
	Info  *probe.SheetInfo
	Tasks []Task
}

// Extractable reports whether any task needs the decoded sheet.
func (p *SheetPlan) Extractable() bool {
	for _, t := range p.Tasks {
		if t.Action == ActionExtract {
			return true
		}
	}
	return false
}

// Count returns the number of tasks with action a.
func (p *SheetPlan) Count(a Action) int {
	n := 0
	for _, t := range p.Tasks {
		if t.Action == a {
			n++
		}
	}
	return n
}
