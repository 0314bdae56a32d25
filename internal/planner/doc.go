// Package planner decides, for one probed sheet, which configured animations
// can be extracted and where each one is written. It never touches pixels;
// the plan is the input to the extract package.
//
//   - SheetPlan, Task, Action (types.go)
//   - BuildPlan: bounds check and output path per animation (planner.go)
package planner
