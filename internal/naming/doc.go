// Package naming derives everything a run names from a sheet path: the
// item identifier, the mirrored output directory, and the output file path.
// It also groups sheets whose outputs would collide so a run can handle
// them in order.
//
// Output layout:
//
//	<results>/<mirrored sheet dir>/<Animation>/<lower(dir)>_<lower(animation)>_<digits>.png
package naming
