// Package probe reads sprite-sheet metadata (dimensions, format, size)
// from the image header without decoding pixels. A run probes every sheet
// first so regions can be bounds-checked before any full decode.
package probe
