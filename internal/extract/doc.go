// Package extract crops animation regions out of a decoded sheet, drops
// all-black frames and writes the rest as PNG without ever overwriting an
// existing file.
//
// Per task the steps run in a fixed order, each one a possible early exit:
//
//	bounds → crop → black test → existence check → (dry run) → write
//
// Terminal states are the [Outcome] values.
package extract
