package display

import (
	"fmt"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size (e.g. "1.5 KiB").
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatDimensions returns "WxH".
func FormatDimensions(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// FormatRegion returns "WxH @ left,top".
func FormatRegion(r config.Region) string {
	return fmt.Sprintf("%s @ %d,%d", FormatDimensions(r.Width, r.Height), r.Left, r.Top)
}
