package display

import (
	"strconv"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Align selects the horizontal alignment of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders rows under headers as a rounded box table. Short
// rows are padded with empty cells; aligns may be shorter than headers.
func RenderTable(headers []string, rows [][]string, aligns []Align) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// RegionRows returns one row per configured animation, in extraction
// order: name, left, top, width, height and the minimum sheet size the
// region needs. An animation without a rectangle gets a "missing" row.
func RegionRows(cfg *config.Config) [][]string {
	rows := make([][]string, 0, len(cfg.Animations))
	for _, name := range cfg.Animations {
		r, ok := cfg.AnimationsData[name]
		if !ok {
			rows = append(rows, []string{name, "", "", "", "", "missing"})
			continue
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(r.Left),
			strconv.Itoa(r.Top),
			strconv.Itoa(r.Width),
			strconv.Itoa(r.Height),
			FormatDimensions(r.Left+r.Width, r.Top+r.Height),
		})
	}
	return rows
}

// RenderRegions renders [RegionRows] as a table.
func RenderRegions(cfg *config.Config) string {
	return RenderTable(
		[]string{"Animation", "Left", "Top", "Width", "Height", "Min Sheet"},
		RegionRows(cfg),
		[]Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight},
	)
}
