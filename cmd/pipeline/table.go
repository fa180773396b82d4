package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/segment-flow/internal/processor"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

// renderReport formats the clips of one directory run as a terminal table.
func renderReport(report *processor.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Window", "Length", "Cues", "Reason"})

	for i, c := range report.Clips {
		tw.AppendRow(table.Row{
			i + 1,
			fmt.Sprintf("%s - %s",
				subtitle.FormatClock(c.Window.Start),
				subtitle.FormatClock(c.Window.End)),
			fmt.Sprintf("%.1fs", c.Window.Duration()),
			c.Cues,
			c.Window.Reason,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
