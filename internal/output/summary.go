package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/MegandM/web-scrape/internal/scraper"
)

// RenderSummary печатает число строк по сезонам
func RenderSummary(w io.Writer, site string, t *scraper.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(site)
	tw.AppendHeader(table.Row{"Season", "Rows"})

	for _, c := range t.SeasonCounts() {
		tw.AppendRow(table.Row{c.Season, c.Rows})
	}
	tw.AppendFooter(table.Row{"Total", t.Len()})

	tw.SetStyle(table.StyleRounded)
	tw.Render()
}
