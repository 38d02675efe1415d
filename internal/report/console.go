package report

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"NiftySnapshot/internal/model"
)

// PrintTable renders the snapshot rows as a console table with the average in the footer.
func PrintTable(w io.Writer, snap *model.Snapshot) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(Header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range snap.Rows {
		table.Append([]string{
			r.Symbol,
			r.Open.StringFixed(2),
			r.Current.StringFixed(2),
			r.ChangePercent.StringFixed(2),
		})
	}
	table.SetFooter([]string{"Average", "", "", snap.Average.StringFixed(2)})
	table.Render()
}
