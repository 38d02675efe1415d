package notifier

import (
	"fmt"
	"html"
	"strings"

	"NiftySnapshot/internal/model"
)

// FormatSnapshotSummary formats a snapshot into a short Telegram message:
// average change, top gainer and top loser.
func FormatSnapshotSummary(snap *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>NIFTY 50 snapshot</b> | %s\n\n", snap.TakenAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Stocks: %d\n", len(snap.Rows)))
	b.WriteString(fmt.Sprintf("Average change: %s%%\n", signed(snap.Average.StringFixed(2))))

	if len(snap.Rows) == 0 {
		return b.String()
	}
	top, bottom := snap.Rows[0], snap.Rows[0]
	for _, r := range snap.Rows[1:] {
		if r.ChangePercent.GreaterThan(top.ChangePercent) {
			top = r
		}
		if r.ChangePercent.LessThan(bottom.ChangePercent) {
			bottom = r
		}
	}
	b.WriteString(fmt.Sprintf("🔺 Top gainer: %s %s%%\n", html.EscapeString(top.Symbol), signed(top.ChangePercent.StringFixed(2))))
	b.WriteString(fmt.Sprintf("🔻 Top loser: %s %s%%\n", html.EscapeString(bottom.Symbol), signed(bottom.ChangePercent.StringFixed(2))))
	return b.String()
}

func signed(s string) string {
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}
