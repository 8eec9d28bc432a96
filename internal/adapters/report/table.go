package report

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.trai.ch/libscan/internal/core/domain"
)

// RenderTable writes a summary table of the report to w.
func RenderTable(w io.Writer, report *domain.StatsReport) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Category", "Count", "Top"})

	tbl.AppendRow(table.Row{"apps", "", count(report.Apps), ""})
	tbl.AppendRow(table.Row{"libs", "", count(report.Libraries), ""})
	tbl.AppendSeparator()

	for _, role := range domain.Roles {
		common := report.Common[role]
		tbl.AppendRow(table.Row{"common " + role.Label(), "", count(len(common)), top(common)})
	}
	tbl.AppendSeparator()

	for _, role := range domain.Roles {
		for _, u := range report.Unique[role] {
			first := ""
			if len(u.Libraries) > 0 {
				first = u.Libraries[0]
			}
			tbl.AppendRow(table.Row{"unique " + role.Label(), u.Category, count(len(u.Libraries)), first})
		}
	}
	tbl.AppendSeparator()

	tbl.AppendRow(table.Row{"native calls", "", count(len(report.NativeCalls)), top(report.NativeCalls)})

	_, err := io.WriteString(w, tbl.Render()+"\n")
	return err
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

func top(entries []domain.FrequencyEntry) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Name + " (" + humanize.Comma(int64(entries[0].Count)) + ")"
}
