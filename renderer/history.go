package renderer

import (
	"bytes"

	"github.com/etnz/nutrilog"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders one row per logged day.
func HistoryMarkdown(history []nutrilog.DailySummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Your Nutrition History")
	if len(history) == 0 {
		doc.PlainText("No history yet. Start tracking your meals to see your history here.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Calories", "P", "C", "F"},
		Rows:   [][]string{},
	}
	for _, s := range history {
		table.Rows = append(table.Rows, []string{
			s.Date.Display(),
			round(s.Totals.Calories),
			round(s.Totals.Protein) + "g",
			round(s.Totals.Carbs) + "g",
			round(s.Totals.Fat) + "g",
		})
	}
	doc.Table(table)

	return doc.String()
}
