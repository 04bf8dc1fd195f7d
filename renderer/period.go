package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/nutrilog"
	"github.com/etnz/nutrilog/date"
	md "github.com/nao1215/markdown"
)

// PeriodMarkdown renders the totals of a range of days, day by day, with the
// period total and the daily average compared to the goals.
func PeriodMarkdown(r date.Range, summaries []nutrilog.DailySummary, goals nutrilog.Goals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Nutrition from %s to %s", r.From.Display(), r.To.Display()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Calories", "Protein", "Carbs", "Fat", "Goal"},
		Rows:   [][]string{},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			s.Date.String(),
			round(s.Totals.Calories),
			round(s.Totals.Protein),
			round(s.Totals.Carbs),
			round(s.Totals.Fat),
			nutrilog.Progress(s.Totals.Calories, goals.Calories).String(),
		})
	}
	total := nutrilog.TotalOf(summaries)
	average := nutrilog.AverageOf(summaries)
	table.Rows = append(table.Rows,
		[]string{md.Bold("Total"), round(total.Calories), round(total.Protein), round(total.Carbs), round(total.Fat), ""},
		[]string{md.Bold("Average"), round(average.Calories), round(average.Protein), round(average.Carbs), round(average.Fat),
			nutrilog.Progress(average.Calories, goals.Calories).String()},
	)
	doc.Table(table)

	return doc.String()
}
