package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/nutrilog"
	md "github.com/nao1215/markdown"
)

// title is the capitalized meal name.
func title(m nutrilog.MealType) string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// DailyMarkdown renders the summary of a day and the progress towards the goals.
func DailyMarkdown(s nutrilog.DailySummary, goals nutrilog.Goals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(s.Date.Display())

	progress := nutrilog.ProgressOf(s.Totals, goals)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Nutrient", "Total", "Goal", "Progress"},
		Rows: [][]string{
			{md.Bold("Calories"), round(s.Totals.Calories), fmt.Sprintf("%g", goals.Calories), progress.Calories.String()},
			{"Protein (g)", round(s.Totals.Protein), fmt.Sprintf("%g", goals.Protein), progress.Protein.String()},
			{"Carbs (g)", round(s.Totals.Carbs), fmt.Sprintf("%g", goals.Carbs), progress.Carbs.String()},
			{"Fat (g)", round(s.Totals.Fat), fmt.Sprintf("%g", goals.Fat), progress.Fat.String()},
		},
	})

	for _, meal := range nutrilog.MealTypes {
		entries := s.Meals.Of(meal)
		doc.H2(fmt.Sprintf("%s (%s kcal)", title(meal), round(s.MealTotals(meal).Calories)))
		if len(entries) == 0 {
			doc.PlainText(md.Italic("Nothing logged"))
			continue
		}
		var lines []string
		for _, e := range entries {
			lines = append(lines, Entry(e))
		}
		doc.BulletList(lines...)
	}

	return doc.String()
}
