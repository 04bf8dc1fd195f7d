package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/nutrilog"
	md "github.com/nao1215/markdown"
)

// FoodsMarkdown renders search results.
func FoodsMarkdown(query string, foods []nutrilog.Food) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if query == "" {
		doc.H1("Foods")
	} else {
		doc.H1(fmt.Sprintf("Foods matching %q", query))
	}
	if len(foods) == 0 {
		doc.PlainText("No foods found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Serving", "Calories", "Protein", "Carbs", "Fat"},
		Rows:   [][]string{},
	}
	for _, f := range foods {
		name := f.Name
		if f.IsCustom {
			name = md.Italic(name)
		}
		table.Rows = append(table.Rows, []string{
			f.ID,
			name,
			f.Serving(),
			f.Calories.String(),
			f.Protein.String(),
			f.Carbs.String(),
			f.Fat.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// GoalsMarkdown renders the daily goals.
func GoalsMarkdown(goals nutrilog.Goals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Goals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Nutrient", "Goal"},
		Rows: [][]string{
			{"Calories", fmt.Sprintf("%g", goals.Calories)},
			{"Protein (g)", fmt.Sprintf("%g", goals.Protein)},
			{"Carbs (g)", fmt.Sprintf("%g", goals.Carbs)},
			{"Fat (g)", fmt.Sprintf("%g", goals.Fat)},
		},
	})

	return doc.String()
}
