// Package table converts catalog results into rows for tabular output.
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/moviemap/pkg/catalog"
	"github.com/agentstation/moviemap/pkg/movies"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// barWidth is the length of a full histogram bar.
const barWidth = 40

// MoviesToTableData converts a collection to table format. The wide view
// prefixes each row with its position in the collection.
func MoviesToTableData(c movies.Collection, wide bool) Data {
	headers := []string{"Title", "Year", "Rating"}
	align := []Align{AlignLeft, AlignRight, AlignRight}
	if wide {
		headers = append([]string{"#"}, headers...)
		align = append([]Align{AlignRight}, align...)
	}

	rows := make([][]string, 0, len(c))
	for i, m := range c {
		row := []string{m.Title, strconv.Itoa(m.Year), FormatRating(m.Rating)}
		if wide {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// RatedToTableData converts (title, rating) pairs to table format.
func RatedToTableData(rated []movies.RatedTitle) Data {
	rows := make([][]string, 0, len(rated))
	for _, r := range rated {
		rows = append(rows, []string{r.Title, FormatRating(r.Rating)})
	}
	return Data{
		Headers:         []string{"Title", "Rating"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// DatedToTableData converts (title, year) pairs to table format.
func DatedToTableData(dated []movies.DatedTitle) Data {
	rows := make([][]string, 0, len(dated))
	for _, d := range dated {
		rows = append(rows, []string{d.Title, strconv.Itoa(d.Year)})
	}
	return Data{
		Headers:         []string{"Title", "Year"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// StatsToTableData converts rating statistics to a two-column table.
func StatsToTableData(s catalog.Stats) Data {
	return Data{
		Headers: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Average rating", fmt.Sprintf("%.2f", s.Average)},
			{"Median rating", fmt.Sprintf("%.2f", s.Median)},
			{"Best movie", fmt.Sprintf("%s, %s", s.Best.Title, FormatRating(s.Best.Rating))},
			{"Worst movie", fmt.Sprintf("%s, %s", s.Worst.Title, FormatRating(s.Worst.Rating))},
		},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// HistogramToTableData converts histogram bins to rows with a text bar
// scaled to the fullest bin.
func HistogramToTableData(bins []catalog.Bin) Data {
	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}

	rows := make([][]string, 0, len(bins))
	for i, b := range bins {
		closing := ")"
		if i == len(bins)-1 {
			closing = "]"
		}
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("#", b.Count*barWidth/peak)
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s, %s%s", formatEdge(b.Lower), formatEdge(b.Upper), closing),
			strconv.Itoa(b.Count),
			bar,
		})
	}

	return Data{
		Headers:         []string{"Rating", "Count", "Movies"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}

// FormatRating renders a rating in its shortest exact form.
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// formatEdge renders a bin edge rounded to two decimals.
func formatEdge(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
