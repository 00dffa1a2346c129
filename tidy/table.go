package tidy

import (
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sartorproj/tidyts/timeseries"
)

// Tabular is the table-like result of Tidy.
type Tabular interface {
	// Columns returns the column names.
	Columns() []string
	// Len returns the number of records.
	Len() int
	// Record returns record i, one value per column.
	Record(i int) []any
}

// Row is one (index, series, value) observation.
type Row struct {
	Index  timeseries.Index
	Series string
	Value  float64
}

// Table is a long-format table of rows.
type Table struct {
	Rows []Row
}

var tableColumns = []string{"index", "series", "value"}

// Columns returns index, series and value.
func (t *Table) Columns() []string {
	return append([]string(nil), tableColumns...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Record returns row i as its index value, series name and value.
func (t *Table) Record(i int) []any {
	r := t.Rows[i]
	return []any{r.Index.Value(), r.Series, r.Value}
}

// Series returns the rows belonging to name, in table order.
func (t *Table) Series(name string) []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.Series == name {
			rows = append(rows, r)
		}
	}
	return rows
}

// SeriesNames returns the distinct series names in order of first
// appearance.
func (t *Table) SeriesNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, r := range t.Rows {
		if _, ok := seen[r.Series]; ok {
			continue
		}
		seen[r.Series] = struct{}{}
		names = append(names, r.Series)
	}
	return names
}

// String renders the table with aligned columns. Missing values print as NA.
func (t *Table) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	w.Write([]byte(strings.Join(tableColumns, "\t") + "\n"))
	for _, r := range t.Rows {
		w.Write([]byte(r.Index.String() + "\t" + r.Series + "\t" + formatValue(r.Value) + "\n"))
	}
	w.Flush()
	return b.String()
}

func formatValue(v float64) string {
	if timeseries.IsMissing(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
