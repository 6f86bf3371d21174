package formatter

import (
	"fmt"
	"io"
	"strconv"

	tt "github.com/gnolang/sfxtree/internal/types"
	"github.com/olekukonko/tablewriter"
)

// Metrics writes the inputs and shape of a report as two tables.
func Metrics(w io.Writer, report *tt.Report) {
	inputs := tablewriter.NewWriter(w)
	inputs.SetHeader([]string{"id", "name", "length"})
	for _, in := range report.Inputs {
		inputs.Append([]string{strconv.Itoa(in.ID), in.Name, strconv.Itoa(in.Length)})
	}
	inputs.Render()

	m := report.Metrics
	shape := tablewriter.NewWriter(w)
	shape.SetHeader([]string{"metric", "value"})
	shape.Append([]string{"construction", report.Construction})
	shape.Append([]string{"alphabet", report.Alphabet})
	shape.Append([]string{"nodes", strconv.Itoa(m.Nodes)})
	shape.Append([]string{"leaves", strconv.Itoa(m.Leaves)})
	shape.Append([]string{"internal nodes", strconv.Itoa(m.Internal)})
	shape.Append([]string{"average internal depth", fmt.Sprintf("%.3f", m.AverageInternalDepth)})
	shape.Append([]string{"longest repeat length", strconv.Itoa(m.LongestRepeatLength)})
	shape.Render()

	fmt.Fprintf(w, "%s %s\n", headerStyle.Sprint("longest repeat:"), printStyle.Sprint(m.LongestRepeat))
}

// Occurrences writes, for each looked up pattern, the inputs containing it.
func Occurrences(w io.Writer, report *tt.Report) {
	for _, occ := range report.Occurrences {
		fmt.Fprintf(w, "%s %q\n", headerStyle.Sprint("pattern"), occ.Pattern)
		if len(occ.Inputs) == 0 {
			fmt.Fprintln(w, emptyStyle.Sprint("not found"))
			continue
		}
		for _, id := range occ.Inputs {
			name := strconv.Itoa(id)
			if id < len(report.Inputs) {
				name = report.Inputs[id].Name
			}
			fmt.Fprintf(w, "%s%s\n", indexStyle.Sprintf("%d: ", id), name)
		}
	}
}
