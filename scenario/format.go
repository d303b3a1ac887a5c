package scenario

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/railplan/planner"
)

// WriteTimetable renders a solved movement list as an aligned text
// table, one row per leg, in the (train, start time) order the planner
// emits.
func WriteTimetable(w io.Writer, movements []planner.Movement) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "TRAIN\tTIME\tROUTE\tLOADED\tDROPPED"); err != nil {
		return err
	}
	for _, m := range movements {
		_, err := fmt.Fprintf(tw, "%s\t%d–%d\t%s→%s\t%s\t%s\n",
			m.Train,
			m.StartTime, m.EndTime,
			m.From, m.To,
			nameList(m.PackagesPickedUp),
			nameList(m.PackagesDelivered),
		)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}

// nameList joins package names for display, with "-" for none.
func nameList(names []string) string {
	if len(names) == 0 {
		return "-"
	}

	return strings.Join(names, ",")
}
