package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"hanscan/internal/mapping"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgHiCyan).SprintFunc()
	green  = color.New(color.FgHiGreen).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
)

type report struct {
	root       string
	strategy   string
	files      int
	skipped    int
	candidates int
	unique     int
	stats      mapping.Stats
	output     string
}

func printReport(w io.Writer, r report) {
	fmt.Fprintln(w, bold(cyan("========== scan report ==========")))
	fmt.Fprintf(w, "%s %s (%s strategy)\n", bold("Root:"), r.root, r.strategy)
	fmt.Fprintf(w, "  files scanned      %d\n", r.files)
	if r.skipped > 0 {
		fmt.Fprintf(w, "  files skipped      %s\n", yellow(r.skipped))
	}
	fmt.Fprintf(w, "  raw candidates     %d\n", r.candidates)
	fmt.Fprintf(w, "  unique phrases     %d (%d duplicates folded)\n", r.unique, r.candidates-r.unique)

	s := r.stats
	if s.Pending > 0 {
		fmt.Fprintf(w, "  pending            %s\n", yellow(s.Pending))
	}
	if s.FromMemory > 0 {
		fmt.Fprintf(w, "  from memory        %s\n", green(s.FromMemory))
	}
	if s.Translated > 0 {
		fmt.Fprintf(w, "  translated         %s\n", green(s.Translated))
	}
	if s.Retried > 0 {
		fmt.Fprintf(w, "  translated (retry) %s\n", green(s.Retried))
	}
	if s.Dictionary > 0 {
		fmt.Fprintf(w, "  from dictionary    %s\n", green(s.Dictionary))
	}
	if s.Placeholder > 0 {
		fmt.Fprintf(w, "  placeholders       %s\n", yellow(s.Placeholder))
	}

	fmt.Fprintf(w, "%s %s\n", bold("Mapping written:"), green(r.output))
}
