package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/quality"
)

// ANSI color codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	blue    = "\033[34m"
	yellow  = "\033[33m"
	green   = "\033[32m"
	red     = "\033[31m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╔══════════════════════════════════════╗"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ║"+reset+bold+"   PLEXUS  "+dim+"protein network analyzer"+reset+bold+cyan+"   ║"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╚══════════════════════════════════════╝"+reset)
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

func (p *Printer) RunStart(runID string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ run"+reset+" %s\n", runID)
}

func (p *Printer) DatasetLoaded(proteins, compartments, edges int) {
	fmt.Fprintf(os.Stderr, dim+"  loaded %d proteins, %d compartment entries, %d edges"+reset+"\n",
		proteins, compartments, edges)
}

func (p *Printer) AnalysisDone(st analysis.Stats) {
	fmt.Fprintf(os.Stderr, green+"✓ analysis"+reset+dim+" done (%s)"+reset+"\n",
		st.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "  groups:      %d\n", st.Groups)
	fmt.Fprintf(os.Stderr, "  unobserved:  %d\n", st.Unobserved)
	fmt.Fprintf(os.Stderr, "  cross-group: %d\n", st.CrossGroup)
	if st.DuplicateEdges > 0 || st.SelfEdges > 0 {
		fmt.Fprintf(os.Stderr, yellow+"⚠ tolerated"+reset+" %d duplicate edge(s), %d self-interaction(s)\n",
			st.DuplicateEdges, st.SelfEdges)
	}
}

func (p *Printer) ReportWritten(path string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ wrote"+reset+" %s\n", path)
}

func (p *Printer) RunSaved(runID, dbPath string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ saved"+reset+" run %s "+dim+"→ %s"+reset+"\n", runID, dbPath)
}

// ValidationResult prints one line per check plus any findings.
func (p *Printer) ValidationResult(res *quality.Result) {
	for _, c := range res.Checks {
		mark := green + "✓" + reset
		if !c.Passed {
			mark = red + bold + "✗" + reset
		}
		fmt.Fprintf(os.Stderr, "%s %s "+dim+"(%s)"+reset+"\n", mark, c.Name, c.Elapsed.Round(time.Microsecond))
		if c.Findings != "" {
			fmt.Fprintf(os.Stderr, dim+"    %s"+reset+"\n", c.Findings)
		}
	}
	if res.Passed {
		fmt.Fprintln(os.Stderr, green+bold+"✓ dataset OK"+reset)
	} else if first := res.FirstFailure(); first != nil {
		fmt.Fprintf(os.Stderr, red+bold+"✗ dataset rejected"+reset+" at %q\n", first.Name)
	}
}

func (p *Printer) RepairSummary(fixed, dropped, kept int) {
	fmt.Fprintf(os.Stderr, green+"✓ repair"+reset+" %d row(s) fixed, %d dropped, %d kept\n",
		fixed, dropped, kept)
}

func (p *Printer) MotifHits(motif string, proteins, hits int) {
	fmt.Fprintf(os.Stderr, cyan+"◆ motif"+reset+" %s "+dim+"matched %d protein(s), %d site(s)"+reset+"\n",
		motif, proteins, hits)
}

func (p *Printer) WatchStart(files int) {
	fmt.Fprintf(os.Stderr, magenta+bold+"▶ watching"+reset+" %d dataset file(s) "+dim+"(ctrl-c to stop)"+reset+"\n", files)
}

func (p *Printer) WatchTriggered(path string) {
	fmt.Fprintf(os.Stderr, "\n"+magenta+"── change: %s ──"+reset+"\n", path)
}
