package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/pairs"
)

// Summary palette, matching the browser's accent colors.
var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorAccent  = lipgloss.Color("#FFD700")
	colorMuted   = lipgloss.Color("#8C8C8C")
	colorWhite   = lipgloss.Color("#EEEEEE")
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSection = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleValue = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// How many groups and table rows the summary previews.
const (
	summaryGroups  = 5
	summaryRows    = 5
	summaryMembers = 6
)

// Summary renders a styled terminal summary of a completed run:
// headline counts, the largest connectivity groups, and the head of
// each classified table.
func Summary(res *analysis.Result) string {
	var b strings.Builder
	st := res.Stats

	b.WriteString(styleTitle.Render("plexus run "+res.RunID) + "\n")
	b.WriteString("  " + strings.Join([]string{
		stat("proteins", st.Proteins),
		stat("edges", st.UniqueEdges),
		stat("groups", st.Groups),
	}, "   ") + "\n")
	if st.DuplicateEdges > 0 || st.SelfEdges > 0 {
		b.WriteString(styleDim.Render(fmt.Sprintf(
			"  tolerated: %d duplicate, %d self-interaction",
			st.DuplicateEdges, st.SelfEdges)) + "\n")
	}
	b.WriteString("  " + strings.Join([]string{
		stat("universe", st.UniversePairs),
		stat("unobserved", st.Unobserved),
		stat("cross-group", st.CrossGroup),
	}, "   ") + "\n")
	b.WriteString(styleDim.Render("  elapsed "+st.Elapsed.Round(time.Millisecond).String()) + "\n")

	if len(res.Groups) > 0 {
		b.WriteString("\n" + styleSection.Render("largest groups") + "\n")
		for _, g := range largestGroups(res, summaryGroups) {
			members := g.Members
			extra := ""
			if len(members) > summaryMembers {
				extra = styleDim.Render(fmt.Sprintf(" (+%d more)", len(members)-summaryMembers))
				members = members[:summaryMembers]
			}
			b.WriteString(fmt.Sprintf("  %s  %s%s\n",
				styleValue.Render(fmt.Sprintf("%3d", g.ID)),
				strings.Join(members, " "), extra))
		}
	}

	writeTableHead(&b, "cross-group candidates", res.CrossGroup)
	writeTableHead(&b, "unobserved cross-compartment pairs", res.Unobserved)
	return b.String()
}

func stat(label string, v int) string {
	return styleLabel.Render(label) + " " + styleValue.Render(strconv.Itoa(v))
}

// largestGroups returns up to n groups ordered by descending size,
// group id breaking ties.
func largestGroups(res *analysis.Result, n int) []groupView {
	views := make([]groupView, len(res.Groups))
	for i, g := range res.Groups {
		views[i] = groupView{ID: g.ID, Members: g.Members}
	}
	sort.Slice(views, func(i, j int) bool {
		if len(views[i].Members) != len(views[j].Members) {
			return len(views[i].Members) > len(views[j].Members)
		}
		return views[i].ID < views[j].ID
	})
	if len(views) > n {
		views = views[:n]
	}
	return views
}

type groupView struct {
	ID      int
	Members []string
}

func writeTableHead(b *strings.Builder, title string, rows []pairs.Row) {
	b.WriteString("\n" + styleSection.Render(title) +
		styleDim.Render(fmt.Sprintf(" (%d)", len(rows))) + "\n")
	if len(rows) == 0 {
		b.WriteString(styleDim.Render("  none") + "\n")
		return
	}
	head := rows
	if len(head) > summaryRows {
		head = head[:summaryRows]
	}
	for _, r := range head {
		b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
			styleValue.Render(r.Pair.A),
			styleDim.Render("--"),
			styleValue.Render(r.Pair.B),
			styleLabel.Render(compartmentTag(r))))
	}
	if len(rows) > summaryRows {
		b.WriteString(styleDim.Render(fmt.Sprintf("  … %d more\n", len(rows)-summaryRows)))
	}
}

func compartmentTag(r pairs.Row) string {
	a, bb := r.CompartmentA, r.CompartmentB
	if a == "" {
		a = "?"
	}
	if bb == "" {
		bb = "?"
	}
	return a + "/" + bb
}
