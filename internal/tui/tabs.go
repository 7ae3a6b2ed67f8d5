package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tab identifies a top-level results view.
type Tab int

const (
	// TabGroups shows the connectivity group listing (default).
	TabGroups Tab = iota
	// TabCandidates shows cross-group cross-compartment candidate pairs.
	TabCandidates
	// TabUnobserved shows all unobserved cross-compartment pairs.
	TabUnobserved
)

// tabCount is the total number of tabs.
const tabCount = 3

// tabLabels maps each tab to its display label.
var tabLabels = [tabCount]string{
	TabGroups:     "groups",
	TabCandidates: "candidates",
	TabUnobserved: "unobserved",
}

// Label returns the display label for a tab.
func (t Tab) Label() string {
	if int(t) >= 0 && int(t) < tabCount {
		return tabLabels[t]
	}
	return "unknown"
}

// Next cycles forward to the next tab, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % tabCount)
}

// Prev cycles backward to the previous tab, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + tabCount - 1) % tabCount)
}

// TabFromNumber converts a 1-based number key to a Tab.
// Returns the tab and true if valid, or TabGroups and false otherwise.
func TabFromNumber(n int) (Tab, bool) {
	idx := n - 1
	if idx >= 0 && idx < tabCount {
		return Tab(idx), true
	}
	return TabGroups, false
}

// TabBar renders a horizontal row of tab labels.
type TabBar struct {
	ActiveTab Tab
	Width     int
}

// View renders the tab bar as a single styled line. The active tab is
// highlighted with the accent color and bold; inactive tabs are muted.
func (tb TabBar) View() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	var parts []string
	for i := 0; i < tabCount; i++ {
		tab := Tab(i)
		label := fmt.Sprintf("[%d] %s", i+1, tab.Label())
		if tab == tb.ActiveTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().
		Width(tb.Width).
		PaddingLeft(2).
		Render(line)
}
