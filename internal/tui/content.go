package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/pairs"
)

// renderGroups renders the connectivity group listing.
func renderGroups(res *analysis.Result) string {
	if len(res.Groups) == 0 {
		return styleEmptyHint.Render("  no connectivity groups (dataset has no usable edges)")
	}

	var b strings.Builder
	b.WriteString(styleTableHeader.Render(fmt.Sprintf("  %-6s %-5s %s", "GROUP", "SIZE", "MEMBERS")) + "\n")
	for _, g := range res.Groups {
		id := styleGroupID.Render(fmt.Sprintf("%-6d", g.ID))
		size := styleRowNormal.Render(fmt.Sprintf("%-5d", len(g.Members)))
		members := styleEntity.Render(strings.Join(g.Members, " "))
		b.WriteString("  " + id + " " + size + " " + members + "\n")
	}
	return b.String()
}

// renderPairs renders a classified pair table in pair-universe order.
func renderPairs(rows []pairs.Row, emptyHint string) string {
	if len(rows) == 0 {
		return styleEmptyHint.Render("  " + emptyHint)
	}

	var b strings.Builder
	b.WriteString(styleTableHeader.Render(fmt.Sprintf("  %-14s %-14s %-14s %s",
		"ENTITY A", "ENTITY B", "COMPARTMENTS", "GROUPS")) + "\n")
	for _, r := range rows {
		entityA := styleEntity.Render(fmt.Sprintf("%-14s", r.Pair.A))
		entityB := styleEntity.Render(fmt.Sprintf("%-14s", r.Pair.B))
		comp := styleCompartment.Render(fmt.Sprintf("%-14s", compartmentCell(r)))
		groups := styleGroupID.Render(groupCell(r))
		b.WriteString("  " + entityA + " " + entityB + " " + comp + " " + groups + "\n")
	}
	return b.String()
}

func compartmentCell(r pairs.Row) string {
	a, b := r.CompartmentA, r.CompartmentB
	if a == "" {
		a = "?"
	}
	if b == "" {
		b = "?"
	}
	return a + "/" + b
}

func groupCell(r pairs.Row) string {
	a, b := "-", "-"
	if r.HasGroupA {
		a = strconv.Itoa(r.GroupA)
	}
	if r.HasGroupB {
		b = strconv.Itoa(r.GroupB)
	}
	return a + "/" + b
}
