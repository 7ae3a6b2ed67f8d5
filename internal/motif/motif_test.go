package motif

import (
	"errors"
	"testing"

	"github.com/papapumpkin/plexus/internal/dataset"
)

func TestParse_Dashed(t *testing.T) {
	t.Parallel()
	m, err := Parse("T-[AV]-T-x-T")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", m.Len())
	}
	if m.Elements[1].Residues != "AV" {
		t.Errorf("element 1 = %q, want AV", m.Elements[1].Residues)
	}
	if m.Elements[3].Residues != Alphabet {
		t.Errorf("wildcard element = %q, want full alphabet", m.Elements[3].Residues)
	}
}

func TestParse_Compact(t *testing.T) {
	t.Parallel()
	dashed, err := Parse("T-[AV]-T-x-T")
	if err != nil {
		t.Fatalf("Parse dashed: %v", err)
	}
	compact, err := Parse("T[AV]TxT")
	if err != nil {
		t.Fatalf("Parse compact: %v", err)
	}
	if len(dashed.Elements) != len(compact.Elements) {
		t.Fatalf("element counts differ: %d vs %d", len(dashed.Elements), len(compact.Elements))
	}
	for i := range dashed.Elements {
		if dashed.Elements[i] != compact.Elements[i] {
			t.Errorf("element %d differs: %+v vs %+v", i, dashed.Elements[i], compact.Elements[i])
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()
	for _, expr := range []string{"", "T-[AV", "T-[]-T", "T-1-T", "---"} {
		if _, err := Parse(expr); !errors.Is(err, ErrBadMotif) {
			t.Errorf("Parse(%q) err = %v, want ErrBadMotif", expr, err)
		}
	}
}

func searchFixture() []dataset.Sequence {
	return []dataset.Sequence{
		{ID: "P1", Seq: "MKTATCTLL"},  // TATCT at 2
		{ID: "P2", Seq: "MMMMMM"},     // no hit
		{ID: "P3", Seq: "TVTWTATATG"}, // TVTWT at 0, TATAT at 4
		{ID: "P4", Seq: "TAT"},        // shorter than the motif
	}
}

func TestRegexEngine_Search(t *testing.T) {
	t.Parallel()
	m, err := Parse("T-[AV]-T-x-T")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	engine, err := NewRegexEngine(m)
	if err != nil {
		t.Fatalf("NewRegexEngine: %v", err)
	}

	matches := engine.Search(searchFixture())
	if len(matches) != 2 {
		t.Fatalf("got %d matches %v, want 2", len(matches), matches)
	}
	if matches[0].ID != "P1" || len(matches[0].Positions) != 1 || matches[0].Positions[0] != 2 {
		t.Errorf("P1 match = %+v, want position 2", matches[0])
	}
	if matches[1].ID != "P3" || len(matches[1].Positions) != 2 {
		t.Errorf("P3 match = %+v, want positions 0 and 4", matches[1])
	}
}

func TestRegexEngine_OverlappingHits(t *testing.T) {
	t.Parallel()
	m, err := Parse("T-[AV]-T-x-T")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	engine, err := NewRegexEngine(m)
	if err != nil {
		t.Fatalf("NewRegexEngine: %v", err)
	}

	matches := engine.Search([]dataset.Sequence{{ID: "P9", Seq: "TATATAT"}})
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	got := matches[0].Positions
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("positions = %v, want [0 2]", got)
	}
}

func TestEnumEngine_ExpansionCount(t *testing.T) {
	t.Parallel()
	m, err := Parse("T-[AV]-T-x-T")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	engine, err := NewEnumEngine(m, 0)
	if err != nil {
		t.Fatalf("NewEnumEngine: %v", err)
	}
	// 1 * 2 * 1 * 20 * 1 concrete words.
	if engine.Words() != 40 {
		t.Errorf("Words() = %d, want 40", engine.Words())
	}
}

func TestEnumEngine_TooBroad(t *testing.T) {
	t.Parallel()
	m, err := Parse("x-x-x-x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := NewEnumEngine(m, 1000); !errors.Is(err, ErrMotifTooBroad) {
		t.Errorf("err = %v, want ErrMotifTooBroad", err)
	}
}

func TestEngines_Agree(t *testing.T) {
	t.Parallel()
	m, err := Parse("T-[AV]-T-x-T")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	regex, err := NewRegexEngine(m)
	if err != nil {
		t.Fatalf("NewRegexEngine: %v", err)
	}
	enum, err := NewEnumEngine(m, 0)
	if err != nil {
		t.Fatalf("NewEnumEngine: %v", err)
	}

	seqs := append(searchFixture(), dataset.Sequence{ID: "P9", Seq: "TATATATVTCT"})
	a := regex.Search(seqs)
	b := enum.Search(seqs)
	if len(a) != len(b) {
		t.Fatalf("engines disagree on match count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("engines disagree on protein %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
		if len(a[i].Positions) != len(b[i].Positions) {
			t.Fatalf("engines disagree on %s positions: %v vs %v", a[i].ID, a[i].Positions, b[i].Positions)
		}
		for j := range a[i].Positions {
			if a[i].Positions[j] != b[i].Positions[j] {
				t.Errorf("engines disagree on %s position %d: %d vs %d",
					a[i].ID, j, a[i].Positions[j], b[i].Positions[j])
			}
		}
	}
}
