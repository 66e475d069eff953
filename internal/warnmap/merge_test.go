package warnmap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sector0 builds a sector-0 map with the given statuses on consecutive towers.
func sector0(src string, statuses ...int) *WarnMap {
	m := &WarnMap{Source: src}
	for i, s := range statuses {
		m.Records = append(m.Records, ChannelRecord{Sector: 0, IY: i / 72, IZ: i % 72, Status: s})
	}
	return m
}

func statuses(m *WarnMap) []int {
	out := make([]int, m.Len())
	for i, r := range m.Records {
		out[i] = r.Status
	}
	return out
}

func TestMergeScenario(t *testing.T) {
	a := sector0("a", 0, 50, 100)
	b := sector0("b", 10, 0, 50)
	for _, st := range []Strategy{ByKey, ByPosition} {
		got, stats, err := Merge([]*WarnMap{a, b}, st)
		if err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		if diff := cmp.Diff([]int{10, 50, 100}, statuses(got)); diff != "" {
			t.Fatalf("%s: merged statuses (-want +got):\n%s", st, diff)
		}
		if stats.Raised != 1 || stats.Inputs != 2 {
			t.Fatalf("%s: stats %+v", st, stats)
		}
	}
	// inputs untouched
	if diff := cmp.Diff([]int{0, 50, 100}, statuses(a)); diff != "" {
		t.Fatalf("input mutated:\n%s", diff)
	}
}

func TestMergeCommutativeAndIdempotent(t *testing.T) {
	a := sector0("a", 0, 50, 100, 3, 22, 7)
	b := sector0("b", 10, 0, 50, 3, 0, 99)
	for _, st := range []Strategy{ByKey, ByPosition} {
		ab, _, err := Merge([]*WarnMap{a, b}, st)
		if err != nil {
			t.Fatal(err)
		}
		ba, _, err := Merge([]*WarnMap{b, a}, st)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(statuses(ab), statuses(ba)); diff != "" {
			t.Fatalf("%s: not commutative:\n%s", st, diff)
		}
		aa, _, err := Merge([]*WarnMap{a, a}, st)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(a.Records, aa.Records); diff != "" {
			t.Fatalf("%s: not idempotent:\n%s", st, diff)
		}
	}
}

func TestMergeSingleIsIdentity(t *testing.T) {
	a := sector0("a", 4, 50, 100)
	a.Records[1].Extra = []int{9, 9}
	got, _, err := Merge([]*WarnMap{a}, ByKey)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Records, got.Records); diff != "" {
		t.Fatalf("single merge differs:\n%s", diff)
	}
	got.Records[1].Extra[0] = 1
	if a.Records[1].Extra[0] != 9 {
		t.Fatalf("merge result aliases input extras")
	}
}

func TestMergeNoMaps(t *testing.T) {
	if _, _, err := Merge(nil, ByKey); !errors.Is(err, ErrNoMaps) {
		t.Fatalf("want ErrNoMaps, got %v", err)
	}
}

func TestMergeByKeyAlignsReorderedRows(t *testing.T) {
	a := sector0("a", 0, 0, 0)
	b := &WarnMap{Source: "b", Records: []ChannelRecord{
		{Sector: 0, IY: 0, IZ: 2, Status: 100},
		{Sector: 0, IY: 0, IZ: 0, Status: 50},
	}}
	got, st, err := Merge([]*WarnMap{a, b}, ByKey)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{50, 0, 100}, statuses(got)); diff != "" {
		t.Fatalf("key merge (-want +got):\n%s", diff)
	}
	if st.Raised != 2 || st.Added != 0 {
		t.Fatalf("stats %+v", st)
	}
}

func TestMergeByKeyAppendsNewChannels(t *testing.T) {
	a := sector0("a", 0)
	b := &WarnMap{Source: "b", Records: []ChannelRecord{{Sector: 3, IY: 1, IZ: 1, Status: 50}}}
	got, st, err := Merge([]*WarnMap{a, b}, ByKey)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || got.Records[1].Sector != 3 || st.Added != 1 {
		t.Fatalf("got %+v stats %+v", got.Records, st)
	}
}

func TestMergeByKeyDuplicate(t *testing.T) {
	a := &WarnMap{Source: "dup", Records: []ChannelRecord{{Status: 1}, {Status: 2}}}
	if _, _, err := Merge([]*WarnMap{a}, ByKey); !errors.Is(err, ErrDuplicateChannel) {
		t.Fatalf("want ErrDuplicateChannel, got %v", err)
	}
}

func TestMergeByPositionShapeMismatch(t *testing.T) {
	_, _, err := Merge([]*WarnMap{sector0("a", 0, 0), sector0("b", 0)}, ByPosition)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("want ErrShapeMismatch, got %v", err)
	}
}

func TestMergeByPositionCountsMisaligned(t *testing.T) {
	a := sector0("a", 0, 0)
	b := &WarnMap{Source: "b", Records: []ChannelRecord{
		{Sector: 0, IY: 0, IZ: 1, Status: 50},
		{Sector: 0, IY: 0, IZ: 0, Status: 0},
	}}
	got, st, err := Merge([]*WarnMap{a, b}, ByPosition)
	if err != nil {
		t.Fatal(err)
	}
	if st.Misaligned != 2 {
		t.Fatalf("misaligned=%d", st.Misaligned)
	}
	if got.Records[0].Status != 50 || got.Records[0].IZ != 0 {
		t.Fatalf("position merge keeps first map's identity, got %+v", got.Records[0])
	}
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": ByKey, "key": ByKey, "position": ByPosition} {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseStrategy("row"); err == nil {
		t.Errorf("expected error for unknown strategy")
	}
}

func TestSortByChannel(t *testing.T) {
	m := &WarnMap{Records: []ChannelRecord{
		{Sector: 6, IY: 0, IZ: 0, Status: 1},
		{Sector: 0, IY: 1, IZ: 0, Status: 2},
		{Sector: 0, IY: 0, IZ: 5, Status: 3},
	}}
	got := SortByChannel(m)
	if diff := cmp.Diff([]int{3, 2, 1}, statuses(got)); diff != "" {
		t.Fatalf("sorted statuses (-want +got):\n%s", diff)
	}
	if m.Records[0].Sector != 6 {
		t.Fatalf("input reordered")
	}
}
