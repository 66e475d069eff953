package coverage

import (
	"warnmap/internal/geometry"
	"warnmap/internal/warnmap"
)

// RowMismatch is a sector whose row count differs from its table total.
type RowMismatch struct {
	Sector int
	Rows   int
	Total  int
}

// Structure reports how well a map agrees with the detector layout.
type Structure struct {
	RowMismatches []RowMismatch
	// OffGrid holds records whose (iy, iz) lies outside the sector grid.
	OffGrid []warnmap.Key
}

// OK reports whether no problems were found.
func (s Structure) OK() bool { return len(s.RowMismatches) == 0 && len(s.OffGrid) == 0 }

// CheckStructure compares per-sector row counts with totals and validates
// tower coordinates against the EMCal grid.
func CheckStructure(m *warnmap.WarnMap, totals geometry.Totals) Structure {
	var st Structure
	rows := make([]int, len(totals))
	for _, r := range m.Records {
		if r.Sector >= 0 && r.Sector < len(totals) {
			rows[r.Sector]++
		}
		if !geometry.InGrid(r.Sector, r.IY, r.IZ) {
			st.OffGrid = append(st.OffGrid, r.Key())
		}
	}
	for s, tot := range totals {
		if rows[s] != tot {
			st.RowMismatches = append(st.RowMismatches, RowMismatch{Sector: s, Rows: rows[s], Total: tot})
		}
	}
	return st
}
