// Package geometry describes the EMCal sector layout: how many towers each
// sector carries and how a (sector, iy, iz) triple maps to a tower id.
package geometry

import "fmt"

// NumSectors is the number of calorimeter sectors (6 PbSc + 2 PbGl).
const NumSectors = 8

// Sector grid sizes.
const (
	PbScNY = 36
	PbScNZ = 72
	PbGlNY = 48
	PbGlNZ = 96

	PbScTowers = PbScNY * PbScNZ // 2592
	PbGlTowers = PbGlNY * PbGlNZ // 4608
)

// Grid returns the (ny, nz) extent of sector s.
func Grid(s int) (ny, nz int, ok bool) {
	switch {
	case s >= 0 && s < 6:
		return PbScNY, PbScNZ, true
	case s == 6 || s == 7:
		return PbGlNY, PbGlNZ, true
	}
	return 0, 0, false
}

// InGrid reports whether (iy, iz) is a valid tower position in sector s.
func InGrid(s, iy, iz int) bool {
	ny, nz, ok := Grid(s)
	return ok && iy >= 0 && iy < ny && iz >= 0 && iz < nz
}

// TowerID linearizes (sector, iy, iz) over the whole detector.
// It returns -1 for positions outside the grid.
func TowerID(s, iy, iz int) int {
	if !InGrid(s, iy, iz) {
		return -1
	}
	if s < 6 {
		return s*PbScTowers + iy*PbScNZ + iz
	}
	return 6*PbScTowers + (s-6)*PbGlTowers + iy*PbGlNZ + iz
}

// Totals maps sector id to the number of towers in that sector.
type Totals []int

// DefaultTotals is the EMCal tower count per sector.
func DefaultTotals() Totals {
	return Totals{
		PbScTowers, PbScTowers, PbScTowers, PbScTowers, PbScTowers, PbScTowers,
		PbGlTowers, PbGlTowers,
	}
}

// Sum returns the detector-wide tower count.
func (t Totals) Sum() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// Validate rejects empty tables and non-positive entries.
func (t Totals) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("sector totals: empty table")
	}
	for s, v := range t {
		if v <= 0 {
			return fmt.Errorf("sector totals: sector %d has total %d (must be > 0)", s, v)
		}
	}
	return nil
}
