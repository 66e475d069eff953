package warnmap

import (
	"errors"
	"fmt"
)

// Strategy selects how records of different maps are matched.
type Strategy string

const (
	ByKey      Strategy = "key"      // match on (sector, iy, iz)
	ByPosition Strategy = "position" // match on row index
)

var (
	ErrNoMaps           = errors.New("no warnmaps to merge")
	ErrShapeMismatch    = errors.New("warnmap row counts differ")
	ErrDuplicateChannel = errors.New("duplicate channel in warnmap")
)

// ParseStrategy maps a config/flag value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case ByKey, ByPosition:
		return Strategy(s), nil
	case "":
		return ByKey, nil
	}
	return "", fmt.Errorf("unknown merge strategy %q (want key | position)", s)
}

// MergeStats describes what a merge did beyond the result table.
type MergeStats struct {
	Inputs int
	// Raised counts channels whose status was raised by a later map.
	Raised int
	// Added counts channels absent from the first map (key strategy only).
	Added int
	// Misaligned counts row pairs whose keys differ at the same index
	// (position strategy only). Their statuses are still combined.
	Misaligned int
}

// Merge combines maps into a new map whose status per channel is the maximum
// over all inputs. Non-status fields come from the first map holding the
// channel. Inputs are not modified.
func Merge(maps []*WarnMap, strategy Strategy) (*WarnMap, MergeStats, error) {
	if len(maps) == 0 {
		return nil, MergeStats{}, ErrNoMaps
	}
	switch strategy {
	case ByPosition:
		return mergeByPosition(maps)
	case ByKey, "":
		return mergeByKey(maps)
	}
	return nil, MergeStats{}, fmt.Errorf("unknown merge strategy %q", strategy)
}

func mergeByPosition(maps []*WarnMap) (*WarnMap, MergeStats, error) {
	out := maps[0].Clone()
	st := MergeStats{Inputs: len(maps)}
	for _, m := range maps[1:] {
		if m.Len() != out.Len() {
			return nil, st, fmt.Errorf("%w: %s has %d rows, %s has %d",
				ErrShapeMismatch, maps[0].Source, out.Len(), m.Source, m.Len())
		}
		for i := range out.Records {
			cur := &out.Records[i]
			other := m.Records[i]
			if cur.Key() != other.Key() {
				st.Misaligned++
			}
			if other.Status > cur.Status {
				cur.Status = other.Status
				st.Raised++
			}
		}
	}
	return out, st, nil
}

func mergeByKey(maps []*WarnMap) (*WarnMap, MergeStats, error) {
	st := MergeStats{Inputs: len(maps)}
	out := &WarnMap{Source: maps[0].Source}
	index := make(map[Key]int, maps[0].Len())
	for n, m := range maps {
		seen := make(map[Key]struct{}, m.Len())
		for _, r := range m.Records {
			k := r.Key()
			if _, dup := seen[k]; dup {
				return nil, st, fmt.Errorf("%w: %s sector %d iy %d iz %d",
					ErrDuplicateChannel, m.Source, k.Sector, k.IY, k.IZ)
			}
			seen[k] = struct{}{}

			i, ok := index[k]
			if !ok {
				index[k] = len(out.Records)
				out.Records = append(out.Records, r.clone())
				if n > 0 {
					st.Added++
				}
				continue
			}
			if cur := &out.Records[i]; r.Status > cur.Status {
				cur.Status = r.Status
				st.Raised++
			}
		}
	}
	return out, st, nil
}
