package warnmap

import "sort"

// LessRecord orders records by sector, then iy, then iz.
func LessRecord(a, b ChannelRecord) bool {
	if a.Sector != b.Sector {
		return a.Sector < b.Sector
	}
	if a.IY != b.IY {
		return a.IY < b.IY
	}
	return a.IZ < b.IZ
}

// SortByChannel returns a copy of m with records in channel order.
func SortByChannel(m *WarnMap) *WarnMap {
	out := m.Clone()
	sort.SliceStable(out.Records, func(i, j int) bool { return LessRecord(out.Records[i], out.Records[j]) })
	return out
}
