// Package warnmap holds the per-channel status tables produced by the EMCal
// warnmap calibration and the operations on them: load, merge, save.
package warnmap

// Status codes.
const (
	StatusLiveMax = 20  // status < 20 is a live channel
	StatusHot     = 50  // over-threshold channel
	StatusDead    = 100 // dead channel
)

// MinColumns is the minimum number of integer columns per row.
const MinColumns = 4

// Key identifies one physical channel.
type Key struct {
	Sector int
	IY     int
	IZ     int
}

// ChannelRecord is one row of a warnmap file: sector iy iz status [extra...].
type ChannelRecord struct {
	Sector int
	IY     int
	IZ     int
	Status int
	Extra  []int
}

// Key returns the channel identity of the record.
func (r ChannelRecord) Key() Key { return Key{Sector: r.Sector, IY: r.IY, IZ: r.IZ} }

// Columns returns the record as a flat row, extras included.
func (r ChannelRecord) Columns() []int {
	out := make([]int, 0, MinColumns+len(r.Extra))
	out = append(out, r.Sector, r.IY, r.IZ, r.Status)
	return append(out, r.Extra...)
}

func (r ChannelRecord) clone() ChannelRecord {
	if r.Extra != nil {
		r.Extra = append([]int(nil), r.Extra...)
	}
	return r
}

// WarnMap is an ordered table of channel records read from one source.
type WarnMap struct {
	Source  string
	Records []ChannelRecord
}

// Len returns the number of records.
func (m *WarnMap) Len() int { return len(m.Records) }

// Clone returns a deep copy of m.
func (m *WarnMap) Clone() *WarnMap {
	out := &WarnMap{Source: m.Source, Records: make([]ChannelRecord, len(m.Records))}
	for i, r := range m.Records {
		out.Records[i] = r.clone()
	}
	return out
}
