// internal/output/json.go
package output

import (
	"io"

	"warnmap/internal/coverage"
	"warnmap/internal/geometry"
	"warnmap/internal/jsonutil"
	"warnmap/internal/warnmap"
	"warnmap/pkg/api"
)

// ToAPIReport converts a Report to the stable wire schema (v1).
func ToAPIReport(r Report) api.CoverageReportV1 {
	v := api.CoverageReportV1{
		Inputs:       append([]string{}, r.Inputs...),
		Output:       r.Output,
		Strategy:     string(r.Strategy),
		Sectors:      make([]api.SectorCoverageV1, 0, len(r.Summary.Sectors)),
		LiveDetector: r.Summary.LiveDetector,
		TotalTowers:  r.Summary.TotalDetector,
		LiveFraction: r.Summary.LiveFraction(),
		OutsideTable: r.Summary.OutsideTable,
	}
	if r.Merged != nil {
		v.Channels = r.Merged.Len()
	}
	for _, s := range r.Summary.Sectors {
		v.Sectors = append(v.Sectors, ToAPISector(s))
	}
	return v
}

// ToAPISector converts one sector's counts.
func ToAPISector(s coverage.Sector) api.SectorCoverageV1 {
	return api.SectorCoverageV1{
		Sector:       s.Sector,
		Total:        s.Total,
		Rows:         s.Rows,
		Hot:          s.Hot,
		HotFraction:  s.HotFraction(),
		Dead:         s.Dead,
		DeadFraction: s.DeadFraction(),
		Live:         s.Live,
		LiveFraction: s.LiveFraction(),
		Unclassified: s.Unclassified,
	}
}

// ToAPIChannel converts one merged record; TowerID is -1 off the EMCal grid.
func ToAPIChannel(r warnmap.ChannelRecord) api.ChannelV1 {
	return api.ChannelV1{
		Sector:  r.Sector,
		IY:      r.IY,
		IZ:      r.IZ,
		TowerID: geometry.TowerID(r.Sector, r.IY, r.IZ),
		Status:  r.Status,
		Class:   coverage.Classify(r.Status).String(),
		Extra:   append([]int(nil), r.Extra...),
	}
}

// WriteJSON writes the report as one pretty-indented JSON object.
func WriteJSON(w io.Writer, r Report) error {
	return jsonutil.EncodePretty(w, ToAPIReport(r))
}
