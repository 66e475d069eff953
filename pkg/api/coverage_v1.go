// pkg/api/coverage_v1.go
package api

// SectorCoverageV1 is the stable JSON schema for one sector's counts.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SectorCoverageV1 struct {
	Sector       int     `json:"sector"`
	Total        int     `json:"total"`
	Rows         int     `json:"rows"`
	Hot          int     `json:"nhot"`
	HotFraction  float64 `json:"frachot"`
	Dead         int     `json:"ndead"`
	DeadFraction float64 `json:"fracdead"`
	Live         int     `json:"nlive"`
	LiveFraction float64 `json:"fraclive"`
	Unclassified int     `json:"nunclassified,omitempty"`
}

// CoverageReportV1 is the stable JSON schema for a merged warnmap report.
type CoverageReportV1 struct {
	Inputs       []string           `json:"inputs"`
	Output       string             `json:"output,omitempty"`
	Strategy     string             `json:"merge"`
	Channels     int                `json:"channels"`
	Sectors      []SectorCoverageV1 `json:"sectors"`
	LiveDetector int                `json:"nlive_detector"`
	TotalTowers  int                `json:"ntotal_detector"`
	LiveFraction float64            `json:"overall_live_fraction"`
	OutsideTable int                `json:"outside_table,omitempty"`
}

// ChannelV1 is the stable JSONL schema for one merged channel.
type ChannelV1 struct {
	Sector  int    `json:"sector"`
	IY      int    `json:"iy"`
	IZ      int    `json:"iz"`
	TowerID int    `json:"tower_id"`
	Status  int    `json:"status"`
	Class   string `json:"class"`
	Extra   []int  `json:"extra,omitempty"`
}
