// Package coverage derives per-sector hot/dead/live channel counts from a
// merged warnmap.
package coverage

import (
	"errors"
	"fmt"

	"warnmap/internal/geometry"
	"warnmap/internal/warnmap"
)

// ErrBadTotal is returned when a sector total is not positive.
var ErrBadTotal = errors.New("sector total must be positive")

// Class is the category of a status code.
type Class int

const (
	Unclassified Class = iota // 20-49, 51-99, >100
	Live                      // < 20
	Hot                       // == 50
	Dead                      // == 100
)

func (c Class) String() string {
	switch c {
	case Live:
		return "live"
	case Hot:
		return "hot"
	case Dead:
		return "dead"
	}
	return "unclassified"
}

// Classify maps a status code to its class.
func Classify(status int) Class {
	switch {
	case status < warnmap.StatusLiveMax:
		return Live
	case status == warnmap.StatusHot:
		return Hot
	case status == warnmap.StatusDead:
		return Dead
	}
	return Unclassified
}

// Sector holds the counts for one sector.
type Sector struct {
	Sector       int
	Total        int
	Rows         int
	Hot          int
	Dead         int
	Live         int
	Unclassified int
}

func (s Sector) HotFraction() float64  { return float64(s.Hot) / float64(s.Total) }
func (s Sector) DeadFraction() float64 { return float64(s.Dead) / float64(s.Total) }
func (s Sector) LiveFraction() float64 { return float64(s.Live) / float64(s.Total) }

// Summary is the detector-wide result of Aggregate.
type Summary struct {
	Sectors []Sector
	// LiveDetector and TotalDetector are the sums of Live and Total over Sectors.
	LiveDetector  int
	TotalDetector int
	// OutsideTable counts records whose sector has no entry in the totals table.
	OutsideTable int
}

// LiveFraction is LiveDetector / TotalDetector.
func (s Summary) LiveFraction() float64 {
	return float64(s.LiveDetector) / float64(s.TotalDetector)
}

// Aggregate counts classes per sector for every sector in totals.
func Aggregate(m *warnmap.WarnMap, totals geometry.Totals) (Summary, error) {
	if len(totals) == 0 {
		return Summary{}, fmt.Errorf("aggregate: %w: empty totals table", ErrBadTotal)
	}
	sum := Summary{Sectors: make([]Sector, len(totals))}
	for s, tot := range totals {
		if tot <= 0 {
			return Summary{}, fmt.Errorf("aggregate: sector %d: %w (got %d)", s, ErrBadTotal, tot)
		}
		sum.Sectors[s] = Sector{Sector: s, Total: tot}
	}
	for _, r := range m.Records {
		if r.Sector < 0 || r.Sector >= len(totals) {
			sum.OutsideTable++
			continue
		}
		sec := &sum.Sectors[r.Sector]
		sec.Rows++
		switch Classify(r.Status) {
		case Live:
			sec.Live++
		case Hot:
			sec.Hot++
		case Dead:
			sec.Dead++
		default:
			sec.Unclassified++
		}
	}
	for _, sec := range sum.Sectors {
		sum.LiveDetector += sec.Live
		sum.TotalDetector += sec.Total
	}
	return sum, nil
}
