package query

import (
	"sort"

	"election-board/internal/store"
)

// DivisionProgress tracks centre reporting within one division.
type DivisionProgress struct {
	DivisionID string `json:"divisionId"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Reported   int    `json:"reported"`
	Percent    int    `json:"percent"`
}

// AdminDashboard is the operational headline view for election staff.
type AdminDashboard struct {
	TotalSeats       int                `json:"totalSeats"`
	SeatsWithResults int                `json:"seatsWithResults"`
	TotalCentres     int                `json:"totalCentres"`
	CentresReported  int                `json:"centresReported"`
	OverallPercent   int                `json:"overallPercent"`
	DivisionProgress []DivisionProgress `json:"divisionProgress"`
	RecentActivity   []store.AuditEntry `json:"recentActivity"`
}

// Dashboard summarizes reporting progress nationally, per division, and
// with the ten most recent audit entries.
func (e *Engine) Dashboard() AdminDashboard {
	snap := e.store.Snapshot()

	dash := AdminDashboard{
		TotalSeats: len(snap.Seats),
	}
	for _, seat := range snap.Seats {
		if seat.Status != store.StatusNotStarted {
			dash.SeatsWithResults++
		}
	}

	type progress struct {
		total    int
		reported int
	}
	byDivision := make(map[string]*progress, len(snap.Divisions))
	for _, div := range snap.Divisions {
		byDivision[div.ID] = &progress{}
	}

	dash.TotalCentres = len(snap.Centres)
	for _, centre := range snap.Centres {
		if centre.IsReported {
			dash.CentresReported++
		}
		seat, ok := snap.SeatByID[centre.SeatID]
		if !ok {
			continue
		}
		if p, ok := byDivision[seat.DivisionID]; ok {
			p.total++
			if centre.IsReported {
				p.reported++
			}
		}
	}
	dash.OverallPercent = wholePercent(dash.CentresReported, dash.TotalCentres)

	dash.DivisionProgress = make([]DivisionProgress, 0, len(snap.Divisions))
	for _, div := range snap.Divisions {
		p := byDivision[div.ID]
		dash.DivisionProgress = append(dash.DivisionProgress, DivisionProgress{
			DivisionID: div.ID,
			Name:       div.Name,
			Total:      p.total,
			Reported:   p.reported,
			Percent:    wholePercent(p.reported, p.total),
		})
	}

	dash.RecentActivity = recentAuditEntries(snap.AuditLogs, 10)
	return dash
}

// recentAuditEntries returns the n newest entries. Timestamps are RFC3339
// strings, so lexicographic order is chronological order.
func recentAuditEntries(entries []store.AuditEntry, n int) []store.AuditEntry {
	sorted := append([]store.AuditEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
