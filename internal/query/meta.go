package query

import "election-board/internal/store"

// Divisions returns the static division table.
func (e *Engine) Divisions() []store.Division {
	return e.store.Snapshot().Divisions
}

// DistrictsMeta returns the static district table, optionally restricted
// to one division.
func (e *Engine) DistrictsMeta(divisionID string) []store.District {
	snap := e.store.Snapshot()
	if divisionID == "" {
		return snap.Districts
	}
	out := make([]store.District, 0, len(snap.Districts))
	for _, d := range snap.Districts {
		if d.DivisionID == divisionID {
			out = append(out, d)
		}
	}
	return out
}
