package query

import "election-board/internal/store"

// MapSeat is the per-seat summary consumed by map overlays. LeadingPartyID
// is null until the seat has counted at least one vote.
type MapSeat struct {
	SeatID            string  `json:"seatId"`
	Name              string  `json:"name"`
	SeatNumber        int     `json:"seatNumber"`
	DivisionID        string  `json:"divisionId"`
	DistrictID        string  `json:"districtId"`
	LeadingPartyID    *string `json:"leadingPartyId"`
	LeadingPartyName  string  `json:"leadingPartyName"`
	LeadingPartyColor string  `json:"leadingPartyColor"`
	CompletionPercent int     `json:"completionPercent"`
	TotalVotes        int     `json:"totalVotes"`
}

// MapData returns one entry per seat in seeded order.
func (e *Engine) MapData() []MapSeat {
	snap := e.store.Snapshot()
	return mapDataFromSnapshot(snap)
}

func mapDataFromSnapshot(snap *store.Snapshot) []MapSeat {
	out := make([]MapSeat, 0, len(snap.Seats))
	for _, seat := range snap.Seats {
		out = append(out, mapSeatFromSnapshot(snap, seat))
	}
	return out
}

func mapSeatFromSnapshot(snap *store.Snapshot, seat store.Seat) MapSeat {
	cands := candidatesByVotes(snap, seat.ID)
	ms := MapSeat{
		SeatID:            seat.ID,
		Name:              seat.Name,
		SeatNumber:        seat.SeatNumber,
		DivisionID:        seat.DivisionID,
		DistrictID:        seat.DistrictID,
		LeadingPartyName:  noneName,
		LeadingPartyColor: noneColor,
		CompletionPercent: wholePercent(seat.ReportedCentreCount, seat.TotalCentres),
		TotalVotes:        sumVotes(cands),
	}
	if leader := leadingCandidate(snap, cands); leader != nil && leader.TotalVotes > 0 {
		partyID := leader.PartyID
		ms.LeadingPartyID = &partyID
		ms.LeadingPartyName = leader.PartyName
		ms.LeadingPartyColor = leader.PartyColor
	}
	return ms
}
