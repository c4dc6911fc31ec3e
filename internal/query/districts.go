package query

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"election-board/internal/store"
)

// DistrictSummary aggregates the map view one level up. The winner is the
// party leading the most seats in the district; a tie goes to the party
// whose leading seats carry more votes in total.
type DistrictSummary struct {
	DistrictID        string    `json:"districtId"`
	Name              string    `json:"name"`
	DivisionID        string    `json:"divisionId"`
	LeadingPartyID    *string   `json:"leadingPartyId"`
	LeadingPartyName  string    `json:"leadingPartyName"`
	LeadingPartyColor string    `json:"leadingPartyColor"`
	SeatCount         int       `json:"seatCount"`
	TotalVotes        int       `json:"totalVotes"`
	CompletionPercent int       `json:"completionPercent"`
	SeatBreakdown     string    `json:"seatBreakdown"`
	Seats             []MapSeat `json:"seats"`
}

// Districts returns one summary per district, in static table order.
func (e *Engine) Districts() []DistrictSummary {
	snap := e.store.Snapshot()
	mapSeats := mapDataFromSnapshot(snap)

	byDistrict := make(map[string][]MapSeat, len(snap.Districts))
	for _, ms := range mapSeats {
		byDistrict[ms.DistrictID] = append(byDistrict[ms.DistrictID], ms)
	}

	out := make([]DistrictSummary, 0, len(snap.Districts))
	for _, district := range snap.Districts {
		out = append(out, districtSummary(district, byDistrict[district.ID]))
	}
	return out
}

func districtSummary(district store.District, seats []MapSeat) DistrictSummary {
	ds := DistrictSummary{
		DistrictID:        district.ID,
		Name:              district.Name,
		DivisionID:        district.DivisionID,
		LeadingPartyName:  noneName,
		LeadingPartyColor: noneColor,
		SeatCount:         len(seats),
		Seats:             seats,
	}
	if len(seats) == 0 {
		ds.Seats = []MapSeat{}
		return ds
	}

	completionSum := 0
	for _, s := range seats {
		ds.TotalVotes += s.TotalVotes
		completionSum += s.CompletionPercent
	}
	ds.CompletionPercent = int(math.Round(float64(completionSum) / float64(len(seats))))

	type partyTally struct {
		id    string
		name  string
		color string
		seats int
		votes int
	}
	var order []string
	tallies := make(map[string]*partyTally)
	for _, s := range seats {
		if s.LeadingPartyID == nil {
			continue
		}
		id := *s.LeadingPartyID
		t, ok := tallies[id]
		if !ok {
			t = &partyTally{id: id, name: s.LeadingPartyName, color: s.LeadingPartyColor}
			tallies[id] = t
			order = append(order, id)
		}
		t.seats++
		t.votes += s.TotalVotes
	}

	var winner *partyTally
	for _, id := range order {
		t := tallies[id]
		if winner == nil || t.seats > winner.seats || (t.seats == winner.seats && t.votes > winner.votes) {
			winner = t
		}
	}
	if winner != nil {
		id := winner.id
		ds.LeadingPartyID = &id
		ds.LeadingPartyName = winner.name
		ds.LeadingPartyColor = winner.color
	}

	sort.SliceStable(order, func(i, j int) bool {
		return tallies[order[i]].seats > tallies[order[j]].seats
	})
	parts := make([]string, 0, len(order))
	for _, id := range order {
		t := tallies[id]
		parts = append(parts, fmt.Sprintf("%s × %d", t.name, t.seats))
	}
	ds.SeatBreakdown = strings.Join(parts, ", ")

	return ds
}
