package query

import (
	"sort"

	"election-board/internal/store"
)

// PartyStanding is one party's aggregate position in the national tally.
type PartyStanding struct {
	PartyID          string  `json:"partyId"`
	Name             string  `json:"name"`
	Abbreviation     string  `json:"abbreviation"`
	Color            string  `json:"color"`
	TotalVotes       int     `json:"totalVotes"`
	SeatsWon         int     `json:"seatsWon"`
	SeatsLeading     int     `json:"seatsLeading"`
	VoteSharePercent float64 `json:"voteSharePercent"`
}

// Overview is the national headline view.
type Overview struct {
	TotalVotesCast int             `json:"totalVotesCast"`
	SeatsDeclared  int             `json:"seatsDeclared"`
	SeatsReporting int             `json:"seatsReporting"`
	TurnoutPercent float64         `json:"turnoutPercent"`
	PartyStandings []PartyStanding `json:"partyStandings"`
}

// Overview aggregates every seat: declared and reporting counts, national
// vote totals, per-party standings with won/leading seat counters, and
// turnout against total registration.
func (e *Engine) Overview() Overview {
	return overviewFromSnapshot(e.store.Snapshot())
}

func overviewFromSnapshot(snap *store.Snapshot) Overview {
	totalVotesCast := 0
	seatsDeclared := 0
	seatsReporting := 0

	partyVotes := make(map[string]int, len(snap.Parties))
	partySeatsWon := make(map[string]int, len(snap.Parties))
	partySeatsLeading := make(map[string]int, len(snap.Parties))

	for _, seat := range snap.Seats {
		if seat.Status == store.StatusCompleted {
			seatsDeclared++
		}
		if seat.Status != store.StatusNotStarted {
			seatsReporting++
		}

		cands := candidatesByVotes(snap, seat.ID)
		for _, c := range cands {
			totalVotesCast += c.TotalVotes
			partyVotes[c.PartyID] += c.TotalVotes
		}

		// A seat only counts toward won/leading once someone has votes.
		if len(cands) > 0 && cands[0].TotalVotes > 0 {
			if seat.Status == store.StatusCompleted {
				partySeatsWon[cands[0].PartyID]++
			} else {
				partySeatsLeading[cands[0].PartyID]++
			}
		}
	}

	totalRegistered := 0
	for _, centre := range snap.Centres {
		totalRegistered += centre.RegisteredVoters
	}

	standings := make([]PartyStanding, 0, len(snap.Parties))
	for _, p := range snap.Parties {
		standings = append(standings, PartyStanding{
			PartyID:          p.ID,
			Name:             p.Name,
			Abbreviation:     p.Abbreviation,
			Color:            p.Color,
			TotalVotes:       partyVotes[p.ID],
			SeatsWon:         partySeatsWon[p.ID],
			SeatsLeading:     partySeatsLeading[p.ID],
			VoteSharePercent: percent(float64(partyVotes[p.ID]), float64(totalVotesCast)),
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalVotes > standings[j].TotalVotes
	})

	return Overview{
		TotalVotesCast: totalVotesCast,
		SeatsDeclared:  seatsDeclared,
		SeatsReporting: seatsReporting,
		TurnoutPercent: percent(float64(totalVotesCast), float64(totalRegistered)),
		PartyStandings: standings,
	}
}

// Parties returns the party standings slice of the overview.
func (e *Engine) Parties() []PartyStanding {
	return e.Overview().PartyStandings
}
