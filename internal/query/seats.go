package query

import (
	"strings"

	"election-board/internal/store"
)

// SeatFilters narrows a seat listing. Filters are AND-combined in declared
// order; zero values mean "no filter".
type SeatFilters struct {
	DivisionID  string
	DistrictID  string
	Status      string
	SearchQuery string
	Page        int
	Limit       int
}

// LeadingCandidate is the current front-runner of a seat.
type LeadingCandidate struct {
	Name              string `json:"name"`
	PartyID           string `json:"partyId"`
	PartyName         string `json:"partyName"`
	PartyAbbreviation string `json:"partyAbbreviation"`
	PartyColor        string `json:"partyColor"`
	TotalVotes        int    `json:"totalVotes"`
}

// SeatSummary is one row of the seat listing.
type SeatSummary struct {
	store.Seat
	LeadingCandidate *LeadingCandidate `json:"leadingCandidate"`
	TotalVotes       int               `json:"totalVotes"`
}

// SeatPage is a filtered, paginated seat listing.
type SeatPage struct {
	Seats      []SeatSummary `json:"seats"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// Seats returns the filtered, paginated seat listing, each row enriched
// with its leading candidate and vote total.
func (e *Engine) Seats(filters SeatFilters) SeatPage {
	snap := e.store.Snapshot()

	filtered := make([]store.Seat, 0, len(snap.Seats))
	q := strings.ToLower(filters.SearchQuery)
	for _, seat := range snap.Seats {
		if filters.DivisionID != "" && seat.DivisionID != filters.DivisionID {
			continue
		}
		if filters.DistrictID != "" && seat.DistrictID != filters.DistrictID {
			continue
		}
		if filters.Status != "" && string(seat.Status) != filters.Status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(seat.Name), q) {
			continue
		}
		filtered = append(filtered, seat)
	}

	pg := paginate(len(filtered), filters.Page, filters.Limit)
	rows := make([]SeatSummary, 0, pg.end-pg.start)
	for _, seat := range filtered[pg.start:pg.end] {
		cands := candidatesByVotes(snap, seat.ID)
		rows = append(rows, SeatSummary{
			Seat:             seat,
			LeadingCandidate: leadingCandidate(snap, cands),
			TotalVotes:       sumVotes(cands),
		})
	}

	return SeatPage{Seats: rows, Total: pg.total, Page: pg.page, TotalPages: pg.totalPages}
}

func leadingCandidate(snap *store.Snapshot, sorted []store.Candidate) *LeadingCandidate {
	if len(sorted) == 0 {
		return nil
	}
	leader := sorted[0]
	lc := &LeadingCandidate{
		Name:       leader.Name,
		PartyID:    leader.PartyID,
		PartyColor: neutralColor,
		TotalVotes: leader.TotalVotes,
	}
	if party, ok := snap.PartyByID[leader.PartyID]; ok {
		lc.PartyName = party.Name
		lc.PartyAbbreviation = party.Abbreviation
		lc.PartyColor = party.Color
	}
	return lc
}

// SeatCandidate is one candidate row of the seat detail view.
type SeatCandidate struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PartyID           string  `json:"partyId"`
	PartyName         string  `json:"partyName"`
	PartyColor        string  `json:"partyColor"`
	PartyAbbreviation string  `json:"partyAbbreviation"`
	TotalVotes        int     `json:"totalVotes"`
	VotePercent       float64 `json:"votePercent"`
}

// SeatDetail is the full view of a single seat.
type SeatDetail struct {
	store.Seat
	DivisionName string          `json:"divisionName"`
	DistrictName string          `json:"districtName"`
	TotalVotes   int             `json:"totalVotes"`
	Candidates   []SeatCandidate `json:"candidates"`
}

// SeatDetail returns the enriched view of one seat, or nil when the seat
// does not exist. A seat with zero candidates is a valid, non-nil result.
func (e *Engine) SeatDetail(seatID string) *SeatDetail {
	snap := e.store.Snapshot()

	seat, ok := snap.SeatByID[seatID]
	if !ok {
		return nil
	}

	cands := candidatesByVotes(snap, seatID)
	totalVotes := sumVotes(cands)

	rows := make([]SeatCandidate, 0, len(cands))
	for _, c := range cands {
		row := SeatCandidate{
			ID:                c.ID,
			Name:              c.Name,
			PartyID:           c.PartyID,
			PartyName:         unknownName,
			PartyColor:        neutralColor,
			PartyAbbreviation: unknownAbbr,
			TotalVotes:        c.TotalVotes,
			VotePercent:       percent(float64(c.TotalVotes), float64(totalVotes)),
		}
		if party, ok := snap.PartyByID[c.PartyID]; ok {
			row.PartyName = party.Name
			row.PartyColor = party.Color
			row.PartyAbbreviation = party.Abbreviation
		}
		rows = append(rows, row)
	}

	detail := &SeatDetail{
		Seat:       seat,
		TotalVotes: totalVotes,
		Candidates: rows,
	}
	if div, ok := snap.DivisionByID[seat.DivisionID]; ok {
		detail.DivisionName = div.Name
	}
	if dist, ok := snap.DistrictByID[seat.DistrictID]; ok {
		detail.DistrictName = dist.Name
	}
	return detail
}

// CentreResult is one candidate's tally within an enriched centre view.
type CentreResult struct {
	CandidateID       string `json:"candidateId"`
	CandidateName     string `json:"candidateName"`
	PartyID           string `json:"partyId"`
	PartyAbbreviation string `json:"partyAbbreviation"`
	PartyColor        string `json:"partyColor"`
	Votes             int    `json:"votes"`
}

// CentreView is one polling centre with its results resolved to candidate
// and party names.
type CentreView struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	RegisteredVoters int            `json:"registeredVoters"`
	IsReported       bool           `json:"isReported"`
	Results          []CentreResult `json:"results"`
}

// SeatCentres returns every centre of a seat with per-result candidate and
// party lookups, or nil when the seat does not exist. Stale candidate
// references degrade to placeholder labels.
func (e *Engine) SeatCentres(seatID string) []CentreView {
	snap := e.store.Snapshot()

	if _, ok := snap.SeatByID[seatID]; !ok {
		return nil
	}

	centres := snap.CentresBySeat[seatID]
	views := make([]CentreView, 0, len(centres))
	for _, centre := range centres {
		results := make([]CentreResult, 0, len(centre.Results))
		for _, r := range centre.Results {
			row := CentreResult{
				CandidateID:       r.CandidateID,
				CandidateName:     unknownName,
				PartyAbbreviation: unknownAbbr,
				PartyColor:        neutralColor,
				Votes:             r.Votes,
			}
			if cand, ok := snap.CandidateByID[r.CandidateID]; ok {
				row.CandidateName = cand.Name
				row.PartyID = cand.PartyID
				if party, ok := snap.PartyByID[cand.PartyID]; ok {
					row.PartyAbbreviation = party.Abbreviation
					row.PartyColor = party.Color
				}
			}
			results = append(results, row)
		}
		views = append(views, CentreView{
			ID:               centre.ID,
			Name:             centre.Name,
			RegisteredVoters: centre.RegisteredVoters,
			IsReported:       centre.IsReported,
			Results:          results,
		})
	}
	return views
}
