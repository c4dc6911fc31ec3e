package query

import (
	"testing"

	"election-board/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededEngine() *Engine {
	return New(store.New(store.DefaultSeed))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(5, 0))
	assert.Equal(t, 50.0, percent(1, 2))
	assert.Equal(t, 33.33, percent(1, 3))
	assert.Equal(t, 66.67, percent(2, 3))

	assert.Equal(t, 0, wholePercent(3, 0))
	assert.Equal(t, 67, wholePercent(2, 3))
	assert.Equal(t, 100, wholePercent(7, 7))
}

func TestPaginate(t *testing.T) {
	pg := paginate(151, 1, 10)
	assert.Equal(t, 16, pg.totalPages)
	assert.Equal(t, 0, pg.start)
	assert.Equal(t, 10, pg.end)

	// Out-of-range pages clamp instead of erroring.
	pg = paginate(151, 999, 10)
	assert.Equal(t, 16, pg.page)
	assert.Equal(t, 150, pg.start)
	assert.Equal(t, 151, pg.end)

	pg = paginate(151, -3, 0)
	assert.Equal(t, 1, pg.page)
	assert.Equal(t, 10, pg.end-pg.start, "limit defaults to 10")

	pg = paginate(0, 1, 10)
	assert.Equal(t, 1, pg.totalPages)
	assert.Equal(t, 0, pg.end)
}

func TestOverview(t *testing.T) {
	e := seededEngine()
	ov := e.Overview()

	assert.Equal(t, 45, ov.SeatsDeclared)
	assert.Equal(t, 90, ov.SeatsReporting)
	assert.Positive(t, ov.TotalVotesCast)
	assert.Greater(t, ov.TurnoutPercent, 0.0)
	assert.LessOrEqual(t, ov.TurnoutPercent, 100.0)

	require.Len(t, ov.PartyStandings, 10)
	shareSum := 0.0
	wonSum := 0
	for i, ps := range ov.PartyStandings {
		shareSum += ps.VoteSharePercent
		wonSum += ps.SeatsWon
		if i > 0 {
			assert.LessOrEqual(t, ps.TotalVotes, ov.PartyStandings[i-1].TotalVotes, "standings not sorted")
		}
	}
	assert.InDelta(t, 100.0, shareSum, 0.5)
	assert.Equal(t, 45, wonSum, "every declared seat has a winner")

	// Two calls over an unchanged store agree.
	assert.Equal(t, ov, e.Overview())
}

func TestParties(t *testing.T) {
	e := seededEngine()
	assert.Equal(t, e.Overview().PartyStandings, e.Parties())
}

func TestSeatsListing(t *testing.T) {
	e := seededEngine()

	page := e.Seats(SeatFilters{})
	assert.Equal(t, 151, page.Total)
	assert.Equal(t, 16, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Seats, 10)

	page = e.Seats(SeatFilters{Page: 999})
	assert.Equal(t, 16, page.Page)
	assert.Len(t, page.Seats, 1)

	page = e.Seats(SeatFilters{DivisionID: "div-1"})
	assert.Equal(t, 38, page.Total)

	page = e.Seats(SeatFilters{SearchQuery: "DHAKA"})
	assert.Equal(t, 8, page.Total, "search is case-insensitive")

	page = e.Seats(SeatFilters{Status: string(store.StatusCompleted)})
	assert.Equal(t, 45, page.Total)

	page = e.Seats(SeatFilters{DivisionID: "div-1", DistrictID: "dist-99"})
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Seats)
}

func TestSeatsEnrichment(t *testing.T) {
	e := seededEngine()

	page := e.Seats(SeatFilters{Status: string(store.StatusCompleted), Limit: 5})
	require.NotEmpty(t, page.Seats)
	for _, row := range page.Seats {
		require.NotNil(t, row.LeadingCandidate, "completed seat %s has no leader", row.ID)
		assert.Positive(t, row.TotalVotes)
		assert.LessOrEqual(t, row.LeadingCandidate.TotalVotes, row.TotalVotes)
	}

	page = e.Seats(SeatFilters{Status: string(store.StatusNotStarted), Limit: 5})
	for _, row := range page.Seats {
		assert.Zero(t, row.TotalVotes)
	}
}

func TestSeatDetail(t *testing.T) {
	e := seededEngine()

	assert.Nil(t, e.SeatDetail("seat-9999"))

	detail := e.SeatDetail("seat-1")
	require.NotNil(t, detail)
	assert.Equal(t, "Dhaka-1", detail.Name)
	assert.Equal(t, "Dhaka", detail.DivisionName)
	assert.Equal(t, "Dhaka", detail.DistrictName)
	require.NotEmpty(t, detail.Candidates)

	sum := 0.0
	for i, cand := range detail.Candidates {
		sum += cand.VotePercent
		if i > 0 {
			assert.LessOrEqual(t, cand.TotalVotes, detail.Candidates[i-1].TotalVotes)
		}
	}
	if detail.TotalVotes > 0 {
		assert.InDelta(t, 100.0, sum, 0.5)
	}
}

func TestSeatCentres(t *testing.T) {
	e := seededEngine()

	assert.Nil(t, e.SeatCentres("seat-9999"))

	centres := e.SeatCentres("seat-1")
	require.NotNil(t, centres)
	detail := e.SeatDetail("seat-1")
	assert.Len(t, centres, detail.TotalCentres)

	for _, centre := range centres {
		if !centre.IsReported {
			assert.Empty(t, centre.Results)
			continue
		}
		for _, r := range centre.Results {
			assert.NotEqual(t, unknownName, r.CandidateName, "seeded result should resolve its candidate")
			assert.NotEmpty(t, r.PartyColor)
		}
	}
}

func TestMapData(t *testing.T) {
	e := seededEngine()

	data := e.MapData()
	require.Len(t, data, 151)

	for _, ms := range data {
		assert.GreaterOrEqual(t, ms.CompletionPercent, 0)
		assert.LessOrEqual(t, ms.CompletionPercent, 100)

		if ms.TotalVotes == 0 {
			assert.Nil(t, ms.LeadingPartyID)
			assert.Equal(t, noneName, ms.LeadingPartyName)
			assert.Equal(t, noneColor, ms.LeadingPartyColor)
		} else {
			require.NotNil(t, ms.LeadingPartyID)
			assert.NotEqual(t, noneName, ms.LeadingPartyName)
		}
	}
}

func TestDivisionsAndDistrictsMeta(t *testing.T) {
	e := seededEngine()

	assert.Len(t, e.Divisions(), 8)
	assert.Len(t, e.DistrictsMeta(""), 64)

	dhaka := e.DistrictsMeta("div-1")
	require.NotEmpty(t, dhaka)
	for _, d := range dhaka {
		assert.Equal(t, "div-1", d.DivisionID)
	}
}
