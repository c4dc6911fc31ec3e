package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCGSequence(t *testing.T) {
	g := NewLCG(42)

	// First draw advances the state once: 42*16807 mod 2147483647.
	first := g.Float64()
	assert.InDelta(t, float64(42*16807-1)/2147483646.0, first, 1e-12)

	a := NewLCG(42)
	b := NewLCG(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestSeedDeterminism(t *testing.T) {
	s1 := New(42).Snapshot()
	s2 := New(42).Snapshot()

	assert.Equal(t, s1.Seats, s2.Seats)
	assert.Equal(t, s1.Candidates, s2.Candidates)
	assert.Equal(t, s1.Centres, s2.Centres)
	assert.Equal(t, s1.AuditLogs, s2.AuditLogs)

	s3 := New(7).Snapshot()
	assert.NotEqual(t, s1.Centres, s3.Centres, "different seeds should generate different worlds")
}

func TestSeedCounts(t *testing.T) {
	snap := New(DefaultSeed).Snapshot()

	assert.Len(t, snap.Divisions, 8)
	assert.Len(t, snap.Districts, 64)
	assert.Len(t, snap.Parties, 10)
	assert.Len(t, snap.Admins, 2)
	assert.Len(t, snap.Seats, 151)
	assert.Len(t, snap.AuditLogs, 50)

	for _, seat := range snap.Seats {
		assert.GreaterOrEqual(t, seat.TotalCentres, 4)
		assert.LessOrEqual(t, seat.TotalCentres, 7)

		cands := snap.CandidatesBySeat[seat.ID]
		assert.GreaterOrEqual(t, len(cands), 3, "seat %s", seat.ID)
		assert.LessOrEqual(t, len(cands), 6, "seat %s", seat.ID)

		assert.Len(t, snap.CentresBySeat[seat.ID], seat.TotalCentres)
	}
}

func TestSeedCompletionTiers(t *testing.T) {
	snap := New(DefaultSeed).Snapshot()

	counts := map[SeatStatus]int{}
	for _, seat := range snap.Seats {
		counts[seat.Status]++
	}

	// 45 seats are seeded fully reported and 61 untouched; partial tiers
	// always land strictly between, regardless of centre counts.
	assert.Equal(t, 45, counts[StatusCompleted])
	assert.Equal(t, 61, counts[StatusNotStarted])
	assert.Equal(t, 45, counts[StatusInProgress])
}

func TestSeedReferentialIntegrity(t *testing.T) {
	snap := New(DefaultSeed).Snapshot()

	for _, seat := range snap.Seats {
		district, ok := snap.DistrictByID[seat.DistrictID]
		require.True(t, ok, "seat %s references unknown district", seat.ID)
		assert.Equal(t, seat.DivisionID, district.DivisionID, "seat %s division disagrees with its district", seat.ID)
		_, ok = snap.DivisionByID[seat.DivisionID]
		require.True(t, ok, "seat %s references unknown division", seat.ID)
	}

	for _, cand := range snap.Candidates {
		_, ok := snap.SeatByID[cand.SeatID]
		require.True(t, ok, "candidate %s references unknown seat", cand.ID)
		_, ok = snap.PartyByID[cand.PartyID]
		require.True(t, ok, "candidate %s references unknown party", cand.ID)
	}

	for _, centre := range snap.Centres {
		_, ok := snap.SeatByID[centre.SeatID]
		require.True(t, ok, "centre %s references unknown seat", centre.ID)
	}
}

func TestSeedVoteInvariants(t *testing.T) {
	snap := New(DefaultSeed).Snapshot()

	candTotals := map[string]int{}
	for _, centre := range snap.Centres {
		if !centre.IsReported {
			assert.Empty(t, centre.Results, "unreported centre %s has results", centre.ID)
			continue
		}

		require.NotEmpty(t, centre.Results, "reported centre %s has no results", centre.ID)
		assert.Len(t, centre.Results, len(snap.CandidatesBySeat[centre.SeatID]))

		sum := 0
		for _, r := range centre.Results {
			assert.GreaterOrEqual(t, r.Votes, 0)
			sum += r.Votes
			candTotals[r.CandidateID] += r.Votes
		}
		assert.LessOrEqual(t, sum, centre.RegisteredVoters, "centre %s votes exceed registration", centre.ID)
	}

	for _, cand := range snap.Candidates {
		assert.Equal(t, candTotals[cand.ID], cand.TotalVotes, "candidate %s total disagrees with centre results", cand.ID)
	}

	for _, seat := range snap.Seats {
		reported := 0
		for _, centre := range snap.CentresBySeat[seat.ID] {
			if centre.IsReported {
				reported++
			}
		}
		assert.Equal(t, seat.ReportedCentreCount, reported, "seat %s reported count disagrees with centres", seat.ID)
		assert.Equal(t, statusFor(reported, seat.TotalCentres), seat.Status)
	}
}

func TestSeedNotableCandidates(t *testing.T) {
	snap := New(DefaultSeed).Snapshot()

	// Seat 1 is NCP-dominated, so its first candidate slot carries the
	// notable NCP figure.
	cands := snap.CandidatesBySeat["seat-1"]
	require.NotEmpty(t, cands)
	assert.Equal(t, "Nahid Islam", cands[0].Name)
	assert.Equal(t, "party-1", cands[0].PartyID)

	ids := map[string]struct{}{}
	for _, cand := range snap.Candidates {
		_, dup := ids[cand.ID]
		require.False(t, dup, "duplicate candidate id %s", cand.ID)
		ids[cand.ID] = struct{}{}
	}
}

func TestSeedAuditLog(t *testing.T) {
	snap := New(DefaultSeed).Snapshot()

	require.Len(t, snap.AuditLogs, 50)
	for i, entry := range snap.AuditLogs {
		assert.Equal(t, AuditActions[i%len(AuditActions)], entry.Action)
		assert.NotEmpty(t, entry.Detail)
		assert.NotEmpty(t, entry.Timestamp)
		if i > 0 {
			assert.GreaterOrEqual(t, entry.Timestamp, snap.AuditLogs[i-1].Timestamp)
		}
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusNotStarted, statusFor(0, 5))
	assert.Equal(t, StatusInProgress, statusFor(1, 5))
	assert.Equal(t, StatusInProgress, statusFor(4, 5))
	assert.Equal(t, StatusCompleted, statusFor(5, 5))
}

func fixtureStore() *Store {
	seats := []Seat{
		{ID: "seat-1", Name: "Dhaka-1", SeatNumber: 1, DivisionID: "div-1", DistrictID: "dist-1", TotalCentres: 2},
		{ID: "seat-2", Name: "Dhaka-2", SeatNumber: 2, DivisionID: "div-1", DistrictID: "dist-1", TotalCentres: 1},
	}
	for i := range seats {
		seats[i].Status = statusFor(seats[i].ReportedCentreCount, seats[i].TotalCentres)
	}
	candidates := []Candidate{
		{ID: "cand-1-1", Name: "A", PartyID: "party-1", SeatID: "seat-1"},
		{ID: "cand-1-2", Name: "B", PartyID: "party-2", SeatID: "seat-1"},
		{ID: "cand-2-1", Name: "C", PartyID: "party-2", SeatID: "seat-2"},
		{ID: "cand-2-2", Name: "D", PartyID: "party-4", SeatID: "seat-2"},
	}
	centres := []Centre{
		{ID: "centre-1", Name: "Dhaka-1 Central School", SeatID: "seat-1", RegisteredVoters: 1000},
		{ID: "centre-2", Name: "Dhaka-1 North College", SeatID: "seat-1", RegisteredVoters: 800},
		{ID: "centre-3", Name: "Dhaka-2 Model School", SeatID: "seat-2", RegisteredVoters: 600},
	}
	return NewFromData(seats, candidates, centres, nil)
}

func TestApplyCentreResults(t *testing.T) {
	s := fixtureStore()

	subs := []CentreSubmission{{
		CentreID: "centre-1",
		Results: []VoteResult{
			{CandidateID: "cand-1-1", Votes: 400},
			{CandidateID: "cand-1-2", Votes: 300},
		},
	}}
	entryFor := func(centre Centre, seat Seat) AuditEntry {
		return AuditEntry{
			ID:     fmt.Sprintf("log-%s", centre.ID),
			Action: ActionCentreResultSubmitted,
			SeatID: centre.SeatID,
			Detail: fmt.Sprintf("Results for %s in %s", centre.Name, seat.Name),
		}
	}

	updates, err := s.ApplyCentreResults(subs, entryFor)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "centre-1", updates[0].CentreID)
	assert.Equal(t, "Dhaka-1", updates[0].SeatName)
	assert.Equal(t, 700, updates[0].TotalVotesAdded)

	snap := s.Snapshot()
	assert.True(t, snap.Centres[0].IsReported)
	assert.Equal(t, 400, snap.CandidateByID["cand-1-1"].TotalVotes)
	assert.Equal(t, 300, snap.CandidateByID["cand-1-2"].TotalVotes)
	assert.Equal(t, 1, snap.SeatByID["seat-1"].ReportedCentreCount)
	assert.Equal(t, StatusInProgress, snap.SeatByID["seat-1"].Status)
	require.Len(t, snap.AuditLogs, 1)
	assert.Equal(t, "log-centre-1", snap.AuditLogs[0].ID)

	// A centre reports at most once.
	_, err = s.ApplyCentreResults(subs, entryFor)
	assert.ErrorIs(t, err, ErrCentreAlreadyReported)

	_, err = s.ApplyCentreResults([]CentreSubmission{{CentreID: "centre-99"}}, entryFor)
	assert.ErrorIs(t, err, ErrCentreNotFound)
}

func TestApplyCentreResultsClampsToRegistration(t *testing.T) {
	s := fixtureStore()

	updates, err := s.ApplyCentreResults([]CentreSubmission{{
		CentreID: "centre-3",
		Results: []VoteResult{
			{CandidateID: "cand-2-1", Votes: 500},
			{CandidateID: "cand-2-2", Votes: 500},
		},
	}}, nil)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, 600, updates[0].TotalVotesAdded)

	snap := s.Snapshot()
	assert.Equal(t, 500, snap.CandidateByID["cand-2-1"].TotalVotes)
	assert.Equal(t, 100, snap.CandidateByID["cand-2-2"].TotalVotes)
	assert.Equal(t, StatusCompleted, snap.SeatByID["seat-2"].Status)
}

func TestApplyCentreResultsCompletesSeat(t *testing.T) {
	s := fixtureStore()

	for _, centreID := range []string{"centre-1", "centre-2"} {
		_, err := s.ApplyCentreResults([]CentreSubmission{{
			CentreID: centreID,
			Results:  []VoteResult{{CandidateID: "cand-1-1", Votes: 10}},
		}}, nil)
		require.NoError(t, err)
	}

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.SeatByID["seat-1"].ReportedCentreCount)
	assert.Equal(t, StatusCompleted, snap.SeatByID["seat-1"].Status)
}

func TestSnapshotIsolation(t *testing.T) {
	s := fixtureStore()

	snap := s.Snapshot()
	snap.Seats[0].ReportedCentreCount = 99
	snap.Centres[0].IsReported = true

	fresh := s.Snapshot()
	assert.Equal(t, 0, fresh.Seats[0].ReportedCentreCount)
	assert.False(t, fresh.Centres[0].IsReported)
}

func TestUnreportedCentres(t *testing.T) {
	s := fixtureStore()
	assert.Len(t, s.UnreportedCentres(), 3)

	_, err := s.ApplyCentreResults([]CentreSubmission{{
		CentreID: "centre-2",
		Results:  []VoteResult{{CandidateID: "cand-1-1", Votes: 1}},
	}}, nil)
	require.NoError(t, err)

	remaining := s.UnreportedCentres()
	assert.Len(t, remaining, 2)
	for _, c := range remaining {
		assert.NotEqual(t, "centre-2", c.ID)
	}
}
