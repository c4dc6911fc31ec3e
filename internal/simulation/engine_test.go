package simulation

import (
	"strings"
	"testing"
	"time"

	"election-board/internal/store"
	"election-board/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always draws the same value, pinning every random decision.
type constSource struct {
	v float64
}

func (s constSource) Float64() float64 { return s.v }

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "")
}

func fixtureStore() *store.Store {
	seats := []store.Seat{
		{ID: "seat-1", Name: "Dhaka-1", SeatNumber: 1, DivisionID: "div-1", DistrictID: "dist-1", TotalCentres: 2, Status: store.StatusNotStarted},
		{ID: "seat-2", Name: "Dhaka-2", SeatNumber: 2, DivisionID: "div-1", DistrictID: "dist-1", TotalCentres: 1, Status: store.StatusNotStarted},
	}
	candidates := []store.Candidate{
		{ID: "cand-1-1", Name: "A", PartyID: "party-1", SeatID: "seat-1"},
		{ID: "cand-1-2", Name: "B", PartyID: "party-2", SeatID: "seat-1"},
		{ID: "cand-1-3", Name: "C", PartyID: "party-4", SeatID: "seat-1"},
		{ID: "cand-2-1", Name: "D", PartyID: "party-2", SeatID: "seat-2"},
		{ID: "cand-2-2", Name: "E", PartyID: "party-4", SeatID: "seat-2"},
	}
	centres := []store.Centre{
		{ID: "centre-1", Name: "Dhaka-1 Central School", SeatID: "seat-1", RegisteredVoters: 1000},
		{ID: "centre-2", Name: "Dhaka-1 North College", SeatID: "seat-1", RegisteredVoters: 800},
		{ID: "centre-3", Name: "Dhaka-2 Model School", SeatID: "seat-2", RegisteredVoters: 600},
	}
	return store.NewFromData(seats, candidates, centres, nil)
}

func TestTickReportsCentres(t *testing.T) {
	st := fixtureStore()
	e := NewEngine(st, constSource{0}, time.Hour, testLogger())

	updates, err := e.TickNow()
	require.NoError(t, err)
	require.Len(t, updates, 1, "a zero draw picks exactly one centre")

	up := updates[0]
	assert.NotEmpty(t, up.CentreID)
	assert.NotEmpty(t, up.SeatName)

	sum := 0
	for _, r := range up.Results {
		assert.GreaterOrEqual(t, r.Votes, 0)
		sum += r.Votes
	}
	assert.Equal(t, up.TotalVotesAdded, sum)

	snap := st.Snapshot()
	centre := snap.Centres[0]
	found := false
	for _, c := range snap.Centres {
		if c.ID == up.CentreID {
			centre = c
			found = true
		}
	}
	require.True(t, found)
	assert.True(t, centre.IsReported)
	assert.LessOrEqual(t, sum, centre.RegisteredVoters)

	seat := snap.SeatByID[up.SeatID]
	assert.Equal(t, 1, seat.ReportedCentreCount)
	assert.NotEqual(t, store.StatusNotStarted, seat.Status)

	require.Len(t, snap.AuditLogs, 1)
	entry := snap.AuditLogs[0]
	assert.Equal(t, store.ActionCentreResultSubmitted, entry.Action)
	assert.Equal(t, "admin-1", entry.AdminID)
	assert.Equal(t, up.SeatID, entry.SeatID)
	assert.True(t, strings.HasPrefix(entry.Detail, "Simulated results for "), "detail %q", entry.Detail)
}

func TestTickTurnoutBounds(t *testing.T) {
	st := fixtureStore()
	e := NewEngine(st, store.NewLCG(99), time.Hour, testLogger())

	for {
		updates, err := e.TickNow()
		require.NoError(t, err)
		if len(updates) == 0 {
			break
		}
	}

	snap := st.Snapshot()
	for _, centre := range snap.Centres {
		require.True(t, centre.IsReported)
		total := 0
		for _, r := range centre.Results {
			total += r.Votes
		}
		// A two-candidate field only allocates the leader and runner-up
		// shares, so the floor is well below the 55% turnout draw.
		low := int(float64(centre.RegisteredVoters) * 0.30)
		high := int(float64(centre.RegisteredVoters)*0.80) + 1
		assert.GreaterOrEqual(t, total, low, "centre %s turnout too low", centre.ID)
		assert.LessOrEqual(t, total, high, "centre %s turnout too high", centre.ID)
	}
}

func TestTickExhaustion(t *testing.T) {
	st := fixtureStore()
	e := NewEngine(st, store.NewLCG(7), time.Hour, testLogger())

	ticks := 0
	for {
		updates, err := e.TickNow()
		require.NoError(t, err)
		if len(updates) == 0 {
			break
		}
		ticks++
		require.LessOrEqual(t, ticks, 3, "three centres can take at most three ticks")
	}

	assert.Empty(t, st.UnreportedCentres())

	// Terminal state: further ticks are empty and harmless.
	updates, err := e.TickNow()
	require.NoError(t, err)
	assert.Empty(t, updates)

	snap := st.Snapshot()
	for _, seat := range snap.Seats {
		assert.Equal(t, store.StatusCompleted, seat.Status)
	}
}

func TestTickDeterministicWithSeededSource(t *testing.T) {
	st1 := fixtureStore()
	st2 := fixtureStore()

	e1 := NewEngine(st1, store.NewLCG(42), time.Hour, testLogger())
	e2 := NewEngine(st2, store.NewLCG(42), time.Hour, testLogger())

	u1, err := e1.TickNow()
	require.NoError(t, err)
	u2, err := e2.TickNow()
	require.NoError(t, err)

	assert.Equal(t, u1, u2)
}

func TestTickCallback(t *testing.T) {
	st := fixtureStore()
	e := NewEngine(st, constSource{0}, time.Hour, testLogger())

	var got []store.CentreUpdate
	e.SetTickCallback(func(updates []store.CentreUpdate) {
		got = updates
	})

	updates, err := e.TickNow()
	require.NoError(t, err)
	assert.Equal(t, updates, got)
}

func TestStartStop(t *testing.T) {
	st := fixtureStore()
	e := NewEngine(st, constSource{0}, time.Hour, testLogger())

	assert.False(t, e.IsRunning())
	require.NoError(t, e.Start())
	assert.True(t, e.IsRunning())

	assert.Error(t, e.Start(), "double start must fail")

	e.Stop()
	assert.False(t, e.IsRunning())
	e.Stop() // idempotent

	require.NoError(t, e.Start())
	assert.True(t, e.IsRunning())
	e.Stop()
}
