package store

import (
	"fmt"
	"sync"
	"time"
)

// Store owns all mutable election state. Reads go through Snapshot, which
// copies under a shared lock; the only mutations are batch centre-result
// application and audit appends, both taken under the exclusive lock, so a
// reader observes either the pre-tick or post-tick state, never a partial
// tick.
type Store struct {
	mu sync.RWMutex

	divisions  []Division
	districts  []District
	parties    []Party
	admins     []Admin
	seats      []Seat
	candidates []Candidate
	centres    []Centre
	auditLogs  []AuditEntry

	// Index maps, rebuilt on mutation so aggregation never scans.
	seatIndex      map[string]int
	candidateIndex map[string]int
	centreIndex    map[string]int
}

// New builds a fully-populated store from the given seed.
func New(seed int64) *Store {
	src := NewLCG(seed)
	seats, candidates, centres := buildWorld(src)

	s := &Store{
		divisions:  append([]Division(nil), divisionTable...),
		districts:  append([]District(nil), districtTable...),
		parties:    append([]Party(nil), partyTable...),
		admins:     append([]Admin(nil), adminTable...),
		seats:      seats,
		candidates: candidates,
		centres:    centres,
		auditLogs:  seedAuditLog(),
	}
	s.reindex()
	return s
}

// NewFromData builds a store from explicit collections. Used by tests to
// construct small fixtures; referential integrity is the caller's problem.
func NewFromData(seats []Seat, candidates []Candidate, centres []Centre, auditLogs []AuditEntry) *Store {
	s := &Store{
		divisions:  append([]Division(nil), divisionTable...),
		districts:  append([]District(nil), districtTable...),
		parties:    append([]Party(nil), partyTable...),
		admins:     append([]Admin(nil), adminTable...),
		seats:      seats,
		candidates: candidates,
		centres:    centres,
		auditLogs:  auditLogs,
	}
	s.reindex()
	return s
}

func (s *Store) reindex() {
	s.seatIndex = make(map[string]int, len(s.seats))
	for i, seat := range s.seats {
		s.seatIndex[seat.ID] = i
	}
	s.candidateIndex = make(map[string]int, len(s.candidates))
	for i, c := range s.candidates {
		s.candidateIndex[c.ID] = i
	}
	s.centreIndex = make(map[string]int, len(s.centres))
	for i, c := range s.centres {
		s.centreIndex[c.ID] = i
	}
}

// Snapshot is a consistent, read-only copy of store state with its own
// lookup maps. Aggregation works exclusively on snapshots.
type Snapshot struct {
	Divisions  []Division
	Districts  []District
	Parties    []Party
	Admins     []Admin
	Seats      []Seat
	Candidates []Candidate
	Centres    []Centre
	AuditLogs  []AuditEntry

	PartyByID        map[string]Party
	SeatByID         map[string]Seat
	CandidateByID    map[string]Candidate
	DivisionByID     map[string]Division
	DistrictByID     map[string]District
	CandidatesBySeat map[string][]Candidate
	CentresBySeat    map[string][]Centre
}

// Snapshot copies the current state under a shared lock.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Divisions:  append([]Division(nil), s.divisions...),
		Districts:  append([]District(nil), s.districts...),
		Parties:    append([]Party(nil), s.parties...),
		Admins:     append([]Admin(nil), s.admins...),
		Seats:      append([]Seat(nil), s.seats...),
		Candidates: append([]Candidate(nil), s.candidates...),
		Centres:    make([]Centre, len(s.centres)),
		AuditLogs:  append([]AuditEntry(nil), s.auditLogs...),
	}
	for i, c := range s.centres {
		c.Results = append([]VoteResult(nil), c.Results...)
		snap.Centres[i] = c
	}

	snap.PartyByID = make(map[string]Party, len(snap.Parties))
	for _, p := range snap.Parties {
		snap.PartyByID[p.ID] = p
	}
	snap.SeatByID = make(map[string]Seat, len(snap.Seats))
	for _, seat := range snap.Seats {
		snap.SeatByID[seat.ID] = seat
	}
	snap.CandidateByID = make(map[string]Candidate, len(snap.Candidates))
	snap.CandidatesBySeat = make(map[string][]Candidate)
	for _, c := range snap.Candidates {
		snap.CandidateByID[c.ID] = c
		snap.CandidatesBySeat[c.SeatID] = append(snap.CandidatesBySeat[c.SeatID], c)
	}
	snap.DivisionByID = make(map[string]Division, len(snap.Divisions))
	for _, d := range snap.Divisions {
		snap.DivisionByID[d.ID] = d
	}
	snap.DistrictByID = make(map[string]District, len(snap.Districts))
	for _, d := range snap.Districts {
		snap.DistrictByID[d.ID] = d
	}
	snap.CentresBySeat = make(map[string][]Centre)
	for _, c := range snap.Centres {
		snap.CentresBySeat[c.SeatID] = append(snap.CentresBySeat[c.SeatID], c)
	}

	return snap
}

// SeatOrdinal returns a seat's position in the static seat-definition
// table, which keys the dominant-party lookup. Seats are stored in
// definition order.
func (s *Store) SeatOrdinal(seatID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.seatIndex[seatID]
	return i, ok
}

// CentreSubmission is one centre's final result set to be applied.
type CentreSubmission struct {
	CentreID string
	Results  []VoteResult
}

// CentreUpdate summarises the effect of one applied submission.
type CentreUpdate struct {
	CentreID        string       `json:"centreId"`
	CentreName      string       `json:"centreName"`
	SeatID          string       `json:"seatId"`
	SeatName        string       `json:"seatName"`
	TotalVotesAdded int          `json:"totalVotesAdded"`
	Results         []VoteResult `json:"results"`
}

// ApplyCentreResults applies a batch of centre submissions as one atomic
// unit: each centre is marked reported with its results attached, candidate
// totals accumulate, the owning seat's reported count advances and its
// status is recomputed, and one audit entry per centre is appended. A
// missing or already-reported centre aborts the batch with the updates
// applied so far; vote sums are clamped to the centre's registered voters.
func (s *Store) ApplyCentreResults(subs []CentreSubmission, entryFor func(centre Centre, seat Seat) AuditEntry) ([]CentreUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updates := make([]CentreUpdate, 0, len(subs))
	for _, sub := range subs {
		ci, ok := s.centreIndex[sub.CentreID]
		if !ok {
			return updates, fmt.Errorf("%w: %s", ErrCentreNotFound, sub.CentreID)
		}
		centre := &s.centres[ci]
		if centre.IsReported {
			return updates, fmt.Errorf("%w: %s", ErrCentreAlreadyReported, sub.CentreID)
		}

		// Clamp the batch so reported votes never exceed registration.
		results := append([]VoteResult(nil), sub.Results...)
		total := 0
		for k := range results {
			if results[k].Votes < 0 {
				results[k].Votes = 0
			}
			if total+results[k].Votes > centre.RegisteredVoters {
				results[k].Votes = centre.RegisteredVoters - total
			}
			total += results[k].Votes
		}

		centre.IsReported = true
		centre.Results = results

		for _, r := range results {
			if idx, ok := s.candidateIndex[r.CandidateID]; ok {
				s.candidates[idx].TotalVotes += r.Votes
			}
		}

		var seat Seat
		if si, ok := s.seatIndex[centre.SeatID]; ok {
			s.seats[si].ReportedCentreCount++
			s.seats[si].Status = statusFor(s.seats[si].ReportedCentreCount, s.seats[si].TotalCentres)
			seat = s.seats[si]
		}

		if entryFor != nil {
			s.auditLogs = append(s.auditLogs, entryFor(*centre, seat))
		}

		updates = append(updates, CentreUpdate{
			CentreID:        centre.ID,
			CentreName:      centre.Name,
			SeatID:          centre.SeatID,
			SeatName:        seat.Name,
			TotalVotesAdded: total,
			Results:         append([]VoteResult(nil), results...),
		})
	}

	return updates, nil
}

// AppendAudit appends a single audit entry.
func (s *Store) AppendAudit(entry AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLogs = append(s.auditLogs, entry)
}

// UnreportedCentres returns copies of every centre that has not yet
// reported.
func (s *Store) UnreportedCentres() []Centre {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Centre
	for _, c := range s.centres {
		if !c.IsReported {
			out = append(out, c)
		}
	}
	return out
}

// CandidatesForSeat returns copies of a seat's candidates in seed order.
func (s *Store) CandidatesForSeat(seatID string) []Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Candidate
	for _, c := range s.candidates {
		if c.SeatID == seatID {
			out = append(out, c)
		}
	}
	return out
}

// Now returns the current time formatted the way audit timestamps are
// stored.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
