package store

import (
	"fmt"
	"time"
)

// Seed generation. A single deterministic stream drives every random
// decision in a fixed call order, so two stores built from the same seed
// are identical.

const (
	// DefaultSeed is the generator seed used unless configured otherwise.
	DefaultSeed = 42

	seededAuditEntries = 50
	auditWindowMinutes = 480 // entries spread over 8 hours
)

// auditSeedBase is the synthetic instant the seeded audit window starts at.
var auditSeedBase = time.Date(2026, 2, 4, 8, 0, 0, 0, time.UTC)

type seeder struct {
	src         Source
	usedNames   map[string]struct{}
	nameCounter int
}

func (g *seeder) candidateName() string {
	for attempts := 0; attempts < 100; attempts++ {
		isFemale := g.src.Float64() < 0.2
		var name string
		if isFemale {
			name = pick(g.src, femaleFirstNames) + " " + pick(g.src, femaleLastNames)
		} else {
			name = pick(g.src, firstNames) + " " + pick(g.src, lastNames)
		}
		if _, taken := g.usedNames[name]; !taken {
			g.usedNames[name] = struct{}{}
			return name
		}
	}
	// Fallback: append a suffix to guarantee uniqueness
	g.nameCounter++
	base := pick(g.src, firstNames) + " " + pick(g.src, lastNames)
	unique := fmt.Sprintf("%s %d", base, g.nameCounter)
	g.usedNames[unique] = struct{}{}
	return unique
}

// buildWorld generates the full initial dataset from the seeded stream.
func buildWorld(src Source) (seats []Seat, candidates []Candidate, centres []Centre) {
	g := &seeder{src: src, usedNames: make(map[string]struct{})}

	// Shuffle completion tiers deterministically before any seat is built.
	tiers := completionTiers()
	shuffle(src, len(tiers), func(i, j int) {
		tiers[i], tiers[j] = tiers[j], tiers[i]
	})

	centreSeq := 0
	for si, def := range seatDefs {
		seatID := fmt.Sprintf("seat-%d", si+1)
		totalCentres := randInt(src, 4, 7)
		reported := roundHalf(float64(totalCentres) * tiers[si])

		seats = append(seats, Seat{
			ID:                  seatID,
			Name:                def.name,
			SeatNumber:          def.seatNumber,
			DivisionID:          def.divisionID,
			DistrictID:          def.districtID,
			TotalCentres:        totalCentres,
			ReportedCentreCount: reported,
			Status:              statusFor(reported, totalCentres),
		})

		// Candidates: slot 0 is the configured dominant party, slot 1 its
		// rival, remaining slots a shuffled sample of the other parties.
		candidateCount := randInt(src, 3, 6)
		dominantID := DominantParty(si)
		rivalID := RivalParty(dominantID)

		seatPartyIDs := []string{dominantID, rivalID}
		var remaining []string
		for _, p := range partyTable {
			if p.ID != dominantID && p.ID != rivalID {
				remaining = append(remaining, p.ID)
			}
		}
		shuffle(src, len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
		for k := 0; k < candidateCount-2 && k < len(remaining); k++ {
			seatPartyIDs = append(seatPartyIDs, remaining[k])
		}

		seatStart := len(candidates)
		for ci := 0; ci < candidateCount; ci++ {
			partyID := "party-10"
			if ci < len(seatPartyIDs) {
				partyID = seatPartyIDs[ci]
			}
			name, ok := findNotable(seatID, partyID)
			if !ok {
				name = g.candidateName()
			}
			candidates = append(candidates, Candidate{
				ID:      fmt.Sprintf("cand-%d-%d", si+1, ci+1),
				Name:    name,
				PartyID: partyID,
				SeatID:  seatID,
			})
		}
		seatCandidates := candidates[seatStart:]

		for ci := 0; ci < totalCentres; ci++ {
			centreSeq++
			registered := randInt(src, 500, 3000)
			isReported := ci < reported

			var results []VoteResult
			if isReported {
				turnout := float64(randInt(src, 55, 80)) / 100
				total := roundHalf(float64(registered) * turnout)
				results = distributeVotes(src, len(seatCandidates), total)
				for k := range results {
					results[k].CandidateID = seatCandidates[k].ID
					seatCandidates[k].TotalVotes += results[k].Votes
				}
			}

			centres = append(centres, Centre{
				ID:               fmt.Sprintf("centre-%d", centreSeq),
				Name:             centreName(def.name, ci),
				SeatID:           seatID,
				RegisteredVoters: registered,
				IsReported:       isReported,
				Results:          results,
			})
		}
	}

	return seats, candidates, centres
}

// distributeVotes splits a centre's total cast votes across n candidate
// slots: the leader takes 40-55%, the runner-up 25-35%, the last slot
// absorbs whatever remains, and middle slots split the rest with a random
// dampening factor. Every draw is clamped to non-negative and to the
// remaining pool, so the sum never exceeds total.
func distributeVotes(src Source, n, total int) []VoteResult {
	results := make([]VoteResult, n)
	remaining := total

	for k := 0; k < n; k++ {
		var votes int
		switch {
		case k == 0:
			votes = roundHalf(float64(total) * float64(randInt(src, 40, 55)) / 100)
		case k == 1:
			votes = roundHalf(float64(total) * float64(randInt(src, 25, 35)) / 100)
		case k == n-1:
			votes = remaining
		default:
			minorShare := float64(remaining) / float64(n-k)
			votes = roundHalf(minorShare * float64(randInt(src, 30, 100)) / 100)
		}
		if votes > remaining {
			votes = remaining
		}
		if votes < 0 {
			votes = 0
		}
		remaining -= votes
		results[k].Votes = votes
	}

	return results
}

// seedAuditLog produces the 50 synthetic audit entries, cycling through the
// action enumeration, alternating the two demo admins, and spreading the
// timestamps evenly across an 8-hour window.
func seedAuditLog() []AuditEntry {
	logs := make([]AuditEntry, 0, seededAuditEntries)
	totalSeats := len(seatDefs)

	for i := 0; i < seededAuditEntries; i++ {
		action := AuditActions[i%len(AuditActions)]
		admin := adminTable[i%2]
		seatName := seatDefs[i%totalSeats].name

		var detail string
		switch action {
		case ActionCentreResultSubmitted:
			detail = fmt.Sprintf("Submitted results for centre %d in %s", i+1, seatName)
		case ActionCentreResultUpdated:
			detail = fmt.Sprintf("Updated vote counts for centre %d in %s", i+1, seatName)
		case ActionSeatStatusChanged:
			detail = fmt.Sprintf("%s status changed to in_progress", seatName)
		case ActionUserLogin:
			detail = fmt.Sprintf("%s logged in", admin.Email)
		case ActionUserLogout:
			detail = fmt.Sprintf("%s logged out", admin.Email)
		case ActionDataExport:
			detail = fmt.Sprintf("Exported results for %s", seatName)
		case ActionResultVerified:
			detail = fmt.Sprintf("Verified results for centre %d in %s", i+1, seatName)
		case ActionResultCorrection:
			detail = fmt.Sprintf("Corrected vote tally for centre %d in %s", i+1, seatName)
		}

		offset := time.Duration(i*auditWindowMinutes/seededAuditEntries) * time.Minute
		logs = append(logs, AuditEntry{
			ID:         fmt.Sprintf("log-%d", i+1),
			Timestamp:  auditSeedBase.Add(offset).Format(time.RFC3339),
			Action:     action,
			AdminID:    admin.ID,
			AdminEmail: admin.Email,
			SeatID:     fmt.Sprintf("seat-%d", (i%totalSeats)+1),
			Detail:     detail,
		})
	}

	return logs
}
