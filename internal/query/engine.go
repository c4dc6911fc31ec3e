// Package query computes read-only derived views over the election store.
// Every operation snapshots the store once and never mutates it, so results
// reflect either the fully-applied previous tick or the next one, never a
// partial update. Missing lookups degrade to placeholder values instead of
// failing the whole view.
package query

import (
	"math"
	"sort"

	"election-board/internal/store"
)

// Placeholder values for unresolved references.
const (
	unknownName  = "Unknown"
	unknownAbbr  = "?"
	neutralColor = "#808080"
	noneColor    = "#CCCCCC"
	noneName     = "None"
)

// Engine answers read queries against a Store.
type Engine struct {
	store *store.Store
}

// New creates a query engine over the given store.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// percent returns v/total as a percentage rounded to two decimals, or 0
// when total is zero.
func percent(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(v/total*10000) / 100
}

// wholePercent returns v/total as a whole-number percentage, or 0 when
// total is zero.
func wholePercent(v, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(v) / float64(total) * 100))
}

// Page holds normalized pagination results.
type page struct {
	total      int
	page       int
	totalPages int
	start      int
	end        int
}

// paginate normalizes a requested page/limit against a result count: limit
// defaults to 10, totalPages is at least 1, and the requested page is
// clamped into [1, totalPages] rather than rejected.
func paginate(total, requestedPage, limit int) page {
	if limit < 1 {
		limit = 10
	}
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	p := requestedPage
	if p < 1 {
		p = 1
	}
	if p > totalPages {
		p = totalPages
	}
	start := (p - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return page{total: total, page: p, totalPages: totalPages, start: start, end: end}
}

// candidatesByVotes returns a seat's candidates sorted by total votes
// descending. Sorting is stable so seed order breaks ties.
func candidatesByVotes(snap *store.Snapshot, seatID string) []store.Candidate {
	cands := append([]store.Candidate(nil), snap.CandidatesBySeat[seatID]...)
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].TotalVotes > cands[j].TotalVotes
	})
	return cands
}

func sumVotes(cands []store.Candidate) int {
	total := 0
	for _, c := range cands {
		total += c.TotalVotes
	}
	return total
}
