// Package simulation advances the election world on a recurring tick,
// reporting a few more centres each round until every centre has reported.
package simulation

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"election-board/internal/store"
	"election-board/pkg/logger"
)

// Centres picked per tick.
const (
	minCentresPerTick = 1
	maxCentresPerTick = 3
)

const (
	simulationAdminID    = "admin-1"
	simulationAdminEmail = "admin@demo.com"
)

// Engine runs the recurring tick against a store. Ticks can also be
// triggered manually while the loop is stopped.
type Engine struct {
	store     *store.Store
	src       store.Source
	interval  time.Duration
	isRunning bool
	stopChan  chan struct{}
	mutex     sync.RWMutex
	log       *logger.Logger
	onTick    func(updates []store.CentreUpdate)
}

// NewEngine creates a simulation engine. The randomness source decides
// which centres report and how their votes split; pass a seeded source for
// reproducible runs.
func NewEngine(s *store.Store, src store.Source, interval time.Duration, log *logger.Logger) *Engine {
	return &Engine{
		store:    s,
		src:      src,
		interval: interval,
		stopChan: make(chan struct{}),
		log:      log.WithComponent("simulation"),
	}
}

// SetTickCallback registers a function invoked after every tick that
// updated at least one centre.
func (e *Engine) SetTickCallback(onTick func(updates []store.CentreUpdate)) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.onTick = onTick
}

// Start begins the tick loop.
func (e *Engine) Start() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.isRunning {
		return fmt.Errorf("simulation engine is already running")
	}

	e.isRunning = true
	e.stopChan = make(chan struct{})
	go e.tickLoop()

	e.log.Info("Simulation engine started with interval: %v", e.interval)
	return nil
}

// Stop stops the tick loop. Manual ticks remain available.
func (e *Engine) Stop() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.isRunning {
		return
	}

	close(e.stopChan)
	e.isRunning = false

	e.log.Info("Simulation engine stopped")
}

// IsRunning reports whether the tick loop is active.
func (e *Engine) IsRunning() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.isRunning
}

// TickNow performs one tick immediately, regardless of the loop state.
func (e *Engine) TickNow() ([]store.CentreUpdate, error) {
	return e.performTick()
}

func (e *Engine) tickLoop() {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			updates, err := e.performTick()
			if err != nil {
				e.log.Error("Tick error: %v", err)
				continue
			}
			if len(updates) == 0 {
				e.log.Info("All centres reported, stopping simulation loop")
				e.Stop()
				return
			}

		case <-e.stopChan:
			return
		}
	}
}

// performTick picks 1-3 random unreported centres, generates a full result
// set for each, and applies the batch atomically. An empty slice means
// every centre has already reported.
func (e *Engine) performTick() ([]store.CentreUpdate, error) {
	unreported := e.store.UnreportedCentres()
	if len(unreported) == 0 {
		return []store.CentreUpdate{}, nil
	}

	pickCount := e.randInt(minCentresPerTick, maxCentresPerTick)
	if pickCount > len(unreported) {
		pickCount = len(unreported)
	}

	for i := len(unreported) - 1; i > 0; i-- {
		j := int(e.src.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		unreported[i], unreported[j] = unreported[j], unreported[i]
	}

	subs := make([]store.CentreSubmission, 0, pickCount)
	for _, centre := range unreported[:pickCount] {
		subs = append(subs, store.CentreSubmission{
			CentreID: centre.ID,
			Results:  e.centreResults(centre),
		})
	}

	updates, err := e.store.ApplyCentreResults(subs, func(centre store.Centre, seat store.Seat) store.AuditEntry {
		seatName := seat.Name
		if seatName == "" {
			seatName = centre.SeatID
		}
		return store.AuditEntry{
			ID:         fmt.Sprintf("log-sim-%s", uuid.NewString()),
			Timestamp:  store.Now(),
			Action:     store.ActionCentreResultSubmitted,
			AdminID:    simulationAdminID,
			AdminEmail: simulationAdminEmail,
			SeatID:     centre.SeatID,
			Detail:     fmt.Sprintf("Simulated results for %s in %s", centre.Name, seatName),
		}
	})
	if err != nil {
		return updates, fmt.Errorf("failed to apply tick results: %w", err)
	}

	e.log.SimulationLogger("tick", len(updates), fmt.Sprintf("%d centres remaining", len(unreported)-len(updates)))

	e.mutex.RLock()
	onTick := e.onTick
	e.mutex.RUnlock()
	if onTick != nil && len(updates) > 0 {
		onTick(updates)
	}

	return updates, nil
}

// centreResults generates one centre's result set: the seat's configured
// dominant party leads, its rival runs second, and the rest split what
// remains of a 55-80% turnout.
func (e *Engine) centreResults(centre store.Centre) []store.VoteResult {
	cands := e.store.CandidatesForSeat(centre.SeatID)

	ordinal, ok := e.store.SeatOrdinal(centre.SeatID)
	if !ok {
		ordinal = -1
	}
	dominantID := store.DominantParty(ordinal)
	rivalID := store.RivalParty(dominantID)

	sorted := make([]store.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.PartyID == dominantID {
			sorted = append(sorted, c)
		}
	}
	for _, c := range cands {
		if c.PartyID == rivalID {
			sorted = append(sorted, c)
		}
	}
	for _, c := range cands {
		if c.PartyID != dominantID && c.PartyID != rivalID {
			sorted = append(sorted, c)
		}
	}

	turnout := e.src.Float64()*0.25 + 0.55
	total := int(math.Round(float64(centre.RegisteredVoters) * turnout))

	results := make([]store.VoteResult, len(sorted))
	remaining := total
	for k := range sorted {
		var votes int
		switch {
		case k == 0:
			votes = int(math.Round(float64(total) * (e.src.Float64()*0.15 + 0.40)))
		case k == 1:
			votes = int(math.Round(float64(total) * (e.src.Float64()*0.10 + 0.25)))
		case k == len(sorted)-1:
			votes = remaining
		default:
			minorShare := float64(remaining) / float64(len(sorted)-k)
			votes = int(math.Round(minorShare * (e.src.Float64()*0.7 + 0.3)))
		}
		if votes > remaining {
			votes = remaining
		}
		if votes < 0 {
			votes = 0
		}
		remaining -= votes

		results[k] = store.VoteResult{CandidateID: sorted[k].ID, Votes: votes}
	}

	return results
}

func (e *Engine) randInt(min, max int) int {
	n := int(e.src.Float64()*float64(max-min+1)) + min
	if n > max {
		n = max
	}
	return n
}
