package api

import (
	"election-board/internal/api/interfaces"
	"election-board/internal/query"
	"election-board/internal/simulation"
	"election-board/internal/store"
	"election-board/pkg/config"
	"election-board/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	Store       *store.Store
	QueryEngine *query.Engine
	Simulation  *simulation.Engine
	Broadcaster interfaces.Broadcaster
	Logger      *logger.Logger
	Config      *config.Config
}

// NewServices creates a new services container
func NewServices(
	st *store.Store,
	qe *query.Engine,
	sim *simulation.Engine,
	broadcaster interfaces.Broadcaster,
	log *logger.Logger,
	cfg *config.Config,
) *Services {
	return &Services{
		Store:       st,
		QueryEngine: qe,
		Simulation:  sim,
		Broadcaster: broadcaster,
		Logger:      log,
		Config:      cfg,
	}
}

// GetLogger returns the logger instance
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

// GetConfig returns the application configuration
func (s *Services) GetConfig() *config.Config {
	return s.Config
}

// GetStore returns the world state store
func (s *Services) GetStore() *store.Store {
	return s.Store
}

// GetQueryEngine returns the read-model query engine
func (s *Services) GetQueryEngine() *query.Engine {
	return s.QueryEngine
}

// GetSimulation returns the simulation engine
func (s *Services) GetSimulation() *simulation.Engine {
	return s.Simulation
}

// GetBroadcaster returns the WebSocket broadcaster
func (s *Services) GetBroadcaster() interfaces.Broadcaster {
	return s.Broadcaster
}
