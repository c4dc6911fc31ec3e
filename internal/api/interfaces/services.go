package interfaces

import (
	"election-board/internal/query"
	"election-board/internal/simulation"
	"election-board/internal/store"
	"election-board/pkg/config"
	"election-board/pkg/logger"
)

// Broadcaster pushes tick updates to connected WebSocket clients.
type Broadcaster interface {
	Broadcast(messageType string, data interface{})
	ClientCount() int
}

// Services defines the interface for API services
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	GetStore() *store.Store
	GetQueryEngine() *query.Engine
	GetSimulation() *simulation.Engine
	GetBroadcaster() Broadcaster
}
