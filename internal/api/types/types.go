package types

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SystemStatus represents the current system status
type SystemStatus struct {
	ServerStatus      string `json:"server_status"`
	SimulationRunning bool   `json:"simulation_running"`
	TotalSeats        int    `json:"total_seats"`
	TotalCentres      int    `json:"total_centres"`
	CentresReported   int    `json:"centres_reported"`
}

// SimulationStatus represents the simulation engine state
type SimulationStatus struct {
	Running          bool   `json:"running"`
	Interval         string `json:"interval"`
	CentresRemaining int    `json:"centres_remaining"`
}

// TickResult represents the outcome of one simulation tick
type TickResult struct {
	CentresUpdated int         `json:"centres_updated"`
	Updates        interface{} `json:"updates"`
}
