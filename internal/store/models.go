package store

import "errors"

// SeatStatus describes how far a seat's centres have reported.
type SeatStatus string

const (
	StatusNotStarted SeatStatus = "not_started"
	StatusInProgress SeatStatus = "in_progress"
	StatusCompleted  SeatStatus = "completed"
)

// Audit log actions
const (
	ActionCentreResultSubmitted = "CENTRE_RESULT_SUBMITTED"
	ActionCentreResultUpdated   = "CENTRE_RESULT_UPDATED"
	ActionSeatStatusChanged     = "SEAT_STATUS_CHANGED"
	ActionUserLogin             = "USER_LOGIN"
	ActionUserLogout            = "USER_LOGOUT"
	ActionDataExport            = "DATA_EXPORT"
	ActionResultVerified        = "RESULT_VERIFIED"
	ActionResultCorrection      = "RESULT_CORRECTION"
)

// AuditActions lists every action in seeding order.
var AuditActions = []string{
	ActionCentreResultSubmitted,
	ActionCentreResultUpdated,
	ActionSeatStatusChanged,
	ActionUserLogin,
	ActionUserLogout,
	ActionDataExport,
	ActionResultVerified,
	ActionResultCorrection,
}

var (
	// ErrCentreNotFound is returned when a centre id resolves to nothing.
	ErrCentreNotFound = errors.New("centre not found")
	// ErrCentreAlreadyReported is returned when a reported centre is
	// submitted a second time. A centre reports at most once.
	ErrCentreAlreadyReported = errors.New("centre already reported")
)

// Division is one of the 8 administrative regions. Immutable after load.
type Division struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameBn string `json:"nameBn"`
}

// District belongs to exactly one Division. 64 total. Immutable after load.
type District struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NameBn     string `json:"nameBn"`
	DivisionID string `json:"divisionId"`
}

// Party is one of the 10 contesting parties. Immutable after load.
type Party struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Color        string `json:"color"`
}

// Seat is a single constituency contest. ReportedCentreCount and Status are
// the only fields mutated after seeding.
type Seat struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	SeatNumber          int        `json:"seatNumber"`
	DivisionID          string     `json:"divisionId"`
	DistrictID          string     `json:"districtId"`
	TotalCentres        int        `json:"totalCentres"`
	ReportedCentreCount int        `json:"reportedCentreCount"`
	Status              SeatStatus `json:"status"`
}

// Candidate contests one seat for one party. TotalVotes accumulates
// monotonically as centres report.
type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PartyID    string `json:"partyId"`
	SeatID     string `json:"seatId"`
	TotalVotes int    `json:"totalVotes"`
}

// VoteResult is one candidate's tally within a centre's reported results.
type VoteResult struct {
	CandidateID string `json:"candidateId"`
	Votes       int    `json:"votes"`
}

// Centre is a polling location. Once IsReported flips true its results are
// fixed.
type Centre struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	SeatID           string       `json:"seatId"`
	RegisteredVoters int          `json:"registeredVoters"`
	IsReported       bool         `json:"isReported"`
	Results          []VoteResult `json:"results"`
}

// Admin is a demo admin identity used by audit entries. No real
// authentication backs these.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuditEntry is an append-only audit log record. Timestamp is an RFC 3339
// string so entries of the same format order correctly under string
// comparison.
type AuditEntry struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	Action     string `json:"action"`
	AdminID    string `json:"adminId"`
	AdminEmail string `json:"adminEmail"`
	SeatID     string `json:"seatId"`
	Detail     string `json:"detail"`
}

// statusFor derives a seat's status from its reported and total centre
// counts.
func statusFor(reported, total int) SeatStatus {
	switch {
	case total > 0 && reported >= total:
		return StatusCompleted
	case reported > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}
