package query

import (
	"sort"
	"strings"

	"election-board/internal/store"
)

// AuditLogFilters narrows the audit trail. Action, AdminID and SeatID are
// exact matches; SearchQuery is a case-insensitive substring match on the
// detail text and admin email.
type AuditLogFilters struct {
	Action      string
	AdminID     string
	SeatID      string
	SearchQuery string
	Page        int
	Limit       int
}

// AuditLogPage is a filtered, paginated slice of the audit trail, newest
// entries first.
type AuditLogPage struct {
	Logs       []store.AuditEntry `json:"logs"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
}

// AuditLogs returns the audit trail filtered, sorted newest first, and
// paginated with the same normalization as the seat listing.
func (e *Engine) AuditLogs(filters AuditLogFilters) AuditLogPage {
	snap := e.store.Snapshot()

	q := strings.ToLower(filters.SearchQuery)
	filtered := make([]store.AuditEntry, 0, len(snap.AuditLogs))
	for _, entry := range snap.AuditLogs {
		if filters.Action != "" && entry.Action != filters.Action {
			continue
		}
		if filters.AdminID != "" && entry.AdminID != filters.AdminID {
			continue
		}
		if filters.SeatID != "" && entry.SeatID != filters.SeatID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(entry.Detail), q) &&
			!strings.Contains(strings.ToLower(entry.AdminEmail), q) {
			continue
		}
		filtered = append(filtered, entry)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp > filtered[j].Timestamp
	})

	pg := paginate(len(filtered), filters.Page, filters.Limit)
	return AuditLogPage{
		Logs:       filtered[pg.start:pg.end],
		Total:      pg.total,
		Page:       pg.page,
		TotalPages: pg.totalPages,
	}
}
