package pipeline

import (
	"sort"

	"traveldesk/internal/domain"
)

// SortKey selects the table-view column to sort on.
type SortKey string

const (
	SortByClientName     SortKey = "client_name"
	SortByEstimatedValue SortKey = "estimated_value"
	SortByStatus         SortKey = "status"
	SortByUpdatedAt      SortKey = "updated_at"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState tracks the table header interaction: clicking the active
// key flips direction, clicking another key resets to descending.
type SortState struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

func (s *SortState) Toggle(key SortKey) {
	if s.Key == key {
		if s.Direction == SortAsc {
			s.Direction = SortDesc
		} else {
			s.Direction = SortAsc
		}
		return
	}
	s.Key = key
	s.Direction = SortDesc
}

// SortLeads returns a sorted copy of leads. Strings compare
// lexicographically, values numerically, timestamps chronologically.
// The sort is stable, so repeated calls are idempotent.
func SortLeads(leads []*domain.Lead, key SortKey, dir SortDirection) []*domain.Lead {
	out := append([]*domain.Lead(nil), leads...)

	less := func(a, b *domain.Lead) bool {
		switch key {
		case SortByClientName:
			return a.ClientName < b.ClientName
		case SortByEstimatedValue:
			return a.EstimatedValue < b.EstimatedValue
		case SortByStatus:
			return a.Status < b.Status
		case SortByUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return false
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
