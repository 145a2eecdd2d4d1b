package pipeline

import "traveldesk/internal/domain"

// StageColumn is one Kanban column. The column list is configuration
// supplied by the caller, not logic: dashboards may show a subset.
type StageColumn struct {
	Stage domain.Stage `json:"stage" validate:"required"`
	Title string       `json:"title" validate:"required"`
}

// StageGroup is one rendered column: the leads currently in the stage,
// in master-collection order.
type StageGroup struct {
	Stage domain.Stage   `json:"stage"`
	Title string         `json:"title"`
	Leads []*domain.Lead `json:"leads"`
}

// DefaultColumns returns the full pipeline in display order.
func DefaultColumns() []StageColumn {
	return []StageColumn{
		{Stage: domain.StageNew, Title: "New"},
		{Stage: domain.StageQualification, Title: "Qualification"},
		{Stage: domain.StageQuoting, Title: "Quoting"},
		{Stage: domain.StageNegotiating, Title: "Negotiating"},
		{Stage: domain.StageBooked, Title: "Booked"},
		{Stage: domain.StageOperations, Title: "Operations"},
	}
}
