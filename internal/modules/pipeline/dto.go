package pipeline

import (
	"time"

	"traveldesk/internal/domain"
)

// CreateLeadRequest carries manual lead entry. Temperature and traveler
// count are optional; a zero traveler count defaults to 1.
type CreateLeadRequest struct {
	ClientName     string             `json:"client_name" validate:"required"`
	ClientEmail    string             `json:"client_email" validate:"omitempty,email"`
	ClientPhone    string             `json:"client_phone"`
	Destination    string             `json:"destination" validate:"required"`
	Temperature    domain.Temperature `json:"temperature" validate:"omitempty,oneof=hot warm cold"`
	EstimatedValue float64            `json:"estimated_value" validate:"gte=0"`
	TravelerCount  int                `json:"traveler_count" validate:"gte=0"`
	TravelFrom     time.Time          `json:"travel_from"`
	TravelTo       time.Time          `json:"travel_to"`
	Author         string             `json:"author"`
}

type AddTaskRequest struct {
	Description string              `json:"description" validate:"required"`
	DueDate     time.Time           `json:"due_date"`
	Priority    domain.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type LogActivityRequest struct {
	Type    domain.ActivityType `json:"type" validate:"required,oneof=call email meeting note status_change payment reminder"`
	Content string              `json:"content" validate:"required"`
	Author  string              `json:"author"`
}

type AttachDocumentRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
	URL  string `json:"url" validate:"required"`
}
