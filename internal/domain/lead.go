package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage is a pipeline stage a lead occupies.
type Stage string

const (
	StageNew           Stage = "new"
	StageQualification Stage = "qualification"
	StageQuoting       Stage = "quoting"
	StageNegotiating   Stage = "negotiating"
	StageBooked        Stage = "booked"
	StageOperations    Stage = "operations"
)

// ValidStages lists the stages in pipeline order.
var ValidStages = []Stage{
	StageNew, StageQualification, StageQuoting,
	StageNegotiating, StageBooked, StageOperations,
}

func IsValidStage(s Stage) bool {
	for _, v := range ValidStages {
		if v == s {
			return true
		}
	}
	return false
}

// StageIndex returns the position of s in pipeline order, or -1.
func StageIndex(s Stage) int {
	for i, v := range ValidStages {
		if v == s {
			return i
		}
	}
	return -1
}

// Temperature is a coarse engagement-heat classification.
type Temperature string

const (
	TemperatureHot  Temperature = "hot"
	TemperatureWarm Temperature = "warm"
	TemperatureCold Temperature = "cold"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type ActivityType string

const (
	ActivityCall         ActivityType = "call"
	ActivityEmail        ActivityType = "email"
	ActivityMeeting      ActivityType = "meeting"
	ActivityNote         ActivityType = "note"
	ActivityStatusChange ActivityType = "status_change"
	ActivityPayment      ActivityType = "payment"
	ActivityReminder     ActivityType = "reminder"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// DateRange is an inclusive travel window, From <= To.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Task struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	DueDate     time.Time    `json:"due_date"`
	Priority    TaskPriority `json:"priority"`
	IsCompleted bool         `json:"is_completed"`
}

// IsOverdue reports whether an incomplete task's due date has passed.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.IsCompleted && !t.DueDate.IsZero() && t.DueDate.Before(now)
}

type ActivityLog struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
	Author    string       `json:"author"`
}

type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Payment struct {
	Total    decimal.Decimal `json:"total"`
	Paid     decimal.Decimal `json:"paid"`
	Currency string          `json:"currency"`
	Status   PaymentStatus   `json:"status"`
}

// Outstanding returns the unpaid remainder, never negative.
func (p Payment) Outstanding() decimal.Decimal {
	rest := p.Total.Sub(p.Paid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// Lead is a prospective client's travel inquiry tracked through the
// sales pipeline. AIScore is an externally supplied 0-100 quality
// signal; Payment.Paid <= Payment.Total is expected but not enforced.
type Lead struct {
	ID             string        `json:"id"`
	ClientName     string        `json:"client_name"`
	ClientEmail    string        `json:"client_email"`
	ClientPhone    string        `json:"client_phone"`
	Destination    string        `json:"destination"`
	Status         Stage         `json:"status"`
	Temperature    Temperature   `json:"temperature"`
	AIScore        int           `json:"ai_score"`
	EstimatedValue float64       `json:"estimated_value"`
	TravelerCount  int           `json:"traveler_count"`
	TravelDates    DateRange     `json:"travel_dates"`
	Tasks          []Task        `json:"tasks"`
	Activity       []ActivityLog `json:"activity"`
	Documents      []Document    `json:"documents"`
	Payment        Payment       `json:"payment"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// IsNew returns true if the lead has not left the entry stage.
func (l *Lead) IsNew() bool {
	return l.Status == StageNew
}

// HasOverdueTask reports whether any incomplete task is past due.
func (l *Lead) HasOverdueTask(now time.Time) bool {
	for _, t := range l.Tasks {
		if t.IsOverdue(now) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot alias stored state.
func (l *Lead) Clone() *Lead {
	cp := *l
	cp.Tasks = append([]Task(nil), l.Tasks...)
	cp.Activity = append([]ActivityLog(nil), l.Activity...)
	cp.Documents = append([]Document(nil), l.Documents...)
	return &cp
}
