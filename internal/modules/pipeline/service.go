package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"traveldesk/internal/domain"
	"traveldesk/internal/modules/scoring"
	"traveldesk/internal/pkg/logger"
	"traveldesk/internal/pkg/validator"
)

const defaultAuthor = "system"

// Service owns lead mutations and the derived board/table views.
// Every mutation bumps UpdatedAt through the injected clock; each
// mutation is a named method rather than a generic patch so its
// invariants hold by construction.
type Service struct {
	leads    LeadRepository
	scorer   *scoring.Service
	clock    Clock
	policy   TransitionPolicy
	currency string
}

func NewService(leads LeadRepository, scorer *scoring.Service, clock Clock, policy TransitionPolicy, currency string) *Service {
	if clock == nil {
		clock = scoring.SystemClock{}
	}
	if policy == nil {
		policy = PermitAll
	}
	if currency == "" {
		currency = "USD"
	}
	return &Service{
		leads:    leads,
		scorer:   scorer,
		clock:    clock,
		policy:   policy,
		currency: currency,
	}
}

// CreateLead enters a new lead at the top of the pipeline: status new,
// empty tasks and documents, a synthesized starter ai_score and exactly
// one creation entry in the activity log.
func (s *Service) CreateLead(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}
	if !req.TravelTo.IsZero() && req.TravelTo.Before(req.TravelFrom) {
		return nil, fmt.Errorf("%w: travel_to before travel_from", ErrValidation)
	}

	now := s.clock.Now()
	travelers := req.TravelerCount
	if travelers == 0 {
		travelers = 1
	}

	lead := &domain.Lead{
		ID:             uuid.NewString(),
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		Destination:    req.Destination,
		Status:         domain.StageNew,
		Temperature:    req.Temperature,
		AIScore:        scoring.StarterScore(req.Temperature, req.EstimatedValue),
		EstimatedValue: req.EstimatedValue,
		TravelerCount:  travelers,
		TravelDates:    domain.DateRange{From: req.TravelFrom, To: req.TravelTo},
		Tasks:          []domain.Task{},
		Activity: []domain.ActivityLog{{
			ID:        uuid.NewString(),
			Type:      domain.ActivityStatusChange,
			Content:   "Lead created",
			Timestamp: now,
			Author:    authorOr(req.Author),
		}},
		Documents: []domain.Document{},
		Payment: domain.Payment{
			Total:    decimal.Zero,
			Paid:     decimal.Zero,
			Currency: s.currency,
			Status:   domain.PaymentUnpaid,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// MoveLead applies a drag to a board column: set status, bump
// UpdatedAt. No activity entry is appended for a move; logging one is
// an explicit user action (LogActivity). An unknown target stage is
// rejected before anything is touched.
func (s *Service) MoveLead(ctx context.Context, leadID string, target domain.Stage) (*domain.Lead, error) {
	if !domain.IsValidStage(target) {
		return nil, ErrUnknownStage
	}

	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	if err := s.policy(lead.Status, target); err != nil {
		return nil, err
	}

	lead.Status = target
	lead.UpdatedAt = s.clock.Now()
	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *Service) AddTask(ctx context.Context, leadID string, req AddTaskRequest) (*domain.Lead, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	lead, err := s.getLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	lead.Tasks = append(lead.Tasks, domain.Task{
		ID:          uuid.NewString(),
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
	})
	return s.save(ctx, lead)
}

func (s *Service) ToggleTask(ctx context.Context, leadID, taskID string) (*domain.Lead, error) {
	lead, err := s.getLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lead.Tasks {
		if lead.Tasks[i].ID == taskID {
			lead.Tasks[i].IsCompleted = !lead.Tasks[i].IsCompleted
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTaskNotFound
	}
	return s.save(ctx, lead)
}

func (s *Service) LogActivity(ctx context.Context, leadID string, req LogActivityRequest) (*domain.Lead, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	lead, err := s.getLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.Activity = append(lead.Activity, domain.ActivityLog{
		ID:        uuid.NewString(),
		Type:      req.Type,
		Content:   req.Content,
		Timestamp: s.clock.Now(),
		Author:    authorOr(req.Author),
	})
	return s.save(ctx, lead)
}

// RecordPayment adds a received amount and recomputes the payment
// status. Paid exceeding Total is a data-quality condition, not an
// error: it is logged and the mutation still applies.
func (s *Service) RecordPayment(ctx context.Context, leadID string, amount decimal.Decimal) (*domain.Lead, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: negative payment amount", ErrValidation)
	}

	lead, err := s.getLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.Payment.Paid = lead.Payment.Paid.Add(amount)
	switch {
	case lead.Payment.Paid.IsZero():
		lead.Payment.Status = domain.PaymentUnpaid
	case lead.Payment.Total.IsPositive() && lead.Payment.Paid.GreaterThanOrEqual(lead.Payment.Total):
		lead.Payment.Status = domain.PaymentPaid
	default:
		lead.Payment.Status = domain.PaymentPartial
	}
	if lead.Payment.Paid.GreaterThan(lead.Payment.Total) {
		logger.Warnf("lead %s: paid %s exceeds total %s", lead.ID, lead.Payment.Paid, lead.Payment.Total)
	}

	lead.Activity = append(lead.Activity, domain.ActivityLog{
		ID:        uuid.NewString(),
		Type:      domain.ActivityPayment,
		Content:   fmt.Sprintf("Payment recorded: %s %s", amount, lead.Payment.Currency),
		Timestamp: s.clock.Now(),
		Author:    defaultAuthor,
	})
	return s.save(ctx, lead)
}

// SetQuote sets the quoted package total the payments are tracked
// against.
func (s *Service) SetQuote(ctx context.Context, leadID string, total decimal.Decimal) (*domain.Lead, error) {
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: negative quote total", ErrValidation)
	}

	lead, err := s.getLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.Payment.Total = total
	switch {
	case lead.Payment.Paid.IsZero():
		lead.Payment.Status = domain.PaymentUnpaid
	case total.IsPositive() && lead.Payment.Paid.GreaterThanOrEqual(total):
		lead.Payment.Status = domain.PaymentPaid
	default:
		lead.Payment.Status = domain.PaymentPartial
	}
	return s.save(ctx, lead)
}

func (s *Service) AttachDocument(ctx context.Context, leadID string, req AttachDocumentRequest) (*domain.Lead, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	lead, err := s.getLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.Documents = append(lead.Documents, domain.Document{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Type:       req.Type,
		URL:        req.URL,
		UploadedAt: s.clock.Now(),
	})
	return s.save(ctx, lead)
}

// GetLead returns a single lead by id.
func (s *Service) GetLead(ctx context.Context, leadID string) (*domain.Lead, error) {
	return s.getLead(ctx, leadID)
}

// Board groups the collection into the configured columns, in column
// order. Within a column, leads keep their master-collection order so
// cards do not reshuffle as a side effect of unrelated edits.
func (s *Service) Board(ctx context.Context, columns []StageColumn) ([]StageGroup, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := GroupByStage(leads, columns)
	out := make([]StageGroup, 0, len(columns))
	for _, col := range columns {
		out = append(out, StageGroup{
			Stage: col.Stage,
			Title: col.Title,
			Leads: grouped[col.Stage],
		})
	}
	return out, nil
}

// Timeline returns all leads ranked by priority score, highest first.
func (s *Service) Timeline(ctx context.Context) ([]*domain.Lead, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.scorer.Rank(leads), nil
}

// Table returns the flat list sorted for the table view.
func (s *Service) Table(ctx context.Context, key SortKey, dir SortDirection) ([]*domain.Lead, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortLeads(leads, key, dir), nil
}

// Stats returns lead counts per stage.
func (s *Service) Stats(ctx context.Context) (map[domain.Stage]int, error) {
	return s.leads.CountByStatus(ctx)
}

// GroupByStage partitions leads over the configured columns. Every
// configured stage gets a (possibly empty) group; leads in stages not
// configured are left out.
func GroupByStage(leads []*domain.Lead, columns []StageColumn) map[domain.Stage][]*domain.Lead {
	grouped := make(map[domain.Stage][]*domain.Lead, len(columns))
	for _, col := range columns {
		grouped[col.Stage] = []*domain.Lead{}
	}
	for _, lead := range leads {
		if _, ok := grouped[lead.Status]; ok {
			grouped[lead.Status] = append(grouped[lead.Status], lead)
		}
	}
	return grouped
}

func (s *Service) getLead(ctx context.Context, leadID string) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

func (s *Service) save(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	lead.UpdatedAt = s.clock.Now()
	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func authorOr(author string) string {
	if author == "" {
		return defaultAuthor
	}
	return author
}
