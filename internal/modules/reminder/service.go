package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"traveldesk/internal/domain"
	"traveldesk/internal/pkg/logger"
)

// Notifier receives overdue-task nudges. The engine never renders
// notifications itself.
type Notifier interface {
	NotifyTaskOverdue(ctx context.Context, lead *domain.Lead, task domain.Task) error
}

// LeadLister is the slice of the repository the sweeper needs.
type LeadLister interface {
	List(ctx context.Context) ([]*domain.Lead, error)
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Service periodically scans the pipeline for incomplete tasks past
// their due date. Sweeps never mutate leads: a reminder must not bump
// UpdatedAt, or it would reset the very staleness signal the priority
// score is built on.
type Service struct {
	leads    LeadLister
	notifier Notifier
	clock    Clock
	cron     *cron.Cron

	mu       sync.Mutex
	notified map[string]struct{} // leadID+"/"+taskID, per process run
}

func NewService(leads LeadLister, notifier Notifier, clock Clock) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &Service{
		leads:    leads,
		notifier: notifier,
		clock:    clock,
		notified: make(map[string]struct{}),
	}
}

// Start schedules recurring sweeps. spec is a cron expression,
// e.g. "@every 1h".
func (s *Service) Start(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if _, err := s.Sweep(context.Background()); err != nil {
			logger.Errorf("reminder sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep notifies once per overdue task and returns how many
// notifications went out. A failed notification is retried on the next
// sweep.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	sent := 0
	for _, lead := range leads {
		for _, task := range lead.Tasks {
			if !task.IsOverdue(now) {
				continue
			}
			key := lead.ID + "/" + task.ID
			if s.alreadyNotified(key) {
				continue
			}
			if err := s.notifier.NotifyTaskOverdue(ctx, lead, task); err != nil {
				logger.Errorf("notify overdue task %s: %v", key, err)
				continue
			}
			s.markNotified(key)
			sent++
		}
	}
	return sent, nil
}

func (s *Service) alreadyNotified(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.notified[key]
	return ok
}

func (s *Service) markNotified(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified[key] = struct{}{}
}
