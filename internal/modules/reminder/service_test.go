package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"traveldesk/internal/domain"
	"traveldesk/internal/repository"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyTaskOverdue(ctx context.Context, lead *domain.Lead, task domain.Task) error {
	args := m.Called(ctx, lead, task)
	return args.Error(0)
}

var sweepNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func seedRepo(t *testing.T) *repository.LeadRepository {
	t.Helper()
	repo := repository.NewLeadRepository()
	lead := &domain.Lead{
		ID:         "lead-1",
		ClientName: "Aisha",
		Status:     domain.StageQuoting,
		Tasks: []domain.Task{
			{ID: "overdue", Description: "Send quote", DueDate: sweepNow.Add(-2 * time.Hour)},
			{ID: "future", Description: "Confirm hotel", DueDate: sweepNow.Add(48 * time.Hour)},
			{ID: "done", Description: "Intro call", DueDate: sweepNow.Add(-24 * time.Hour), IsCompleted: true},
		},
		UpdatedAt: sweepNow.Add(-time.Hour),
	}
	assert.NoError(t, repo.Create(context.Background(), lead))
	return repo
}

func TestSweep_NotifiesOnlyOverdueIncomplete(t *testing.T) {
	repo := seedRepo(t)
	notifier := new(mockNotifier)
	notifier.On("NotifyTaskOverdue", mock.Anything, mock.Anything, mock.MatchedBy(func(task domain.Task) bool {
		return task.ID == "overdue"
	})).Return(nil).Once()

	svc := NewService(repo, notifier, fixedClock{t: sweepNow})
	sent, err := svc.Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	notifier.AssertExpectations(t)
}

func TestSweep_DedupAcrossSweeps(t *testing.T) {
	repo := seedRepo(t)
	notifier := new(mockNotifier)
	notifier.On("NotifyTaskOverdue", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(repo, notifier, fixedClock{t: sweepNow})

	sent, err := svc.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = svc.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, sent)
	notifier.AssertExpectations(t)
}

func TestSweep_FailedNotificationRetriesNextSweep(t *testing.T) {
	repo := seedRepo(t)
	notifier := new(mockNotifier)
	notifier.On("NotifyTaskOverdue", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel down")).Once()
	notifier.On("NotifyTaskOverdue", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	svc := NewService(repo, notifier, fixedClock{t: sweepNow})

	sent, err := svc.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, sent)

	sent, err = svc.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	notifier.AssertExpectations(t)
}

func TestSweep_DoesNotMutateLeads(t *testing.T) {
	repo := seedRepo(t)
	notifier := new(mockNotifier)
	notifier.On("NotifyTaskOverdue", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, notifier, fixedClock{t: sweepNow})
	_, err := svc.Sweep(context.Background())
	assert.NoError(t, err)

	// A reminder must not bump UpdatedAt: that would reset the
	// staleness component of the priority score.
	stored, _ := repo.GetByID(context.Background(), "lead-1")
	assert.Equal(t, sweepNow.Add(-time.Hour), stored.UpdatedAt)
}

func TestStart_InvalidSpec(t *testing.T) {
	svc := NewService(repository.NewLeadRepository(), new(mockNotifier), nil)

	err := svc.Start("not a cron spec")

	assert.Error(t, err)
}
