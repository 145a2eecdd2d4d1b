package reminder

import (
	"context"

	"traveldesk/internal/domain"
	"traveldesk/internal/pkg/logger"
)

// LogNotifier writes reminders to the process log. Stands in wherever
// no delivery channel is wired up.
type LogNotifier struct{}

func (LogNotifier) NotifyTaskOverdue(ctx context.Context, lead *domain.Lead, task domain.Task) error {
	logger.Warnf("overdue task for %s (%s): %s, due %s",
		lead.ClientName, lead.Destination, task.Description, task.DueDate.Format("2006-01-02"))
	return nil
}
