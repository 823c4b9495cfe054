package ports

import "context"

// NotificationKind identifies the event that triggered a notification.
type NotificationKind string

const (
	NotifyAssigned  NotificationKind = "assigned"
	NotifyCompleted NotificationKind = "completed"
	NotifyOverdue   NotificationKind = "overdue"
)

// Notification is a message to a single recipient about a request.
type Notification struct {
	Kind        NotificationKind
	RequestID   string
	RecipientID string
	Subject     string
}

// Notifier delivers a notification. Failures are logged by the caller and
// never affect the mutation that triggered them.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationDispatcher accepts notifications for asynchronous delivery.
type NotificationDispatcher interface {
	Enqueue(n Notification)
}
