package ports

import (
	"context"
)

// NotificationKind labels the notification for routing and templating on
// the consumer side.
type NotificationKind string

const (
	NotificationRegistrationApproved NotificationKind = "REGISTRATION_APPROVED"
	NotificationRegistrationRejected NotificationKind = "REGISTRATION_REJECTED"
	NotificationWithdrawalReceived   NotificationKind = "WITHDRAWAL_RECEIVED"
	NotificationWithdrawalApproved   NotificationKind = "WITHDRAWAL_APPROVED"
	NotificationWithdrawalRejected   NotificationKind = "WITHDRAWAL_REJECTED"
)

// Notification is a message to a restaurant contact about a lifecycle
// decision.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Recipient string           `json:"recipient"`
	Subject   string           `json:"subject"`
	Body      string           `json:"body"`
}

// Notifier delivers lifecycle notifications. Delivery is best effort: the
// decisions that trigger notifications must succeed even when the
// notification channel is down, so callers log failures and move on.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}
