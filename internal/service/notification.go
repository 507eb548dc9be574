package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zipabout/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationRentalCompleted NotificationType = "RENTAL_COMPLETED"
)

// rentalTimeLayout is the display layout for rental timestamps.
const rentalTimeLayout = "2006-01-02 15:04"

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]any
	CreatedAt   time.Time
}

// Notifier delivers notifications.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}

// LogNotifier delivers notifications by logging them.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Send logs the notification.
func (n *LogNotifier) Send(ctx context.Context, notification Notification) error {
	n.logger.InfoContext(ctx, "notification",
		slog.String("type", string(notification.Type)),
		slog.String("recipient", notification.RecipientID),
		slog.String("title", notification.Title),
		slog.String("message", notification.Message),
	)
	return nil
}

// NotificationObserver tells the user their rental has been completed.
type NotificationObserver struct {
	notifier Notifier
}

// NewNotificationObserver creates a NotificationObserver.
func NewNotificationObserver(notifier Notifier) *NotificationObserver {
	return &NotificationObserver{notifier: notifier}
}

// OnRentalCompleted implements RentalObserver.
func (o *NotificationObserver) OnRentalCompleted(ctx context.Context, rental domain.Rental) error {
	return o.notifier.Send(ctx, Notification{
		Type:        NotificationRentalCompleted,
		RecipientID: rental.UserID,
		Title:       "Rental Completed",
		Message:     CompletionMessage(rental),
		Data: map[string]any{
			"rental_id":  rental.ID,
			"vehicle_id": rental.VehicleID,
			"ended_at":   rental.EndTime,
		},
		CreatedAt: rental.EndTime,
	})
}

// CompletionMessage formats the completion message for a rental.
func CompletionMessage(rental domain.Rental) string {
	endTime := "now"
	if !rental.EndTime.IsZero() {
		endTime = rental.EndTime.Format(rentalTimeLayout)
	}
	return fmt.Sprintf("Dear %s, your rental %s of %s: %s has been completed at %s.",
		rental.UserName, rental.ID, rental.VehicleType(), rental.Vehicle.Model, endTime)
}
