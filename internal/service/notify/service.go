// Package notify is the notification dispatcher: it turns a created alert
// into an in-app record and, for high and critical severities, an out-of-band
// delivery request. Channels are independent and best-effort; a failed email
// never rolls back the in-app record, and retries belong to the delivery
// workers, not this service.
package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kisanmitra/weather-engine/internal/model"
	"github.com/kisanmitra/weather-engine/internal/rabbitmq/queue"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notify/mock.go -package=mocks

type notificationRepository interface {
	Create(ctx context.Context, n model.Notification) (uuid.UUID, error)
}

type deliveryPublisher interface {
	Publish(msg queue.DeliveryMessage, strategy retry.Strategy) error
}

type Service struct {
	repo      notificationRepository
	publisher deliveryPublisher
	strategy  retry.Strategy
}

func NewService(repo notificationRepository, publisher deliveryPublisher, strategy retry.Strategy) *Service {
	return &Service{repo: repo, publisher: publisher, strategy: strategy}
}

// Dispatch records the alert for the farmer. The in-app record is always
// written; the email channel is attempted only for high/critical alerts with
// a deliverable address.
func (s *Service) Dispatch(ctx context.Context, farmer model.Farmer, alert model.Alert) {
	title := alertTitle(alert)

	inApp := model.Notification{
		FarmerID: farmer.ID,
		AlertID:  alert.ID,
		Channel:  model.ChannelInApp,
		Title:    title,
		Message:  alert.Message,
		Severity: alert.Severity,
		Status:   model.StatusCreated,
	}

	if _, err := s.repo.Create(ctx, inApp); err != nil {
		zlog.Logger.Error().Err(err).
			Str("farmer_id", farmer.ID.String()).
			Str("alert_id", alert.ID.String()).
			Msg("failed to create in-app notification")
	}

	if !alert.Severity.AtLeastHigh() {
		return
	}

	if farmer.Email == "" {
		zlog.Logger.Debug().
			Str("farmer_id", farmer.ID.String()).
			Msg("no contact address, skipping out-of-band delivery")
		return
	}

	record := model.Notification{
		FarmerID: farmer.ID,
		AlertID:  alert.ID,
		Channel:  model.ChannelEmail,
		Title:    title,
		Message:  alert.Message,
		Severity: alert.Severity,
		Status:   model.StatusQueued,
	}

	id, err := s.repo.Create(ctx, record)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("farmer_id", farmer.ID.String()).
			Str("alert_id", alert.ID.String()).
			Msg("failed to create email notification record")
		return
	}

	msg := queue.DeliveryMessage{
		NotificationID: id,
		FarmerID:       farmer.ID,
		AlertID:        alert.ID,
		To:             farmer.Email,
		Title:          title,
		Message:        alert.Message,
		Severity:       alert.Severity,
	}

	if err := s.publisher.Publish(msg, s.strategy); err != nil {
		zlog.Logger.Error().Err(err).
			Str("notification_id", id.String()).
			Msg("failed to publish delivery request")
	}
}

func alertTitle(alert model.Alert) string {
	return fmt.Sprintf("Weather alert: %s (%s)", alert.Condition, alert.Severity)
}
