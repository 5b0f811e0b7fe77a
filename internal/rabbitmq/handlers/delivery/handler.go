// Package delivery handles consumed delivery requests: it sends the email
// and records the per-channel outcome on the notification record. Retry
// policy for the channel lives here, not in the dispatcher.
package delivery

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kisanmitra/weather-engine/internal/model"
	"github.com/kisanmitra/weather-engine/internal/rabbitmq/queue"
	"github.com/kisanmitra/weather-engine/internal/repository/inapp"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks

type emailSender interface {
	Send(to, subject, body string) error
}

type notificationStore interface {
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

type Handler struct {
	sender emailSender
	store  notificationStore
}

func NewHandler(sender emailSender, store notificationStore) *Handler {
	return &Handler{
		sender: sender,
		store:  store,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy) {
	zlog.Logger.Info().
		Str("notification_id", msg.NotificationID.String()).
		Str("severity", string(msg.Severity)).
		Msg("handling delivery request")

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.sender.Send(msg.To, msg.Title, msg.Message)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("notification_id", msg.NotificationID.String()).
			Msg("delivery failed, moving to DLQ")
		h.setStatus(ctx, msg.NotificationID, model.StatusFailed)
		return
	}

	zlog.Logger.Info().
		Str("notification_id", msg.NotificationID.String()).
		Msg("delivery sent")
	h.setStatus(ctx, msg.NotificationID, model.StatusSent)
}

func (h *Handler) setStatus(ctx context.Context, id uuid.UUID, status string) {
	if err := h.store.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, inapp.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("notification record not found")
			return
		}

		zlog.Logger.Error().Err(err).Msgf("failed to set status=%s for %s", status, id)
	}
}
