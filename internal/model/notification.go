package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification delivery channels.
const (
	ChannelInApp = "inapp"
	ChannelEmail = "email"
)

// Notification delivery statuses.
const (
	StatusCreated = "created" // in-app record written, nothing to deliver
	StatusQueued  = "queued"  // handed to the delivery queue
	StatusSent    = "sent"    // channel confirmed delivery
	StatusFailed  = "failed"  // channel gave up after retries
)

// Notification represents one delivery attempt of an alert to a farmer over
// one channel. The engine only requests delivery; retry bookkeeping for the
// out-of-band channel belongs to the queue consumer.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	FarmerID  uuid.UUID `json:"farmer_id"`
	AlertID   uuid.UUID `json:"alert_id"`
	Channel   string    `json:"channel"` // ChannelInApp or ChannelEmail
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
