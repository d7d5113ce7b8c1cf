package notification

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindRequestAssigned Kind = "request_assigned"
	KindResponseAdded   Kind = "response_added"
	KindRequestResolved Kind = "request_resolved"
)

// Notification is a per-user record of a request lifecycle event. Delivery
// channels are out of scope; this is the durable inbox entry only.
type Notification struct {
	id          uint
	recipientID string
	kind        Kind
	payload     map[string]any
	readAt      *time.Time
	createdAt   time.Time
}

func NewNotification(recipientID string, kind Kind, payload map[string]any) (*Notification, error) {
	if recipientID == "" {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if kind == "" {
		return nil, fmt.Errorf("notification kind is required")
	}

	return &Notification{
		recipientID: recipientID,
		kind:        kind,
		payload:     payload,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	recipientID string,
	kind Kind,
	payload map[string]any,
	readAt *time.Time,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:          id,
		recipientID: recipientID,
		kind:        kind,
		payload:     payload,
		readAt:      readAt,
		createdAt:   createdAt,
	}
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) RecipientID() string {
	return n.recipientID
}

func (n *Notification) Kind() Kind {
	return n.kind
}

func (n *Notification) Payload() map[string]any {
	return n.payload
}

func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) IsRead() bool {
	return n.readAt != nil
}

func (n *Notification) MarkRead() {
	if n.readAt == nil {
		now := time.Now().UTC()
		n.readAt = &now
	}
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}
