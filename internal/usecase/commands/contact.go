package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidContact   = errs.New("invalid contact message")
	ErrContactCancelled = errs.New("contact submission cancelled")
)

type ContactReceipt struct {
	ID         uuid.UUID
	ReceivedAt time.Time
}

type ContactCommands interface {
	Submit(ctx context.Context, req reqdto.ContactRequest) (*ContactReceipt, error)
}

type contactCommandsImpl struct {
	deliveryDelay time.Duration
	clock         clock.Clock
}

func NewContactCommands(deliveryDelay time.Duration, clk clock.Clock) ContactCommands {
	return &contactCommandsImpl{
		deliveryDelay: deliveryDelay,
		clock:         clk,
	}
}

// Submit validates the message, waits for the delivery delay and records it
// in the log. Cancelling ctx during the wait aborts the submission.
func (c *contactCommandsImpl) Submit(ctx context.Context, req reqdto.ContactRequest) (*ContactReceipt, error) {
	msg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidContact)
	}

	if err := c.wait(ctx); err != nil {
		return nil, errs.Mark(err, ErrContactCancelled)
	}

	receipt := &ContactReceipt{
		ID:         uuid.New(),
		ReceivedAt: c.clock.Now(),
	}
	slog.InfoContext(ctx, "contact message received",
		"ack_id", receipt.ID.String(),
		"from", msg.Email(),
		"name", msg.FirstName()+" "+msg.LastName(),
		"subject", msg.Subject(),
		"length", len(msg.Body()),
	)
	return receipt, nil
}

func (c *contactCommandsImpl) wait(ctx context.Context) error {
	if c.deliveryDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.deliveryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
