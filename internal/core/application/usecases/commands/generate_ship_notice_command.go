package commands

import (
	"errors"
	"strings"
	"time"

	"shipnotice/internal/core/domain/model/order"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

var (
	ErrGenerateShipNoticeCommandIsNotConstructed = errors.New(
		"GenerateShipNoticeCommand must be created via NewGenerateShipNoticeCommand constructor",
	)
)

// GenerateShipNoticeCommand represents a request to run the full pipeline for
// one order: cartonize, number the hierarchy, and encode the 856 document.
//
// issuedAt fixes the document timestamp and therefore the control number; a
// zero value defers to the handler's clock.
//
// Example:
//
//	cmd, err := NewGenerateShipNoticeCommand(ord, "SENDER", "RECEIVER", time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid ship notice request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("ship notice generation failed: %w", err)
//	}
//	fmt.Printf("Encoded %d segments under control number %s",
//	    result.SegmentCount, result.ControlNumber)
type GenerateShipNoticeCommand struct { //nolint:recvcheck //using for validation
	order      *order.Order
	senderID   string
	receiverID string
	issuedAt   time.Time

	guard guard.ConstructorGuard
}

// NewGenerateShipNoticeCommand creates a command to generate a ship notice.
// senderID and receiverID identify the interchange parties and must be
// non-empty.
func NewGenerateShipNoticeCommand(o *order.Order, senderID, receiverID string, issuedAt time.Time) (GenerateShipNoticeCommand, error) {
	cmd := GenerateShipNoticeCommand{
		issuedAt: issuedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrder(o),
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
	); err != nil {
		return GenerateShipNoticeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateShipNoticeCommandIsNotConstructed if validation fails.
func (c GenerateShipNoticeCommand) Validate() error {
	return c.guard.Validate(ErrGenerateShipNoticeCommandIsNotConstructed)
}

// Order returns the order to ship.
func (c GenerateShipNoticeCommand) Order() *order.Order {
	return c.order
}

// SenderID returns the interchange sender identifier.
func (c GenerateShipNoticeCommand) SenderID() string {
	return c.senderID
}

// ReceiverID returns the interchange receiver identifier.
func (c GenerateShipNoticeCommand) ReceiverID() string {
	return c.receiverID
}

// IssuedAt returns the fixed document timestamp, zero when the handler's
// clock decides.
func (c GenerateShipNoticeCommand) IssuedAt() time.Time {
	return c.issuedAt
}

func (c *GenerateShipNoticeCommand) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.order = o
	return nil
}

func (c *GenerateShipNoticeCommand) setSenderID(senderID string) error {
	if strings.TrimSpace(senderID) == "" {
		return errs.NewValueIsRequiredError("senderID")
	}

	c.senderID = senderID
	return nil
}

func (c *GenerateShipNoticeCommand) setReceiverID(receiverID string) error {
	if strings.TrimSpace(receiverID) == "" {
		return errs.NewValueIsRequiredError("receiverID")
	}

	c.receiverID = receiverID
	return nil
}
