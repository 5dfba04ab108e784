package commands

import (
	"context"
	"errors"
	"strings"

	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/guard"
	"deliveryops/internal/pkg/logger"

	"go.uber.org/zap"
)

var ErrPublishDriverStatusCommandIsNotConstructed = errors.New(
	"PublishDriverStatusCommand must be created via NewPublishDriverStatusCommand constructor",
)

// PublishDriverStatusCommand relays a driver's presence to dashboards. No
// state is stored.
type PublishDriverStatusCommand struct {
	driverID string
	isOnline bool
	guard    guard.ConstructorGuard
}

// NewPublishDriverStatusCommand requires a driver id.
func NewPublishDriverStatusCommand(driverID string, isOnline bool) (PublishDriverStatusCommand, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return PublishDriverStatusCommand{}, errs.NewValueIsRequiredError("driverId")
	}
	return PublishDriverStatusCommand{driverID: driverID, isOnline: isOnline, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrPublishDriverStatusCommandIsNotConstructed)
}

func (c PublishDriverStatusCommand) DriverID() string {
	return c.driverID
}

func (c PublishDriverStatusCommand) IsOnline() bool {
	return c.isOnline
}

// PublishDriverStatusCommandHandler publishes driver_status_update.
type PublishDriverStatusCommandHandler struct {
	events eventRelay
}

// NewPublishDriverStatusCommandHandler creates the handler.
func NewPublishDriverStatusCommandHandler(publisher ports.EventPublisher, log *zap.Logger) PublishDriverStatusCommandHandler {
	return PublishDriverStatusCommandHandler{
		events: eventRelay{publisher: publisher, logger: logger.Component(log, "driver_status")},
	}
}

// Handle publishes best effort; a bus failure is logged, not returned.
func (h PublishDriverStatusCommandHandler) Handle(ctx context.Context, cmd PublishDriverStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	h.events.publish(ctx, ports.DriverStatusUpdate, ports.DriverStatusUpdatePayload{
		DriverID: cmd.DriverID(),
		IsOnline: cmd.IsOnline(),
	})
	return nil
}
