package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/core/ports"
)

// RejectRegistrationCommandHandler removes a NEW_REG restaurant entirely:
// dependent rows first, then the restaurant row, in one transaction. No
// partial state survives a failed rejection.
type RejectRegistrationCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewRejectRegistrationCommandHandler creates a handler for registration
// rejection.
func NewRejectRegistrationCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
	logger *zap.Logger,
) RejectRegistrationCommandHandler {
	return RejectRegistrationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the rejection. The guard is checked before any delete;
// the notification is sent after commit and never rolls anything back.
func (h *RejectRegistrationCommandHandler) Handle(ctx context.Context, cmd RejectRegistrationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureRejectable(); err != nil {
		return err
	}

	if err = restaurantRepo.DeleteDependents(ctx, aggregate.ID()); err != nil {
		return err
	}
	if err = restaurantRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate)
	return nil
}

func (h *RejectRegistrationCommandHandler) notify(ctx context.Context, aggregate *restaurant.Restaurant) {
	notification := ports.Notification{
		Kind:      ports.NotificationRegistrationRejected,
		Recipient: aggregate.Email(),
		Subject:   "Your restaurant application was not approved",
		Body: fmt.Sprintf(
			"Hello %s, unfortunately the application for %q was not approved. "+
				"You are welcome to apply again with updated details.",
			aggregate.ContactName(), aggregate.Name()),
	}

	if err := h.notifier.Send(ctx, notification); err != nil {
		h.logger.Warn("rejection notification failed",
			zap.Int("restaurant_id", aggregate.ID()),
			zap.Error(err))
	}
}
