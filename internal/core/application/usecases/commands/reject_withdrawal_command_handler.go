package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/core/ports"
)

// RejectWithdrawalCommandHandler returns a WITHDRAW_REQ restaurant to
// ACTIVE without touching any other field.
type RejectWithdrawalCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewRejectWithdrawalCommandHandler creates a handler for withdrawal
// rejection.
func NewRejectWithdrawalCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
	logger *zap.Logger,
) RejectWithdrawalCommandHandler {
	return RejectWithdrawalCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the rejection.
func (h *RejectWithdrawalCommandHandler) Handle(ctx context.Context, cmd RejectWithdrawalCommand) error {
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

	if err = aggregate.RejectWithdrawal(); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate)
	return nil
}

func (h *RejectWithdrawalCommandHandler) notify(ctx context.Context, aggregate *restaurant.Restaurant) {
	notification := ports.Notification{
		Kind:      ports.NotificationWithdrawalRejected,
		Recipient: aggregate.Email(),
		Subject:   "Withdrawal request declined",
		Body: fmt.Sprintf(
			"Hello %s, the withdrawal request for %q was declined and the restaurant remains active. "+
				"Contact support if you believe this is a mistake.",
			aggregate.ContactName(), aggregate.Name()),
	}

	if err := h.notifier.Send(ctx, notification); err != nil {
		h.logger.Warn("withdrawal rejection notification failed",
			zap.Int("restaurant_id", aggregate.ID()),
			zap.Error(err))
	}
}
