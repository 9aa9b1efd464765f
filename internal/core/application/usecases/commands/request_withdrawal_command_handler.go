package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/core/ports"
)

// RequestWithdrawalCommandHandler moves an ACTIVE restaurant into
// WITHDRAW_REQ and acknowledges the request by notification.
type RequestWithdrawalCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewRequestWithdrawalCommandHandler creates a handler for withdrawal
// requests.
func NewRequestWithdrawalCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
	logger *zap.Logger,
) RequestWithdrawalCommandHandler {
	return RequestWithdrawalCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the withdrawal request.
func (h *RequestWithdrawalCommandHandler) Handle(ctx context.Context, cmd RequestWithdrawalCommand) error {
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

	if err = aggregate.RequestWithdrawal(); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate, cmd.Reason())
	return nil
}

func (h *RequestWithdrawalCommandHandler) notify(
	ctx context.Context, aggregate *restaurant.Restaurant, reason string,
) {
	notification := ports.Notification{
		Kind:      ports.NotificationWithdrawalReceived,
		Recipient: aggregate.Email(),
		Subject:   "Withdrawal request received",
		Body: fmt.Sprintf(
			"Hello %s, we received the withdrawal request for %q (reason: %s). "+
				"An administrator will review it shortly.",
			aggregate.ContactName(), aggregate.Name(), reason),
	}

	if err := h.notifier.Send(ctx, notification); err != nil {
		h.logger.Warn("withdrawal request notification failed",
			zap.Int("restaurant_id", aggregate.ID()),
			zap.Error(err))
	}
}
