package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/core/ports"
)

// ApproveWithdrawalCommandHandler closes out a WITHDRAW_REQ restaurant:
// dependent rows first, then the restaurant row, in one transaction.
type ApproveWithdrawalCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewApproveWithdrawalCommandHandler creates a handler for withdrawal
// approval.
func NewApproveWithdrawalCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
	logger *zap.Logger,
) ApproveWithdrawalCommandHandler {
	return ApproveWithdrawalCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the approval. The guard is checked before any delete.
func (h *ApproveWithdrawalCommandHandler) Handle(ctx context.Context, cmd ApproveWithdrawalCommand) error {
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

	if err = aggregate.EnsureWithdrawable(); err != nil {
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

func (h *ApproveWithdrawalCommandHandler) notify(ctx context.Context, aggregate *restaurant.Restaurant) {
	notification := ports.Notification{
		Kind:      ports.NotificationWithdrawalApproved,
		Recipient: aggregate.Email(),
		Subject:   "Withdrawal completed",
		Body: fmt.Sprintf(
			"Hello %s, the withdrawal of %q is complete and all related data has been removed. "+
				"Thank you for being part of FrontDash.",
			aggregate.ContactName(), aggregate.Name()),
	}

	if err := h.notifier.Send(ctx, notification); err != nil {
		h.logger.Warn("withdrawal approval notification failed",
			zap.Int("restaurant_id", aggregate.ID()),
			zap.Error(err))
	}
}
