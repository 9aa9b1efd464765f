package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/core/domain/services"
	"frontdash/internal/core/ports"
)

// ApproveRegistrationCommandHandler activates a NEW_REG restaurant:
// transitions it to ACTIVE, generates login credentials, and persists the
// login record in the same transaction. The approval notification carries
// the plaintext password exactly once; only the hash is stored.
type ApproveRegistrationCommandHandler struct {
	uowFactory LifecycleUoWFactory
	hasher     ports.PasswordHasher
	notifier   ports.Notifier
	logger     *zap.Logger
}

// NewApproveRegistrationCommandHandler creates a handler for registration
// approval.
func NewApproveRegistrationCommandHandler(
	uowFactory LifecycleUoWFactory,
	hasher ports.PasswordHasher,
	notifier ports.Notifier,
	logger *zap.Logger,
) ApproveRegistrationCommandHandler {
	return ApproveRegistrationCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the approval. The state transition and credential
// creation commit atomically; the notification is sent after commit and its
// failure is logged, never surfaced.
func (h *ApproveRegistrationCommandHandler) Handle(ctx context.Context, cmd ApproveRegistrationCommand) error {
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

	if err = aggregate.Approve(); err != nil {
		return err
	}

	loginRepo := uow.LoginRepository()
	username, err := services.GenerateUsername(ctx, aggregate.ContactName(), loginRepo.UsernameExists)
	if err != nil {
		return err
	}

	password := services.GeneratePassword()
	passwordHash, err := h.hasher.Hash(password)
	if err != nil {
		return err
	}

	login, err := restaurant.NewLogin(username, passwordHash, aggregate.ID())
	if err != nil {
		return err
	}
	if err = loginRepo.Add(ctx, login); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate, username, password)
	return nil
}

func (h *ApproveRegistrationCommandHandler) notify(
	ctx context.Context, aggregate *restaurant.Restaurant, username, password string,
) {
	notification := ports.Notification{
		Kind:      ports.NotificationRegistrationApproved,
		Recipient: aggregate.Email(),
		Subject:   "Your restaurant has been approved",
		Body: fmt.Sprintf(
			"Welcome to FrontDash, %s! Your restaurant %q is now live. "+
				"Sign in with username %q and temporary password %q, then change the password.",
			aggregate.ContactName(), aggregate.Name(), username, password),
	}

	if err := h.notifier.Send(ctx, notification); err != nil {
		h.logger.Warn("approval notification failed",
			zap.Int("restaurant_id", aggregate.ID()),
			zap.Error(err))
	}
}
