package commands

import (
	"context"

	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/core/domain/model/restaurant"
)

// UpsertOperatingHoursCommandHandler stores weekday windows for an existing
// restaurant, one upsert per weekday, in one transaction.
type UpsertOperatingHoursCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewUpsertOperatingHoursCommandHandler creates a handler for schedule
// updates.
func NewUpsertOperatingHoursCommandHandler(uowFactory ScheduleUoWFactory) UpsertOperatingHoursCommandHandler {
	return UpsertOperatingHoursCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the schedule update. The restaurant must exist; the
// lookup doubles as the not-found check.
func (h *UpsertOperatingHoursCommandHandler) Handle(ctx context.Context, cmd UpsertOperatingHoursCommand) error {
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

	aggregate, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	hourRepo := uow.OperatingHourRepository()
	for _, in := range cmd.Hours() {
		weekDay, err := kernel.NewWeekDay(in.WeekDay)
		if err != nil {
			return err
		}

		hour, err := restaurant.NewOperatingHour(aggregate.ID(), weekDay,
			optionalClock(in.OpenTime), optionalClock(in.CloseTime))
		if err != nil {
			return err
		}

		if err = hourRepo.Upsert(ctx, hour); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
