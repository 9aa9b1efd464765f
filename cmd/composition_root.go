package cmd

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	frontdash_http "frontdash/internal/adapters/in/http"
	"frontdash/internal/adapters/out/auth"
	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/application/usecases/queries"
	"frontdash/internal/core/ports"

	"frontdash/internal/adapters/out/postgres"
)

// CompositionRoot wires adapters into use case handlers. Each Create*
// method builds a fresh handler; the shared pieces (database, notifier,
// hasher, issuer, logger) live here.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	hasher     ports.PasswordHasher
	issuer     *auth.JWTTokenIssuer
	logger     *zap.Logger
}

// NewCompositionRoot assembles the application graph.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	issuer *auth.JWTTokenIssuer,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		hasher:     auth.NewBcryptPasswordHasher(),
		issuer:     issuer,
		logger:     logger,
	}
}

// TokenIssuer exposes the JWT issuer for the HTTP auth middleware.
func (c *CompositionRoot) TokenIssuer() *auth.JWTTokenIssuer {
	return c.issuer
}

// CreateHTTPHandlers bundles every handler the HTTP server needs.
func (c *CompositionRoot) CreateHTTPHandlers() frontdash_http.Handlers {
	return frontdash_http.Handlers{
		RegisterRestaurant:   c.CreateRegisterRestaurantCommandHandler(),
		ApproveRegistration:  c.CreateApproveRegistrationCommandHandler(),
		RejectRegistration:   c.CreateRejectRegistrationCommandHandler(),
		RequestWithdrawal:    c.CreateRequestWithdrawalCommandHandler(),
		ApproveWithdrawal:    c.CreateApproveWithdrawalCommandHandler(),
		RejectWithdrawal:     c.CreateRejectWithdrawalCommandHandler(),
		UpsertOperatingHours: c.CreateUpsertOperatingHoursCommandHandler(),
		UpdateMenuItem:       c.CreateUpdateMenuItemCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		AssignDriver:         c.CreateAssignDriverCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		UpdateDeliveryTime:   c.CreateUpdateDeliveryTimeCommandHandler(),
		CreateDriver:         c.CreateCreateDriverCommandHandler(),
		DeleteDriver:         c.CreateDeleteDriverCommandHandler(),
		AuthenticateOwner:    c.CreateAuthenticateOwnerCommandHandler(),
		ChangePassword:       c.CreateChangePasswordCommandHandler(),

		GetRestaurantsByStatus: c.CreateGetRestaurantsByStatusQueryHandler(),
		GetOrdersByRestaurant:  c.CreateGetOrdersByRestaurantQueryHandler(),
		GetOrdersByStatus:      c.CreateGetOrdersByStatusQueryHandler(),
		GetOrderDetails:        c.CreateGetOrderDetailsQueryHandler(),
		GetAllDrivers:          c.CreateGetAllDriversQueryHandler(),
	}
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveRegistrationCommandHandler() commands.ApproveRegistrationCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRegistrationCommandHandler(f, c.hasher, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRejectRegistrationCommandHandler() commands.RejectRegistrationCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectRegistrationCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRequestWithdrawalCommandHandler() commands.RequestWithdrawalCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestWithdrawalCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateApproveWithdrawalCommandHandler() commands.ApproveWithdrawalCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveWithdrawalCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRejectWithdrawalCommandHandler() commands.RejectWithdrawalCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectWithdrawalCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpsertOperatingHoursCommandHandler() commands.UpsertOperatingHoursCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertOperatingHoursCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryTimeCommandHandler() commands.UpdateDeliveryTimeCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryTimeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateOwnerCommandHandler() commands.AuthenticateOwnerCommandHandler {
	var f commands.LoginUoWFactory = FuncLoginUoWFactory(func() commands.LoginUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthenticateOwnerCommandHandler(f, c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	var f commands.LoginUoWFactory = FuncLoginUoWFactory(func() commands.LoginUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePasswordCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateGetRestaurantsByStatusQueryHandler() queries.GetRestaurantsByStatusQueryHandler {
	return queries.NewGetRestaurantsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByRestaurantQueryHandler() queries.GetOrdersByRestaurantQueryHandler {
	return queries.NewGetOrdersByRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncLoginUoWFactory func() commands.LoginUoW

func (f FuncLoginUoWFactory) Create() commands.LoginUoW {
	return f()
}
