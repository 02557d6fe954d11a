package cmd

import (
	"log/slog"

	"aquasphere/internal/adapters/out/persistence"
	"aquasphere/internal/adapters/out/persistence/historyrepo"
	"aquasphere/internal/adapters/out/persistence/watermarkrepo"
	"aquasphere/internal/core/application/usecases/commands"
	"aquasphere/internal/core/application/usecases/queries"
	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/services"

	httpin "aquasphere/internal/adapters/in/http"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *persistence.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: persistence.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClearNotificationsCommandHandler() commands.ClearNotificationsCommandHandler {
	var f commands.WatermarkUoWFactory = FuncWatermarkUoWFactory(func() commands.WatermarkUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearNotificationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(
		historyrepo.NewGormHistoryRepository(c.gormDB),
		watermarkrepo.NewGormWatermarkRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateEstimateDeliveryQueryHandler() (queries.EstimateDeliveryQueryHandler, error) {
	hub, err := kernel.NewLocation(c.config.HubLatitude, c.config.HubLongitude)
	if err != nil {
		return queries.EstimateDeliveryQueryHandler{}, err
	}

	estimator, err := services.NewDeliveryEstimator(hub)
	if err != nil {
		return queries.EstimateDeliveryQueryHandler{}, err
	}
	return queries.NewEstimateDeliveryQueryHandler(estimator), nil
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	estimateHandler, err := c.CreateEstimateDeliveryQueryHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateClearNotificationsCommandHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetNotificationsQueryHandler(),
		estimateHandler,
		c.logger,
	), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWatermarkUoWFactory func() commands.WatermarkUoW

func (f FuncWatermarkUoWFactory) Create() commands.WatermarkUoW {
	return f()
}
