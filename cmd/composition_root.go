package cmd

import (
	"log/slog"
	"time"

	kafka_adapter "fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	redis_adapter "fulfillment/internal/adapters/out/redis"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// trackingCacheTTL bounds how stale a public tracking view may be.
const trackingCacheTTL = time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	cache      queries.TrackingSnapshotCache
	generator  *services.TrackingCodeGenerator
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	generator, err := services.NewTrackingCodeGenerator(configs.TrackingCodePrefix)
	if err != nil {
		return CompositionRoot{}, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisHost,
		Password: configs.RedisPassword,
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: kafka_adapter.NewNotificationDispatcher(
			[]string{configs.KafkaHost}, configs.KafkaNotificationsTopic, logger,
		),
		cache:     redis_adapter.NewTrackingSnapshotCache(redisClient, trackingCacheTTL),
		generator: generator,
		logger:    logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateFulfillmentsCommandHandler() commands.CreateFulfillmentsCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFulfillmentsCommandHandler(
		f, services.NewGroupAssembler(), services.NewDeliveryEstimator(), c.generator,
	)
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCarrierCommandHandler(
		f, services.NewDeliveryEstimator(), c.dispatcher, c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateNotifyOverdueDeliveriesCommandHandler() commands.NotifyOverdueDeliveriesCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyOverdueDeliveriesCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateTrackByCodeQueryHandler() queries.TrackByCodeQueryHandler {
	return queries.NewTrackByCodeQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetBuyerFulfillmentsQueryHandler() queries.GetBuyerFulfillmentsQueryHandler {
	return queries.NewGetBuyerFulfillmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerFulfillmentsQueryHandler() queries.GetSellerFulfillmentsQueryHandler {
	return queries.NewGetSellerFulfillmentsQueryHandler(c.gormDB)
}

// CreateUnitOfWorkFactory exposes the factory for setup tasks like catalog
// seeding.
func (c *CompositionRoot) CreateUnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
