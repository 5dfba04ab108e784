package cmd

import (
	"errors"
	"fmt"
	"strings"

	http_adapter "deliveryops/internal/adapters/in/http"
	"deliveryops/internal/adapters/out/eventbus"
	"deliveryops/internal/adapters/out/inmemory"
	"deliveryops/internal/adapters/out/postgres"
	"deliveryops/internal/adapters/out/renderer"
	"deliveryops/internal/core/application/usecases/commands"
	"deliveryops/internal/core/application/usecases/queries"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/jobs"
	"deliveryops/internal/pkg/keylock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	logger *zap.Logger

	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	statuses   *status.Registry
	locker     *keylock.Locker

	events    ports.EventBus
	publisher ports.EventPublisher
	redisBus  *eventbus.RedisBus
	kafka     *eventbus.KafkaPublisher
	renderer  ports.DocumentRenderer
}

// NewCompositionRoot wires the adapters selected by cfg. Without DB_HOST the
// store is in memory; without REDIS_URL events stay in this process.
func NewCompositionRoot(cfg Config, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		locker: keylock.New(),
	}

	c.statuses = status.DefaultRegistry()
	if cfg.StatusCatalogPath != "" {
		registry, err := status.LoadRegistry(cfg.StatusCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load status catalog: %w", err)
		}
		c.statuses = registry
	}

	if cfg.UsesPostgres() {
		db, err := postgres.Open(cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		c.gormDB = db
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	} else {
		logger.Warn("DB_HOST is not set, orders are kept in memory")
		c.uowFactory = inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	}

	c.events = eventbus.NewLocalBus(logger)
	if cfg.RedisURL != "" {
		bus, err := eventbus.NewRedisBus(cfg.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		c.redisBus = bus
		c.events = bus
	}

	c.publisher = c.events
	if cfg.KafkaHost != "" {
		brokers := strings.Split(cfg.KafkaHost, ",")
		c.kafka = eventbus.NewKafkaPublisher(eventbus.NewKafkaWriter(brokers, cfg.KafkaOrderChangedTopic))
		c.publisher = eventbus.Fanout{c.events, c.kafka}
	}

	if cfg.RendererURL != "" {
		c.renderer = renderer.NewClient(cfg.RendererURL, cfg.RendererTimeout, logger)
	}

	return c, nil
}

// DB is nil when the store is in memory.
func (c *CompositionRoot) DB() *gorm.DB {
	return c.gormDB
}

// RedisBus is nil unless REDIS_URL is set.
func (c *CompositionRoot) RedisBus() *eventbus.RedisBus {
	return c.redisBus
}

// HealthChecks lists the dependencies /health pings.
func (c *CompositionRoot) HealthChecks() []http_adapter.HealthCheck {
	var checks []http_adapter.HealthCheck
	if c.redisBus != nil {
		checks = append(checks, c.redisBus)
	}
	return checks
}

func (c *CompositionRoot) Close() error {
	var errs []error
	if c.kafka != nil {
		errs = append(errs, c.kafka.Close())
	}
	if c.redisBus != nil {
		errs = append(errs, c.redisBus.Close())
	}
	if c.gormDB != nil {
		if sqlDB, err := c.gormDB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) slipUoWFactory() commands.SlipUoWFactory {
	return FuncSlipUoWFactory(func() commands.SlipUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readerFactory() queries.ReaderFactory {
	return FuncReaderFactory(func() queries.Reader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.statuses, c.locker, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderFieldCommandHandler() commands.UpdateOrderFieldCommandHandler {
	return commands.NewUpdateOrderFieldCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateCreateDriverSlipCommandHandler() commands.CreateDriverSlipCommandHandler {
	return commands.NewCreateDriverSlipCommandHandler(c.slipUoWFactory(), c.locker, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateMerchantSlipCommandHandler() commands.CreateMerchantSlipCommandHandler {
	return commands.NewCreateMerchantSlipCommandHandler(c.slipUoWFactory(), c.locker, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateMarkMerchantSlipDeliveredCommandHandler() commands.MarkMerchantSlipDeliveredCommandHandler {
	return commands.NewMarkMerchantSlipDeliveredCommandHandler(c.slipUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreatePublishDriverStatusCommandHandler() commands.PublishDriverStatusCommandHandler {
	return commands.NewPublishDriverStatusCommandHandler(c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetUnclaimedReturnsQueryHandler() queries.GetUnclaimedReturnsQueryHandler {
	return queries.NewGetUnclaimedReturnsQueryHandler(c.readerFactory(), c.statuses)
}

// CreateHTTPHandlers collects every use case the HTTP API exposes.
func (c *CompositionRoot) CreateHTTPHandlers() http_adapter.Handlers {
	readers := c.readerFactory()
	return http_adapter.Handlers{
		CreateOrder:               c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:         c.CreateUpdateOrderStatusCommandHandler(),
		UpdateOrderField:          c.CreateUpdateOrderFieldCommandHandler(),
		CreateDriverSlip:          c.CreateCreateDriverSlipCommandHandler(),
		CreateMerchantSlip:        c.CreateCreateMerchantSlipCommandHandler(),
		MarkMerchantSlipDelivered: c.CreateMarkMerchantSlipDeliveredCommandHandler(),
		PublishDriverStatus:       c.CreatePublishDriverStatusCommandHandler(),
		GetOrders:                 queries.NewGetOrdersQueryHandler(readers, c.statuses),
		GetOrder:                  queries.NewGetOrderQueryHandler(readers, c.statuses),
		GetOrderTotals:            queries.NewGetOrderTotalsQueryHandler(readers, c.statuses),
		GetUnclaimedReturns:       c.CreateGetUnclaimedReturnsQueryHandler(),
		DriverSlips:               queries.NewDriverSlipQueryHandler(readers),
		MerchantSlips:             queries.NewMerchantSlipQueryHandler(readers),
		GetStatuses:               queries.NewGetStatusesQueryHandler(c.statuses),
		GetSlipDocument:           queries.NewGetSlipDocumentQueryHandler(readers, c.statuses, c.renderer),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *http_adapter.Server {
	return http_adapter.NewServer(c.CreateHTTPHandlers(), c.events, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetUnclaimedReturnsQueryHandler(), c.cfg.BacklogReportSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSlipUoWFactory func() commands.SlipUoW

func (f FuncSlipUoWFactory) Create() commands.SlipUoW {
	return f()
}

type FuncReaderFactory func() queries.Reader

func (f FuncReaderFactory) Create() queries.Reader {
	return f()
}
