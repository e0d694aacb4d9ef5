package cmd

import (
	"ordertrack/internal/adapters/out/memory"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. The storage mode picks the
// backing repository once, at startup; everything above it is backend-agnostic.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	repo       ports.OrderRepository
}

// NewCompositionRoot builds the object graph for the configured storage mode.
// gormDB may be nil in memory mode.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	if config.StorageMode == StorageModeMemory {
		repo := memory.NewOrderRepository()
		return CompositionRoot{
			uowFactory: memory.NewUnitOfWorkFactory(repo),
			repo:       repo,
		}
	}

	return CompositionRoot{
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		repo:       orderrepo.NewGormOrderRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrdersQueryHandler(), zap.L())
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
