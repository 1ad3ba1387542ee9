package repositories

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
)

// WorkerReader defines read operations for workers and outsourced groups.
type WorkerReader interface {
	// FindWorkerByID retrieves a specific worker.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// ListWorkers retrieves active workers, optionally filtered by type.
	ListWorkers(ctx context.Context, workerType *domain.WorkerType) ([]domain.Worker, error)

	// FindGroupByID retrieves a specific outsourced group.
	FindGroupByID(ctx context.Context, groupID string) (*domain.OutsourcedGroup, error)

	// ListGroups retrieves all outsourced groups ordered by name.
	ListGroups(ctx context.Context) ([]domain.OutsourcedGroup, error)
}

// WorkerWriter defines write operations for workers and outsourced groups.
type WorkerWriter interface {
	SaveWorker(ctx context.Context, worker domain.Worker) error
	UpdateWorker(ctx context.Context, worker domain.Worker) error
	SaveGroup(ctx context.Context, group domain.OutsourcedGroup) error
	UpdateGroup(ctx context.Context, group domain.OutsourcedGroup) error
}

// WorkerRepositoryFacade combines all worker repository interfaces.
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}
