package services

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// WorkerSvcFacade defines operations on workers and outsourced groups.
type WorkerSvcFacade interface {
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest, creatorUserID string) (*domain.Worker, error)
	GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)
	ListWorkers(ctx context.Context, workerType *domain.WorkerType) ([]domain.Worker, error)
	UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest, updaterUserID string) (*domain.Worker, error)

	CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.OutsourcedGroup, error)
	GetGroupByID(ctx context.Context, groupID string) (*domain.OutsourcedGroup, error)
	ListGroups(ctx context.Context) ([]domain.OutsourcedGroup, error)
	UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, updaterUserID string) (*domain.OutsourcedGroup, error)
}
