package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

type workerService struct {
	workerRepo portsrepo.WorkerRepositoryFacade
}

// NewWorkerService creates a new worker and group service.
func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade) portssvc.WorkerSvcFacade {
	return &workerService{workerRepo: workerRepo}
}

var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

// validateWageFields enforces the wage field each worker type requires.
func validateWageFields(w domain.Worker) error {
	switch w.WorkerType {
	case domain.WorkerOwn:
		if !w.FixedWage.IsPositive() {
			return fmt.Errorf("%w: own workers require a positive fixed wage", apperrors.ErrValidation)
		}
	case domain.WorkerOutsourced:
		if !w.DailyWage.IsPositive() {
			return fmt.Errorf("%w: outsourced workers require a positive daily wage", apperrors.ErrValidation)
		}
	}
	if w.OT1Rate.IsNegative() || w.OT2Rate.IsNegative() {
		return fmt.Errorf("%w: overtime rates cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

func (s *workerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest, creatorUserID string) (*domain.Worker, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	worker := domain.Worker{
		WorkerID:   uuid.NewString(),
		Name:       req.Name,
		WorkerType: req.WorkerType,
		GroupID:    req.GroupID,
		FixedWage:  req.FixedWage,
		DailyWage:  req.DailyWage,
		OT1Rate:    req.OT1Rate,
		OT2Rate:    req.OT2Rate,
		Contact:    req.Contact,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := validateWageFields(worker); err != nil {
		return nil, err
	}
	if req.GroupID != nil {
		if worker.WorkerType != domain.WorkerOutsourced {
			return nil, fmt.Errorf("%w: only outsourced workers belong to groups", apperrors.ErrValidation)
		}
		if _, err := s.workerRepo.FindGroupByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}

	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		logger.Error("Failed to save worker", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Worker created", slog.String("worker_id", worker.WorkerID), slog.String("type", string(worker.WorkerType)))
	return &worker, nil
}

func (s *workerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	return s.workerRepo.FindWorkerByID(ctx, workerID)
}

func (s *workerService) ListWorkers(ctx context.Context, workerType *domain.WorkerType) ([]domain.Worker, error) {
	return s.workerRepo.ListWorkers(ctx, workerType)
}

func (s *workerService) UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest, updaterUserID string) (*domain.Worker, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.GroupID != nil {
		if worker.WorkerType != domain.WorkerOutsourced {
			return nil, fmt.Errorf("%w: only outsourced workers belong to groups", apperrors.ErrValidation)
		}
		if _, err := s.workerRepo.FindGroupByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
		worker.GroupID = req.GroupID
	}
	if req.FixedWage != nil {
		worker.FixedWage = *req.FixedWage
	}
	if req.DailyWage != nil {
		worker.DailyWage = *req.DailyWage
	}
	if req.OT1Rate != nil {
		worker.OT1Rate = *req.OT1Rate
	}
	if req.OT2Rate != nil {
		worker.OT2Rate = *req.OT2Rate
	}
	if req.Contact != nil {
		worker.Contact = *req.Contact
	}
	if req.IsActive != nil {
		worker.IsActive = *req.IsActive
	}

	if err := validateWageFields(*worker); err != nil {
		return nil, err
	}

	worker.LastUpdatedAt = time.Now()
	worker.LastUpdatedBy = updaterUserID

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		logger.Error("Failed to update worker", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		return nil, err
	}

	return worker, nil
}

func (s *workerService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.OutsourcedGroup, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	if req.LeaderID != nil {
		if err := s.checkLeader(ctx, *req.LeaderID); err != nil {
			return nil, err
		}
	}

	group := domain.OutsourcedGroup{
		GroupID:  uuid.NewString(),
		Name:     req.Name,
		LeaderID: req.LeaderID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workerRepo.SaveGroup(ctx, group); err != nil {
		logger.Error("Failed to save group", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Outsourced group created", slog.String("group_id", group.GroupID), slog.String("name", group.Name))
	return &group, nil
}

func (s *workerService) GetGroupByID(ctx context.Context, groupID string) (*domain.OutsourcedGroup, error) {
	return s.workerRepo.FindGroupByID(ctx, groupID)
}

func (s *workerService) ListGroups(ctx context.Context) ([]domain.OutsourcedGroup, error) {
	return s.workerRepo.ListGroups(ctx)
}

func (s *workerService) UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, updaterUserID string) (*domain.OutsourcedGroup, error) {
	group, err := s.workerRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.LeaderID != nil {
		if err := s.checkLeader(ctx, *req.LeaderID); err != nil {
			return nil, err
		}
		group.LeaderID = req.LeaderID
	}
	group.LastUpdatedAt = time.Now()
	group.LastUpdatedBy = updaterUserID

	if err := s.workerRepo.UpdateGroup(ctx, *group); err != nil {
		return nil, err
	}

	return group, nil
}

// checkLeader verifies the proposed leader exists and is outsourced.
func (s *workerService) checkLeader(ctx context.Context, leaderID string) error {
	leader, err := s.workerRepo.FindWorkerByID(ctx, leaderID)
	if err != nil {
		return err
	}
	if leader.WorkerType != domain.WorkerOutsourced {
		return fmt.Errorf("%w: group leader must be an outsourced worker", apperrors.ErrValidation)
	}
	return nil
}
