package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

type projectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
	txManager   portsrepo.TransactionManager
	recalc      *Recalculator
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, txManager portsrepo.TransactionManager, recalc *Recalculator) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, txManager: txManager, recalc: recalc}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	project := domain.Project{
		ProjectID:     uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Budget:        req.Budget,
		ActualCost:    decimal.Zero,
		Progress:      0,
		SupervisorID:  req.SupervisorID,
		ClientCompany: req.ClientCompany,
		Priority:      priority,
		Status:        domain.ProjectActive,
		Remarks:       req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		logger.Error("Failed to save project", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Project created", slog.String("project_id", project.ProjectID), slog.String("name", project.Name))
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, status *domain.ProjectStatus) ([]domain.Project, error) {
	return s.projectRepo.ListProjects(ctx, status)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.SupervisorID != nil {
		project.SupervisorID = req.SupervisorID
	}
	if req.ClientCompany != nil {
		project.ClientCompany = *req.ClientCompany
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Remarks != nil {
		project.Remarks = *req.Remarks
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = updaterUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		logger.Error("Failed to update project", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return nil, err
	}

	return project, nil
}

// RecomputeActualCost rebuilds the project's cached cost as the sum of its
// expenses and attendance wages. Idempotent: rerunning without an
// intervening child change yields the same value.
func (s *projectService) RecomputeActualCost(ctx context.Context, projectID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return decimal.Zero, err
	}

	expenseTotal, wageTotal, err := s.projectRepo.SumProjectCosts(ctx, projectID)
	if err != nil {
		logger.Error("Failed to sum project costs", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return decimal.Zero, err
	}

	actualCost := expenseTotal.Add(wageTotal)
	if err := s.projectRepo.UpdateProjectActualCost(ctx, projectID, actualCost, time.Now()); err != nil {
		return decimal.Zero, err
	}

	logger.Debug("Project actual cost recomputed", slog.String("project_id", projectID), slog.String("actual_cost", actualCost.String()))
	return actualCost, nil
}

// RecomputeProgress rebuilds the project's cached completion percentage
// from its task counts. 100*completed/total truncates toward zero; a
// project with no tasks sits at zero.
func (s *projectService) RecomputeProgress(ctx context.Context, projectID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return 0, err
	}

	total, completed, err := s.projectRepo.CountTasks(ctx, projectID)
	if err != nil {
		logger.Error("Failed to count tasks", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return 0, err
	}

	progress := 0
	if total > 0 {
		progress = completed * 100 / total
	}

	if err := s.projectRepo.UpdateProjectProgress(ctx, projectID, progress, time.Now()); err != nil {
		return 0, err
	}

	logger.Debug("Project progress recomputed", slog.String("project_id", projectID), slog.Int("progress", progress))
	return progress, nil
}

func (s *projectService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	task := domain.Task{
		TaskID:      uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Status:      domain.TaskTodo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.SaveTask(ctx, task); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindTask, task.ProjectID)
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *projectService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, updaterUserID string) (*domain.Task, error) {
	task, err := s.projectRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.StartDate != nil {
		task.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.CompletionNotes != nil {
		task.CompletionNotes = *req.CompletionNotes
	}
	task.LastUpdatedAt = time.Now()
	task.LastUpdatedBy = updaterUserID

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.UpdateTask(ctx, *task); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindTask, task.ProjectID)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *projectService) DeleteTask(ctx context.Context, taskID string) error {
	task, err := s.projectRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.DeleteTask(ctx, taskID); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindTask, task.ProjectID)
	})
}

func (s *projectService) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	return s.projectRepo.ListTasksByProject(ctx, projectID)
}

func (s *projectService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ProjectExpense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.ProjectExpense{
		ExpenseID:   uuid.NewString(),
		ProjectID:   req.ProjectID,
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.SaveExpense(ctx, expense); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindExpense, expense.ProjectID)
	})
	if err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()), slog.String("project_id", req.ProjectID))
		return nil, err
	}

	return &expense, nil
}

func (s *projectService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.ProjectExpense, error) {
	expense, err := s.projectRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.ExpenseType != nil {
		expense.ExpenseType = *req.ExpenseType
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.UpdateExpense(ctx, *expense); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindExpense, expense.ProjectID)
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *projectService) DeleteExpense(ctx context.Context, expenseID string) error {
	expense, err := s.projectRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.DeleteExpense(ctx, expenseID); err != nil {
			return err
		}
		return s.recalc.Fire(ctx, KindExpense, expense.ProjectID)
	})
}

func (s *projectService) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ProjectExpense, error) {
	return s.projectRepo.ListExpensesByProject(ctx, projectID)
}
