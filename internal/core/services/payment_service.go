package services

import (
	"context"
	"errors"
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

type paymentService struct {
	paymentRepo    portsrepo.PaymentRepositoryFacade
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	accountRepo    portsrepo.AccountRepositoryFacade
	workerRepo     portsrepo.WorkerRepositoryFacade
}

// NewPaymentService creates a new group wage payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:    paymentRepo,
		attendanceRepo: attendanceRepo,
		accountRepo:    accountRepo,
		workerRepo:     workerRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// allocatePrefix selects the maximal oldest-first prefix of obligations
// whose cumulative wage fits within amount. Nothing is partially settled:
// the first record that does not fit ends the prefix, and whatever is left
// of the amount is absorbed by the ledger transaction with no further
// effect.
func allocatePrefix(unpaid []domain.WorkerAttendance, amount decimal.Decimal) (ids []string, covered decimal.Decimal) {
	covered = decimal.Zero
	for _, att := range unpaid {
		next := covered.Add(att.TotalWage)
		if next.GreaterThan(amount) {
			break
		}
		covered = next
		ids = append(ids, att.AttendanceID)
	}
	return ids, covered
}

// AllocateGroupPayment spends a lump amount on a group's unpaid attendance.
// The funding ledger transaction records the full amount even when it
// covers zero records; only a missing funding account aborts the whole
// operation.
func (s *paymentService) AllocateGroupPayment(ctx context.Context, groupID string, req dto.AllocateGroupPaymentRequest, creatorUserID string) (*dto.GroupPaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	group, err := s.workerRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	funding, err := s.accountRepo.FindFundingAccount(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No funding account available for group payment", slog.String("group_id", groupID))
			return nil, fmt.Errorf("%w: no asset or income account available to fund the payment", apperrors.ErrPrecondition)
		}
		return nil, err
	}

	unpaid, err := s.attendanceRepo.ListUnpaidByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	ids, covered := allocatePrefix(unpaid, req.Amount)

	// Paying out of an asset account reduces it, which is a credit;
	// any other funding type grows with the outflow recorded as a debit.
	txnType := domain.Debit
	if funding.AccountType == domain.Asset {
		txnType = domain.Credit
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       funding.AccountID,
		Date:            req.PaymentDate,
		Amount:          req.Amount,
		TransactionType: txnType,
		Description:     fmt.Sprintf("Wage payment to group %s", group.Name),
		AuditFields:     audit,
	}

	payment := domain.GroupPayment{
		PaymentID:     uuid.NewString(),
		GroupID:       groupID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		TransactionID: txn.TransactionID,
		AuditFields:   audit,
	}

	if err := s.paymentRepo.SaveGroupPayment(ctx, payment, txn, ids); err != nil {
		logger.Error("Failed to persist group payment", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, err
	}

	logger.Info("Group payment allocated",
		slog.String("group_id", groupID),
		slog.String("amount", req.Amount.String()),
		slog.Int("records_marked_paid", len(ids)),
		slog.String("amount_covered", covered.String()),
	)

	return &dto.GroupPaymentResult{
		PaymentID:          payment.PaymentID,
		TransactionCreated: txn.TransactionID,
		RecordsMarkedPaid:  len(ids),
		AmountCovered:      covered,
		Remainder:          req.Amount.Sub(covered),
	}, nil
}

// PayAllGroup settles every unpaid record of the group in one payment
// sized to the group's full outstanding total.
func (s *paymentService) PayAllGroup(ctx context.Context, groupID string, creatorUserID string) (*dto.GroupPaymentResult, error) {
	unpaid, err := s.attendanceRepo.ListUnpaidByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, att := range unpaid {
		total = total.Add(att.TotalWage)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: group has no unpaid wages", apperrors.ErrValidation)
	}

	return s.AllocateGroupPayment(ctx, groupID, dto.AllocateGroupPaymentRequest{
		Amount:      total,
		PaymentDate: time.Now(),
	}, creatorUserID)
}

func (s *paymentService) ListGroupPayments(ctx context.Context, groupID string) ([]domain.GroupPayment, error) {
	if _, err := s.workerRepo.FindGroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListGroupPayments(ctx, groupID)
}

// ListPayables aggregates outstanding wage totals per group.
func (s *paymentService) ListPayables(ctx context.Context) ([]dto.GroupPayableResponse, error) {
	groups, err := s.workerRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	payables := make([]dto.GroupPayableResponse, 0, len(groups))
	for _, g := range groups {
		unpaid, err := s.attendanceRepo.ListUnpaidByGroup(ctx, g.GroupID)
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, att := range unpaid {
			total = total.Add(att.TotalWage)
		}
		payables = append(payables, dto.GroupPayableResponse{
			GroupID:       g.GroupID,
			GroupName:     g.Name,
			UnpaidRecords: len(unpaid),
			TotalOwed:     total,
		})
	}
	return payables, nil
}
