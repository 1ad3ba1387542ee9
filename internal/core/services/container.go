package services

import (
	"context"

	"github.com/shopspring/decimal"

	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/pkg/config"
)

// NewServiceProvider wires every service against the repositories and
// registers the recompute dispatch rules. Each mutated child entity maps
// to exactly one parent aggregate:
//
//	transaction     -> account balance
//	attendance      -> project actual cost
//	expense         -> project actual cost
//	task            -> project progress
//	invoice_payment -> invoice received total
func NewServiceProvider(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceProvider {
	recalc := NewRecalculator()

	accountSvc := NewAccountService(repos.AccountRepo)
	projectSvc := NewProjectService(repos.ProjectRepo, repos.TxManager, recalc)
	invoiceSvc := NewInvoiceService(repos.InvoiceRepo, repos.ProjectRepo, repos.TxManager, recalc)

	recalc.Register(KindTransaction, func(ctx context.Context, accountID string) error {
		_, err := accountSvc.RecomputeBalance(ctx, accountID)
		return err
	})
	recalc.Register(KindAttendance, func(ctx context.Context, projectID string) error {
		_, err := projectSvc.RecomputeActualCost(ctx, projectID)
		return err
	})
	recalc.Register(KindExpense, func(ctx context.Context, projectID string) error {
		_, err := projectSvc.RecomputeActualCost(ctx, projectID)
		return err
	})
	recalc.Register(KindTask, func(ctx context.Context, projectID string) error {
		_, err := projectSvc.RecomputeProgress(ctx, projectID)
		return err
	})
	recalc.Register(KindInvoicePayment, func(ctx context.Context, invoiceID string) error {
		_, err := invoiceSvc.RecomputeReceived(ctx, invoiceID)
		return err
	})

	userSvc := NewUserService(repos.UserRepo)

	return &portssvc.ServiceProvider{
		AccountSvc: accountSvc,
		LedgerSvc:  NewLedgerService(repos.TransactionRepo, repos.AccountRepo, repos.TxManager, recalc),
		JournalSvc: NewJournalService(repos.JournalRepo, repos.AccountRepo),
		WorkerSvc:  NewWorkerService(repos.WorkerRepo),
		AttendanceSvc: NewAttendanceService(
			repos.AttendanceRepo,
			repos.WorkerRepo,
			repos.ProjectRepo,
			repos.TxManager,
			recalc,
			decimal.NewFromInt(int64(cfg.StandardWorkHoursPerDay)),
			decimal.NewFromInt(int64(cfg.WorkDaysPerMonth)),
		),
		ProjectSvc: projectSvc,
		PaymentSvc: NewPaymentService(repos.PaymentRepo, repos.AttendanceRepo, repos.AccountRepo, repos.WorkerRepo),
		InvoiceSvc: invoiceSvc,
		UserSvc:    userSvc,
		AuthSvc:    NewAuthService(userSvc, cfg.JWTSecret, cfg.JWTExpiryDuration),
	}
}
