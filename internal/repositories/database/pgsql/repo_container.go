package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/praveentp099/uforce-accounting/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TxManager:       newPgxTxManager(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		WorkerRepo:      newPgxWorkerRepository(dbPool),
		AttendanceRepo:  newPgxAttendanceRepository(dbPool),
		ProjectRepo:     newPgxProjectRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
