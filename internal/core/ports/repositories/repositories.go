package repositories

// RepositoryProvider bundles all repository facades for dependency injection.
type RepositoryProvider struct {
	TxManager       TransactionManager
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	WorkerRepo      WorkerRepositoryFacade
	AttendanceRepo  AttendanceRepositoryFacade
	ProjectRepo     ProjectRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	UserRepo        UserRepositoryFacade
}
