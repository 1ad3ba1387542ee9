// Package services defines the service layer contracts consumed by the
// HTTP handlers.
package services

// ServiceProvider bundles every service facade for handler registration.
type ServiceProvider struct {
	AccountSvc    AccountSvcFacade
	LedgerSvc     LedgerSvcFacade
	JournalSvc    JournalSvcFacade
	WorkerSvc     WorkerSvcFacade
	AttendanceSvc AttendanceSvcFacade
	ProjectSvc    ProjectSvcFacade
	PaymentSvc    PaymentSvcFacade
	InvoiceSvc    InvoiceSvcFacade
	UserSvc       UserSvcFacade
	AuthSvc       AuthSvcFacade
}
