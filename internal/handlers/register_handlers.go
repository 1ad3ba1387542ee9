package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
	"github.com/praveentp099/uforce-accounting/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceProvider,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services.AuthSvc)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// entity route registrations. Each sub-group is gated on the role
// capability its operations need.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceProvider,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Money movement requires finance capability.
	finance := v1.Group("", middleware.RequireFinance())
	registerAccountRoutes(finance, services.AccountSvc)
	registerLedgerRoutes(finance, services.LedgerSvc)
	registerJournalRoutes(finance, services.JournalSvc)
	registerInvoiceRoutes(finance, services.InvoiceSvc)
	registerPaymentRoutes(finance, services.PaymentSvc)
	registerUserRoutes(finance, services.UserSvc)

	// Projects, workers and their groups require project management.
	management := v1.Group("", middleware.RequireProjectManagement())
	registerProjectRoutes(management, services.ProjectSvc)
	registerWorkerRoutes(management, services.WorkerSvc)

	// Attendance is open to foremen as well.
	attendance := v1.Group("", middleware.RequireAttendanceRecording())
	registerAttendanceRoutes(attendance, services.AttendanceSvc)
}
