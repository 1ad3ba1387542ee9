package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

const dateQueryLayout = "2006-01-02"

// attendanceHandler handles HTTP requests for daily attendance records.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers routes related to attendance.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("", h.recordAttendance)
		attendance.POST("/calculate", h.calculateWage)
		attendance.GET("/:id", h.getAttendance)
		attendance.PUT("/:id", h.updateAttendance)
		attendance.DELETE("/:id", h.deleteAttendance)
		attendance.POST("/:id/mark-paid", h.markPaid)
		attendance.POST("/mark-paid", h.markManyPaid)
	}

	rg.GET("/workers/:id/attendance", h.listByWorker)
	rg.GET("/projects/:id/attendance", h.listByProject)
}

// calculateWage previews the wage for a shift without persisting anything.
func (h *attendanceHandler) calculateWage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	breakdown, err := h.attendanceService.CalculateWage(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate wage")
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

func (h *attendanceHandler) recordAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.attendanceService.RecordAttendance(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to record attendance")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

func (h *attendanceHandler) getAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	record, err := h.attendanceService.GetAttendanceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve attendance record")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

func (h *attendanceHandler) updateAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.attendanceService.UpdateAttendance(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to update attendance record")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

func (h *attendanceHandler) deleteAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete attendance record")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *attendanceHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.attendanceService.MarkPaid(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		respondError(c, logger, err, "Failed to mark attendance paid")
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": 1})
}

func (h *attendanceHandler) markManyPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MarkPaidBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.attendanceService.MarkManyPaid(c.Request.Context(), req.AttendanceIDs, updaterUserID); err != nil {
		respondError(c, logger, err, "Failed to mark attendance paid")
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": len(req.AttendanceIDs)})
}

func (h *attendanceHandler) listByWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.attendanceService.ListByWorker(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponses(records))
}

func (h *attendanceHandler) listByProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.attendanceService.ListByProject(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponses(records))
}

// dateRangeFromQuery reads the from/to query parameters. Missing values
// default to a wide range so an unfiltered listing returns everything.
func dateRangeFromQuery(c *gin.Context) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}
	return from, to, nil
}
