package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
	"github.com/praveentp099/uforce-accounting/internal/middleware"
)

// workerHandler handles HTTP requests for workers and outsourced groups.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

// registerWorkerRoutes registers routes related to workers and groups.
func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(workerService)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("/:id", h.getWorker)
		workers.GET("", h.listWorkers)
		workers.PUT("/:id", h.updateWorker)
	}

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.GET("/:id", h.getGroup)
		groups.GET("", h.listGroups)
		groups.PUT("/:id", h.updateGroup)
	}
}

func (h *workerHandler) createWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create worker")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

func (h *workerHandler) getWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve worker")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

func (h *workerHandler) listWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var workerType *domain.WorkerType
	if t := c.Query("type"); t != "" {
		wt := domain.WorkerType(t)
		workerType = &wt
	}

	workers, err := h.workerService.ListWorkers(c.Request.Context(), workerType)
	if err != nil {
		respondError(c, logger, err, "Failed to list workers")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponses(workers))
}

func (h *workerHandler) updateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to update worker")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

func (h *workerHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	group, err := h.workerService.CreateGroup(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create group")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

func (h *workerHandler) getGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	group, err := h.workerService.GetGroupByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve group")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

func (h *workerHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.workerService.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list groups")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponses(groups))
}

func (h *workerHandler) updateGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	group, err := h.workerService.UpdateGroup(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to update group")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}
