package handlers

import (
	"net/http"
	"strings"

	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for the schedule grid
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// respondServiceError maps service errors onto HTTP status codes
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// AssignShift handles POST /schedule/assignments
func (h *ScheduleHandler) AssignShift(c *gin.Context) {
	var req service.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.scheduleService.AssignShift(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAssignments handles GET /schedule/assignments
func (h *ScheduleHandler) GetAssignments(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	resp, err := h.scheduleService.GetAssignments(employeeID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAssignment handles DELETE /schedule/assignments
func (h *ScheduleHandler) DeleteAssignment(c *gin.Context) {
	var req service.DeleteAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.scheduleService.DeleteAssignment(&req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assignment deleted"})
}

// DragDrop handles POST /schedule/drag-drop
func (h *ScheduleHandler) DragDrop(c *gin.Context) {
	var req service.DragDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.scheduleService.DragDrop(&req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assignment moved"})
}

// Undo handles POST /schedule/undo
func (h *ScheduleHandler) Undo(c *gin.Context) {
	state, err := h.scheduleService.Undo()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Redo handles POST /schedule/redo
func (h *ScheduleHandler) Redo(c *gin.Context) {
	state, err := h.scheduleService.Redo()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// HistoryState handles GET /schedule/history
func (h *ScheduleHandler) HistoryState(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduleService.HistoryState())
}

// ClearHistory handles DELETE /schedule/history
func (h *ScheduleHandler) ClearHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduleService.ClearHistory())
}

// WeekView handles GET /schedule/week
func (h *ScheduleHandler) WeekView(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	var departmentIDs []string
	if raw := c.Query("department_ids"); raw != "" {
		departmentIDs = strings.Split(raw, ",")
	}

	view, err := h.scheduleService.WeekView(date, departmentIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
