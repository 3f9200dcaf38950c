package handlers

import (
	"net/http"
	"strconv"

	"staff-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftTemplateHandler handles HTTP requests for shift templates
type ShiftTemplateHandler struct {
	templateService service.ShiftTemplateServiceInterface
}

// NewShiftTemplateHandler creates a new shift template handler
func NewShiftTemplateHandler(templateService service.ShiftTemplateServiceInterface) *ShiftTemplateHandler {
	return &ShiftTemplateHandler{
		templateService: templateService,
	}
}

// CreateShiftTemplate handles POST /shift-templates
func (h *ShiftTemplateHandler) CreateShiftTemplate(c *gin.Context) {
	var req service.CreateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.templateService.CreateShiftTemplate(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetShiftTemplate handles GET /shift-templates/:id
func (h *ShiftTemplateHandler) GetShiftTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift template ID"})
		return
	}

	resp, err := h.templateService.GetShiftTemplateByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListShiftTemplates handles GET /shift-templates
func (h *ShiftTemplateHandler) ListShiftTemplates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.templateService.GetShiftTemplates(page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateShiftTemplate handles PUT /shift-templates/:id
func (h *ShiftTemplateHandler) UpdateShiftTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift template ID"})
		return
	}

	var req service.UpdateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.templateService.UpdateShiftTemplate(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteShiftTemplate handles DELETE /shift-templates/:id
func (h *ShiftTemplateHandler) DeleteShiftTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift template ID"})
		return
	}

	if err := h.templateService.DeleteShiftTemplate(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shift template deleted"})
}
