package followup

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldcrm/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/follow-ups", h.List)
	rg.POST("/follow-ups", h.Create)
	rg.GET("/follow-ups/today", h.ListDueToday)
	rg.GET("/follow-ups/:id", h.Get)
	rg.PUT("/follow-ups/:id", h.Update)
	rg.PUT("/follow-ups/:id/complete", h.Complete)
	rg.DELETE("/follow-ups/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var customerID int64
	if raw := c.Query("customer_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
			return
		}
		customerID = parsed
	}

	followUps, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), c.Query("date"), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list follow-ups")
		return
	}
	response.Success(c, http.StatusOK, followUps)
}

func (h *Handler) ListDueToday(c *gin.Context) {
	followUps, err := h.service.ListDueToday(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list follow-ups")
		return
	}
	response.Success(c, http.StatusOK, followUps)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid due date or time")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create follow-up")
		}
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid follow-up ID")
		return
	}

	f, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Follow-up not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load follow-up")
		}
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid follow-up ID")
		return
	}

	var req UpdateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Follow-up not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid due date or time")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update follow-up")
		}
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid follow-up ID")
		return
	}

	completed, err := h.service.Complete(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Follow-up not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to complete follow-up")
		}
		return
	}
	response.Success(c, http.StatusOK, completed)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid follow-up ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Follow-up not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete follow-up")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
