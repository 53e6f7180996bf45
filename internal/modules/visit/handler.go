package visit

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
	rg.GET("/visits", h.List)
	rg.POST("/visits", h.CreateOrFetch)
	rg.GET("/visits/:id", h.Get)
	rg.PUT("/visits/:id", h.Update)
	rg.POST("/visits/:id/start", h.Start)
	rg.POST("/visits/:id/end", h.End)
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

	visits, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), c.Query("date"), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list visits")
		return
	}
	response.Success(c, http.StatusOK, visits)
}

func (h *Handler) CreateOrFetch(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}

	v, err := h.service.CreateOrFetch(c.Request.Context(), c.GetInt64("user_id"), customerID, c.Query("date"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create visit")
		}
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid visit ID")
		return
	}

	v, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Visit not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load visit")
		}
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid visit ID")
		return
	}

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, patch)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Visit not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid visit patch")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update visit")
		}
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Start(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid visit ID")
		return
	}

	v, err := h.service.StartTimer(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Visit not found")
		case ErrTimerAlreadyStarted:
			response.Error(c, http.StatusConflict, "ALREADY_STARTED", "Visit timer already started")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start visit")
		}
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) End(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid visit ID")
		return
	}

	v, err := h.service.EndTimer(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Visit not found")
		case ErrTimerNotStarted:
			response.Error(c, http.StatusPreconditionFailed, "NOT_STARTED", "Visit timer was never started")
		case ErrTimerAlreadyEnded:
			response.Error(c, http.StatusConflict, "ALREADY_ENDED", "Visit timer already ended")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to end visit")
		}
		return
	}
	response.Success(c, http.StatusOK, v)
}
