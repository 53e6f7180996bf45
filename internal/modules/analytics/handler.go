package analytics

import (
	"net/http"

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
	rg.GET("/analytics/performance", h.Performance)
}

func (h *Handler) Performance(c *gin.Context) {
	summary, err := h.service.Performance(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.DefaultQuery("period", "monthly"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute analytics")
		}
		return
	}
	response.Success(c, http.StatusOK, summary)
}
