package note

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
	rg.GET("/daily-note/:date", h.Get)
	rg.PUT("/daily-note/:date", h.Put)
}

func (h *Handler) Get(c *gin.Context) {
	n, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), c.Param("date"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load note")
		}
		return
	}
	response.Success(c, http.StatusOK, n)
}

type putNoteRequest struct {
	Content string `json:"content"`
}

func (h *Handler) Put(c *gin.Context) {
	var req putNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	n, err := h.service.Put(c.Request.Context(), c.GetInt64("user_id"), c.Param("date"), req.Content)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save note")
		}
		return
	}
	response.Success(c, http.StatusOK, n)
}
