package report

import (
	"fmt"
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
	rg.GET("/report/pdf/period/:period", h.PeriodPDF)
	rg.GET("/report/excel/period/:period", h.PeriodExcel)
	rg.GET("/report/pdf/daily/:day/:date", h.DailyPDF)
}

func (h *Handler) PeriodPDF(c *gin.Context) {
	r, err := h.service.BuildPeriodReport(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.Param("period"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		reportError(c, err)
		return
	}

	data, err := RenderPeriodPDF(r)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render report")
		return
	}

	filename := fmt.Sprintf("report_%s_%s_%s.pdf", r.Period, r.StartDate, r.EndDate)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) PeriodExcel(c *gin.Context) {
	r, err := h.service.BuildPeriodReport(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.Param("period"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		reportError(c, err)
		return
	}

	data, err := RenderPeriodExcel(r)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render report")
		return
	}

	filename := fmt.Sprintf("report_%s_%s_%s.xlsx", r.Period, r.StartDate, r.EndDate)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) DailyPDF(c *gin.Context) {
	r, err := h.service.BuildDailyReport(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.Param("day"),
		c.Param("date"),
	)
	if err != nil {
		reportError(c, err)
		return
	}

	data, err := RenderDailyPDF(r)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render report")
		return
	}

	filename := fmt.Sprintf("daily_report_%s.pdf", r.Date)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func reportError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
	}
}
