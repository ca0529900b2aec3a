package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/alerts"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// AlertHandler expone las alertas de stock bajo por empresa.
type AlertHandler struct {
	lowStock *alerts.LowStockUseCase
	report   *alerts.ReportUseCase
	log      *logger.Logger
}

// NewAlertHandler construye el handler. report puede ser nil (sin PDF).
func NewAlertHandler(lowStock *alerts.LowStockUseCase, report *alerts.ReportUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{lowStock: lowStock, report: report, log: log}
}

// GetLowStockAlerts godoc
// @Summary      Alertas de stock bajo
// @Description  Productos por debajo de su umbral con ventas recientes, uno por (producto, bodega, proveedor),
//
//	con días estimados hasta agotarse.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStockAlerts(c *fiber.Ctx) error {
	companyID, ok := parseCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id debe ser un entero"})
	}
	out, err := h.lowStock.GetLowStockAlerts(c.UserContext(), companyID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", GetUserID(c)).Int64("company_id", companyID).Msg("low-stock alerts")
		return writeError(c, err)
	}
	h.log.Debug().Int64("company_id", companyID).Int("total_alerts", out.TotalAlerts).Msg("low-stock alerts")
	return c.JSON(out)
}

// DownloadLowStockPDF godoc
// @Summary      Reporte PDF de stock bajo
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/report.pdf [get]
func (h *AlertHandler) DownloadLowStockPDF(c *fiber.Ctx) error {
	companyID, ok := parseCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id debe ser un entero"})
	}
	pdf, filename, err := h.report.DownloadLowStockPDF(c.UserContext(), companyID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", GetUserID(c)).Int64("company_id", companyID).Msg("low-stock report")
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func parseCompanyID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
