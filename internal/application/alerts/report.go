package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
)

// ReportGenerator puerto para renderizar el reporte de stock bajo (implementado en infraestructura/pdf).
type ReportGenerator interface {
	GenerateLowStockPDF(ctx context.Context, companyID int64, generatedAt time.Time, report *dto.LowStockAlertsResponse) ([]byte, error)
}

// ReportUseCase genera el reporte PDF de alertas de stock bajo de una empresa.
type ReportUseCase struct {
	alerts    *LowStockUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(alerts *LowStockUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{alerts: alerts, generator: generator}
}

// DownloadLowStockPDF devuelve (pdfBytes, filename, nil). Una empresa sin alertas produce
// un reporte con la tabla vacía.
func (uc *ReportUseCase) DownloadLowStockPDF(ctx context.Context, companyID int64) ([]byte, string, error) {
	generatedAt := uc.alerts.now()
	evaluated, err := uc.alerts.evaluator.Evaluate(ctx, companyID, generatedAt)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateLowStockPDF(ctx, companyID, generatedAt, Assemble(evaluated))
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar reporte de stock bajo: %w", err)
	}
	filename := fmt.Sprintf("stock-bajo-%d-%s.pdf", companyID, generatedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
