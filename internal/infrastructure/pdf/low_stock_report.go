// Package pdf genera el reporte imprimible de alertas de stock bajo.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + empresa          │  Fecha de generación + total    │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días | Proveedor   │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  FOOTER: nota sobre el cálculo de días                               │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// LowStockReportGenerator implementa alerts.ReportGenerator usando Maroto v2.
type LowStockReportGenerator struct{}

// NewLowStockReportGenerator construye el generador.
func NewLowStockReportGenerator() *LowStockReportGenerator { return &LowStockReportGenerator{} }

// GenerateLowStockPDF genera el PDF y devuelve sus bytes.
func (g *LowStockReportGenerator) GenerateLowStockPDF(
	_ context.Context,
	companyID int64,
	generatedAt time.Time,
	report *dto.LowStockAlertsResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Alertas de stock bajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyID, generatedAt, report.TotalAlerts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if len(report.Alerts) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin productos por debajo del umbral.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Alerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Días hasta agotarse = stock actual / consumo diario promedio del período de consulta "+
				"(todas las bodegas, mínimo 1 unidad por día).",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(companyID int64, generatedAt time.Time, total int) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("ALERTAS DE STOCK BAJO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Empresa #%d", companyID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d alertas", total), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 1, align.Left),
		h("Producto", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Días", 1, align.Right),
		h("Proveedor", 3, align.Left),
	)
}

// tableDetailRows: una fila por alerta (producto, bodega, proveedor).
func tableDetailRows(alerts []dto.LowStockAlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		days := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if a.DaysUntilStockout == 0 {
			days.Style = fontstyle.Bold
			days.Color = colorAlert
		}
		result = append(result, row.New(9).Add(
			col.New(1).Add(text.New(a.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(a.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(a.WarehouseName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(a.CurrentStock, 10), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(a.Threshold), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(a.DaysUntilStockout, 10), days)),
			col.New(3).Add(
				text.New(a.Supplier.Name, props.Text{Size: 8, Top: 1, Left: 1}),
				text.New(nonEmpty(a.Supplier.ContactEmail, "—"), props.Text{Size: 6.5, Top: 5, Left: 1, Color: colorGray}),
			),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
