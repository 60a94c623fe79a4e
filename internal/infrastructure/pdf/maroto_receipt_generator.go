// Package pdf implementa la representación gráfica de una orden como recibo A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Orden #NNN + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P. Unit | Subtotal                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  FOOTER: tipo y estado de la orden                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/estudio-stock/internal/application/orders"
	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 173, Green: 20, Blue: 87} // rosa del negocio
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ orders.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	businessName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre del negocio
// que encabeza el recibo.
func NewMarotoReceiptGenerator(businessName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{businessName: businessName}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(order.Reference(), true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y número de orden + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(order *entity.Order) core.Row {
	fecha := order.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(order.Reference(), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre del cliente.
func customerRow(order *entity.Order) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Cliente: "+order.CustomerName, props.Text{Size: 10, Top: 1}),
		),
	)
}

// tableHeaderRow: encabezados de la tabla de líneas.
func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1}

	return row.New(7).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", headerRight)),
		col.New(3).Add(text.New("Subtotal", headerRight)),
	)
}

// tableItemRows: una fila por línea de la orden, con precios en COP.
func tableItemRows(items []entity.OrderItem) []core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := props.Text{Size: 9, Align: align.Right, Top: 1}

	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
			col.New(6).Add(text.New(it.Name, cell)),
			col.New(2).Add(text.New(money.FormatCOP(it.Price), cellRight)),
			col.New(3).Add(text.New(money.FormatCOP(it.Subtotal()), cellRight)),
		))
	}
	return rows
}

// totalRow: total a pagar.
func totalRow(order *entity.Order) core.Row {
	return row.New(9).Add(
		col.New(9).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(money.FormatCOP(order.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

// footerRow: tipo y estado en texto legible.
func footerRow(order *entity.Order) core.Row {
	tipo := "Orden"
	if order.Type == entity.OrderTypeSale {
		tipo = "Venta"
	}
	estado := "Pendiente"
	if order.Completed() {
		estado = "Completada"
	}
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s · %s", tipo, estado), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		),
	)
}
