// Package pdf genera el recibo de venta imprimible de la tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: nombre de la tienda  │  RECIBO N° + fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + teléfono + email                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P. Unitario | Importe              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  PIE: cajero + leyenda de agradecimiento                     │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorInk   = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorMuted = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type ReceiptGenerator struct {
	storeName string
}

// NewReceiptGenerator construye el generador con el nombre de la tienda que
// encabeza cada recibo.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName}
}

// GenerateReceiptPDF genera el recibo y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	sale *entity.Sale,
	product *entity.Product,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Recibo de venta %d", sale.ID), true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorMuted, Thickness: 0.3}))
	m.AddRows(itemHeaderRow())
	m.AddRows(itemRow(sale, product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorMuted, Thickness: 0.3}))
	m.AddRows(totalRow(sale))
	m.AddRows(line.NewRow(6))
	for _, r := range footerRows(sale) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y folio + fecha de la venta (der).
func headerRow(storeName string, sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorInk, Top: 1,
			}),
			text.New("Venta e insumos de computación", props.Text{
				Size: 8, Top: 10, Color: colorMuted,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorInk, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %04d", sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorMuted,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorInk, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				nonEmpty(customer.Phone, "—"),
				nonEmpty(customer.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorMuted}),
		),
	)
}

// itemHeaderRow: cabecera de la tabla del ítem vendido.
func itemHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorInk, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P. Unitario", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// itemRow: la línea de la venta. Una venta referencia un solo producto.
func itemRow(sale *entity.Sale, product *entity.Product) core.Row {
	detail := product.Name
	if product.Brand != "" {
		detail += " · " + product.Brand
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", sale.Quantity),
			props.Text{Size: 9, Align: align.Center, Top: 1},
		)),
		col.New(6).Add(text.New(
			detail,
			props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			"$"+unitPrice(sale, product).StringFixed(2),
			props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"$"+sale.TotalPrice.StringFixed(2),
			props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total a pagar alineado a la derecha.
func totalRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorInk, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("$"+sale.TotalPrice.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorInk, Top: 2, Right: 1,
		})),
	)
}

// footerRows: cajero que atendió y leyenda de cierre.
func footerRows(sale *entity.Sale) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Atendido por: "+sale.Cashier, props.Text{
				Size: 8, Color: colorMuted, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Gracias por su compra. Conserve este recibo para cambios y garantías.", props.Text{
				Size: 8, Align: align.Center, Color: colorMuted, Top: 3,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// unitPrice recupera el precio unitario histórico desde la propia venta; el
// precio de catálogo solo entra como respaldo ante registros heredados sin
// cantidad.
func unitPrice(sale *entity.Sale, product *entity.Product) decimal.Decimal {
	if sale.Quantity > 0 {
		return sale.TotalPrice.Div(decimal.NewFromInt(int64(sale.Quantity)))
	}
	return product.SellPrice
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

var _ usecase.ReceiptPDFGenerator = (*ReceiptGenerator)(nil)
