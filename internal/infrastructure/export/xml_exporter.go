// Package export serializa el corte contable de la tienda (catálogo más
// ventas) al XML que consume el sistema contable externo.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/csvstore"
)

// XMLExporter implementa usecase.AccountingXMLExporter con etree.
type XMLExporter struct{}

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// ExportAccounting arma el documento:
//
//	<corte_contable generado="2024-03-01 10:30:00">
//	  <productos>
//	    <producto id="1">
//	      <nombre>Mouse</nombre>
//	      <categoria>Periféricos</categoria>
//	      <marca>Logitech</marca>
//	      <precio_costo>5.00</precio_costo>
//	      <precio_venta>10.00</precio_venta>
//	      <stock>17</stock>
//	    </producto>
//	  </productos>
//	  <ventas>
//	    <venta id="1" producto="1" cliente="1">
//	      <cantidad>3</cantidad>
//	      <total>30.00</total>
//	      <fecha>2024-03-01 10:30:00</fecha>
//	      <cajero>ana</cajero>
//	    </venta>
//	  </ventas>
//	  <resumen transacciones="1" ingreso_total="30.00"/>
//	</corte_contable>
func (e *XMLExporter) ExportAccounting(products []*entity.Product, sales []*entity.Sale) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("corte_contable")
	root.CreateAttr("generado", time.Now().Format(csvstore.TimeLayout))

	productsEl := root.CreateElement("productos")
	for _, p := range products {
		el := productsEl.CreateElement("producto")
		el.CreateAttr("id", strconv.Itoa(p.ID))
		el.CreateElement("nombre").SetText(p.Name)
		el.CreateElement("categoria").SetText(p.Category)
		el.CreateElement("marca").SetText(p.Brand)
		el.CreateElement("precio_costo").SetText(p.CostPrice.StringFixed(2))
		el.CreateElement("precio_venta").SetText(p.SellPrice.StringFixed(2))
		el.CreateElement("stock").SetText(strconv.Itoa(p.Stock))
	}

	salesEl := root.CreateElement("ventas")
	revenue := decimal.Zero
	for _, s := range sales {
		el := salesEl.CreateElement("venta")
		el.CreateAttr("id", strconv.Itoa(s.ID))
		el.CreateAttr("producto", strconv.Itoa(s.ProductID))
		el.CreateAttr("cliente", strconv.Itoa(s.CustomerID))
		el.CreateElement("cantidad").SetText(strconv.Itoa(s.Quantity))
		el.CreateElement("total").SetText(s.TotalPrice.StringFixed(2))
		el.CreateElement("fecha").SetText(s.Date.Format(csvstore.TimeLayout))
		el.CreateElement("cajero").SetText(s.Cashier)
		revenue = revenue.Add(s.TotalPrice)
	}

	resumen := root.CreateElement("resumen")
	resumen.CreateAttr("transacciones", strconv.Itoa(len(sales)))
	resumen.CreateAttr("ingreso_total", revenue.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}

var _ usecase.AccountingXMLExporter = (*XMLExporter)(nil)
