package export_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/export"
)

func TestExportAccounting_EstructuraDelDocumento(t *testing.T) {
	products := []*entity.Product{
		{
			ID:            1,
			Name:          "Mouse",
			Category:      "Periféricos",
			Brand:         "Logitech",
			CostPrice:     decimal.RequireFromString("5.00"),
			SellPrice:     decimal.RequireFromString("10.00"),
			Stock:         17,
			MinStockLevel: 5,
		},
	}
	sales := []*entity.Sale{
		{
			ID:         1,
			ProductID:  1,
			CustomerID: 1,
			Quantity:   3,
			TotalPrice: decimal.RequireFromString("30.00"),
			Date:       time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local),
			Cashier:    "ana",
		},
		{
			ID:         2,
			ProductID:  1,
			CustomerID: 1,
			Quantity:   2,
			TotalPrice: decimal.RequireFromString("20.00"),
			Date:       time.Date(2024, 3, 2, 16, 0, 0, 0, time.Local),
			Cashier:    "ana",
		},
	}

	out, err := export.NewXMLExporter().ExportAccounting(products, sales)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out), "el documento debe volver a parsear")

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "corte_contable", root.Tag)
	assert.NotEmpty(t, root.SelectAttrValue("generado", ""))

	productos := root.SelectElement("productos")
	require.NotNil(t, productos)
	require.Len(t, productos.SelectElements("producto"), 1)
	prod := productos.SelectElements("producto")[0]
	assert.Equal(t, "1", prod.SelectAttrValue("id", ""))
	assert.Equal(t, "Mouse", prod.SelectElement("nombre").Text())
	assert.Equal(t, "Periféricos", prod.SelectElement("categoria").Text())
	assert.Equal(t, "5.00", prod.SelectElement("precio_costo").Text())
	assert.Equal(t, "17", prod.SelectElement("stock").Text())

	ventas := root.SelectElement("ventas")
	require.NotNil(t, ventas)
	require.Len(t, ventas.SelectElements("venta"), 2)
	venta := ventas.SelectElements("venta")[0]
	assert.Equal(t, "1", venta.SelectAttrValue("producto", ""))
	assert.Equal(t, "3", venta.SelectElement("cantidad").Text())
	assert.Equal(t, "30.00", venta.SelectElement("total").Text())
	assert.Equal(t, "2024-03-01 10:30:00", venta.SelectElement("fecha").Text())
	assert.Equal(t, "ana", venta.SelectElement("cajero").Text())

	resumen := root.SelectElement("resumen")
	require.NotNil(t, resumen)
	assert.Equal(t, "2", resumen.SelectAttrValue("transacciones", ""))
	assert.Equal(t, "50.00", resumen.SelectAttrValue("ingreso_total", ""))
}

func TestExportAccounting_SinDatos(t *testing.T) {
	out, err := export.NewXMLExporter().ExportAccounting(nil, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Empty(t, root.SelectElement("productos").SelectElements("producto"))
	assert.Empty(t, root.SelectElement("ventas").SelectElements("venta"))

	resumen := root.SelectElement("resumen")
	require.NotNil(t, resumen)
	assert.Equal(t, "0", resumen.SelectAttrValue("transacciones", ""))
	assert.Equal(t, "0.00", resumen.SelectAttrValue("ingreso_total", ""))
}
