package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

func (c *CLI) newSaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Registro y consulta de ventas",
	}
	cmd.AddCommand(
		c.newSaleCreateCmd(),
		c.newSaleListCmd(),
		c.newSaleReceiptCmd(),
	)
	return cmd
}

func (c *CLI) newSaleCreateCmd() *cobra.Command {
	var (
		productID, customerID, qty                  int
		cashier                                     string
		custName, custPhone, custEmail, custAddress string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Registra una venta y descuenta stock",
		Long: "Registra una venta. Con --customer 0 y --customer-name presente, el\n" +
			"cliente se da de alta en la misma operación. Sin --cashier, queda como\n" +
			"cajero el usuario autenticado.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := dto.CreateSaleRequest{
				ProductID:  productID,
				CustomerID: customerID,
				Quantity:   qty,
				Cashier:    cashier,
			}
			if customerID == 0 {
				in.NewCustomer = &dto.CreateCustomerRequest{
					Name:    custName,
					Phone:   custPhone,
					Email:   custEmail,
					Address: custAddress,
				}
			}

			resp, err := c.sales.Create(c.session, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Venta %d registrada: producto %d x%d, total %s, cajero %s\n",
				resp.ID, resp.ProductID, resp.Quantity, resp.TotalPrice.StringFixed(2), resp.Cashier)
			return nil
		},
	}

	cmd.Flags().IntVar(&productID, "product", 0, "ID del producto vendido")
	cmd.Flags().IntVar(&customerID, "customer", 0, "ID del cliente (0 da de alta uno nuevo)")
	cmd.Flags().IntVar(&qty, "qty", 0, "unidades vendidas")
	cmd.Flags().StringVar(&cashier, "cashier", "", "cajero que atendió (por omisión, el usuario autenticado)")
	cmd.Flags().StringVar(&custName, "customer-name", "", "nombre del cliente nuevo (con --customer 0)")
	cmd.Flags().StringVar(&custPhone, "customer-phone", "", "teléfono del cliente nuevo")
	cmd.Flags().StringVar(&custEmail, "customer-email", "", "correo del cliente nuevo")
	cmd.Flags().StringVar(&custAddress, "customer-address", "", "dirección del cliente nuevo")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}

func (c *CLI) newSaleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listado de ventas con totales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.sales.List(c.session)
			if err != nil {
				return err
			}
			printSales(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "Summary: %d sales, Total Revenue: %s\n",
				resp.Count, resp.TotalRevenue.StringFixed(2))
			return nil
		},
	}
}

func (c *CLI) newSaleReceiptCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "receipt <venta>",
		Short: "Genera el recibo PDF de una venta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saleID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: venta %q no es un ID numérico", domain.ErrValidation, args[0])
			}

			pdfBytes, filename, err := c.receipts.DownloadReceiptPDF(cmd.Context(), c.session, saleID)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = filename
			}
			if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("escribir recibo: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recibo escrito en %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "ruta del PDF (por omisión, el nombre generado)")
	return cmd
}
