package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reportes de existencias y ventas",
	}
	cmd.AddCommand(
		c.newReportLowStockCmd(),
		c.newReportReorderCmd(),
		c.newReportSalesCmd(),
		c.newReportProfitCmd(),
		c.newReportExportCmd(),
	)
	return cmd
}

func (c *CLI) newReportLowStockCmd() *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "Productos con existencia igual o menor al umbral",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.reports.LowStock(c.session, threshold)
			if err != nil {
				return err
			}
			printStockReport(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d productos en o bajo el umbral %d\n", resp.Count, resp.Threshold)
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "umbral de existencia")
	_ = cmd.MarkFlagRequired("threshold")
	return cmd
}

func (c *CLI) newReportReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder",
		Short: "Productos en o bajo su propio nivel mínimo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.reports.ReorderNeeded(c.session)
			if err != nil {
				return err
			}
			printStockReport(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d productos por reordenar\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) newReportSalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "Resumen global de ventas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.reports.SalesSummary(c.session)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== Sales Summary Report ===")
			fmt.Fprintf(out, "Total Transactions: %d\n", resp.Transactions)
			fmt.Fprintf(out, "Total Units Sold: %d\n", resp.Units)
			fmt.Fprintf(out, "Total Revenue: %s\n", resp.Revenue.StringFixed(2))
			fmt.Fprintf(out, "Average Sale Value: %s\n", resp.Average.StringFixed(2))
			return nil
		},
	}
}

func (c *CLI) newReportProfitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profit",
		Short: "Ingreso contra costo de reposición de lo vendido",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.reports.ProfitAnalysis(c.session)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== Profit Analysis Report ===")
			fmt.Fprintf(out, "Total Transactions: %d\n", resp.Transactions)
			fmt.Fprintf(out, "Total Revenue: %s\n", resp.Revenue.StringFixed(2))
			fmt.Fprintf(out, "Total Cost: %s\n", resp.Cost.StringFixed(2))
			fmt.Fprintf(out, "Total Profit: %s\n", resp.Profit.StringFixed(2))
			fmt.Fprintf(out, "Profit Margin: %s%%\n", resp.MarginPercent.StringFixed(2))
			return nil
		},
	}
}

func (c *CLI) newReportExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta catálogo y ventas a XML contable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			xmlBytes, filename, err := c.reports.ExportAccounting(c.session)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = filename
			}
			if err := os.WriteFile(outPath, xmlBytes, 0o644); err != nil {
				return fmt.Errorf("escribir export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Export escrito en %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "ruta del XML (por omisión, el nombre generado)")
	return cmd
}
