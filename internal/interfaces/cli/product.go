package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
)

func (c *CLI) newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Catálogo de productos",
	}
	cmd.AddCommand(
		c.newProductAddCmd(),
		c.newProductListCmd(),
		c.newProductSearchCmd(),
		c.newProductRestockCmd(),
	)
	return cmd
}

func (c *CLI) newProductAddCmd() *cobra.Command {
	var (
		name, category, brand string
		cost, price           string
		stock, minLevel       int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Alta de producto en catálogo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			costDec, err := parseMoney("cost", cost)
			if err != nil {
				return err
			}
			priceDec, err := parseMoney("price", price)
			if err != nil {
				return err
			}

			resp, err := c.products.Create(c.session, dto.CreateProductRequest{
				Name:          name,
				Category:      category,
				Brand:         brand,
				CostPrice:     costDec,
				SellPrice:     priceDec,
				Stock:         stock,
				MinStockLevel: minLevel,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Producto %d registrado: %s\n", resp.ID, resp.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "nombre del producto")
	cmd.Flags().StringVar(&category, "category", "", "categoría")
	cmd.Flags().StringVar(&brand, "brand", "", "marca")
	cmd.Flags().StringVar(&cost, "cost", "0", "precio de costo")
	cmd.Flags().StringVar(&price, "price", "0", "precio de venta")
	cmd.Flags().IntVar(&stock, "stock", 0, "existencia inicial")
	cmd.Flags().IntVar(&minLevel, "min", 0, "nivel mínimo antes de reordenar")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) newProductListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listado completo del catálogo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.products.List()
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d productos\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) newProductSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <texto>",
		Short: "Busca por nombre, categoría o marca, sin distinguir acentos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.products.Search(args[0])
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d coincidencias\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) newProductRestockCmd() *cobra.Command {
	var (
		productID int
		qty       int
	)
	cmd := &cobra.Command{
		Use:   "restock",
		Short: "Ajusta la existencia de un producto (delta positivo o negativo)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.products.AdjustStock(c.session, productID, qty)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Producto %d: stock %d\n", resp.ID, resp.Stock)
			return nil
		},
	}

	cmd.Flags().IntVar(&productID, "id", 0, "ID del producto")
	cmd.Flags().IntVar(&qty, "qty", 0, "unidades a sumar (negativo descuenta)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}
