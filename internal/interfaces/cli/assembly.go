package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

func (c *CLI) newAssemblyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assembly",
		Short: "Encargos de ensamble de equipos",
	}
	cmd.AddCommand(
		c.newAssemblyCreateCmd(),
		c.newAssemblyListCmd(),
		c.newAssemblySetStatusCmd(),
	)
	return cmd
}

func (c *CLI) newAssemblyCreateCmd() *cobra.Command {
	var (
		customerID  int
		description string
		price       string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Registra un encargo de ensamble",
		RunE: func(cmd *cobra.Command, _ []string) error {
			priceDec, err := parseMoney("price", price)
			if err != nil {
				return err
			}

			resp, err := c.assemblies.Create(c.session, dto.CreateAssemblyRequest{
				CustomerID:  customerID,
				Description: description,
				Price:       priceDec,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ensamble %d registrado: %s (%s)\n", resp.ID, resp.Description, resp.Status)
			return nil
		},
	}

	cmd.Flags().IntVar(&customerID, "customer", 0, "ID del cliente")
	cmd.Flags().StringVar(&description, "description", "", "descripción del equipo a ensamblar")
	cmd.Flags().StringVar(&price, "price", "0", "precio acordado")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func (c *CLI) newAssemblyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listado de encargos de ensamble",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.assemblies.List()
			if err != nil {
				return err
			}
			printAssemblies(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d ensambles\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) newAssemblySetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <encargo> <estado>",
		Short: "Cambia el estado de un encargo",
		Long: "Cambia el estado de un encargo de ensamble. Estados válidos:\n" +
			"Pending, Assembled, Delivered.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assemblyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: encargo %q no es un ID numérico", domain.ErrValidation, args[0])
			}

			resp, err := c.assemblies.UpdateStatus(c.session, assemblyID, args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ensamble %d: %s\n", resp.ID, resp.Status)
			return nil
		},
	}
}
