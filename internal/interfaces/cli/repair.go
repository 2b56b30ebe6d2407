package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

func (c *CLI) newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Órdenes de reparación de equipos",
	}
	cmd.AddCommand(
		c.newRepairCreateCmd(),
		c.newRepairListCmd(),
		c.newRepairSetStatusCmd(),
	)
	return cmd
}

func (c *CLI) newRepairCreateCmd() *cobra.Command {
	var (
		customerID      int
		device, problem string
		estimate        string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Recibe un equipo en reparación",
		RunE: func(cmd *cobra.Command, _ []string) error {
			estimateDec, err := parseMoney("estimate", estimate)
			if err != nil {
				return err
			}

			resp, err := c.repairs.Create(c.session, dto.CreateRepairRequest{
				CustomerID:   customerID,
				Device:       device,
				Problem:      problem,
				CostEstimate: estimateDec,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reparación %d recibida: %s (%s)\n", resp.ID, resp.Device, resp.Status)
			return nil
		},
	}

	cmd.Flags().IntVar(&customerID, "customer", 0, "ID del cliente")
	cmd.Flags().StringVar(&device, "device", "", "equipo recibido")
	cmd.Flags().StringVar(&problem, "problem", "", "falla reportada")
	cmd.Flags().StringVar(&estimate, "estimate", "0", "costo estimado")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

func (c *CLI) newRepairListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listado de órdenes de reparación",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.repairs.List()
			if err != nil {
				return err
			}
			printRepairs(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d reparaciones\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) newRepairSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <orden> <estado>",
		Short: "Cambia el estado de una orden",
		Long: "Cambia el estado de una orden de reparación. Estados válidos:\n" +
			"Received, \"In Progress\", Completed, Collected. Al pasar a Completed\n" +
			"se estampa la fecha de término.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repairID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: orden %q no es un ID numérico", domain.ErrValidation, args[0])
			}

			resp, err := c.repairs.UpdateStatus(c.session, repairID, args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reparación %d: %s\n", resp.ID, resp.Status)
			return nil
		},
	}
}
