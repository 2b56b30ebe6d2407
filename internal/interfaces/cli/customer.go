package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
)

func (c *CLI) newCustomerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Registro de clientes",
	}
	cmd.AddCommand(
		c.newCustomerAddCmd(),
		c.newCustomerListCmd(),
		c.newCustomerSearchCmd(),
	)
	return cmd
}

func (c *CLI) newCustomerAddCmd() *cobra.Command {
	var name, phone, email, address string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Alta de cliente",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.customers.Create(c.session, dto.CreateCustomerRequest{
				Name:    name,
				Phone:   phone,
				Email:   email,
				Address: address,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cliente %d registrado: %s\n", resp.ID, resp.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "nombre del cliente")
	cmd.Flags().StringVar(&phone, "phone", "", "teléfono")
	cmd.Flags().StringVar(&email, "email", "", "correo electrónico")
	cmd.Flags().StringVar(&address, "address", "", "dirección")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) newCustomerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listado completo de clientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.customers.List()
			if err != nil {
				return err
			}
			printCustomers(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d clientes\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) newCustomerSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <texto>",
		Short: "Busca por nombre, teléfono o correo, sin distinguir acentos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.customers.Search(args[0])
			if err != nil {
				return err
			}
			printCustomers(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d coincidencias\n", resp.Count)
			return nil
		},
	}
}
