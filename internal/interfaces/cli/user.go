package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

func (c *CLI) newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Operadores del sistema y sus permisos",
	}
	cmd.AddCommand(
		c.newUserAddCmd(),
		c.newUserListCmd(),
		c.newUserSetPermsCmd(),
		c.newUserDeleteCmd(),
	)
	return cmd
}

// permFlags registra los cinco flags de permiso sobre cmd, apuntando a flags.
func permFlags(cmd *cobra.Command, flags *dto.PermissionFlags) {
	cmd.Flags().BoolVar(&flags.ManageProducts, "products", false, "puede administrar productos")
	cmd.Flags().BoolVar(&flags.ManageCustomers, "customers", false, "puede administrar clientes")
	cmd.Flags().BoolVar(&flags.ManageSales, "sales", false, "puede registrar y consultar ventas")
	cmd.Flags().BoolVar(&flags.ViewReports, "reports", false, "puede ver reportes")
	cmd.Flags().BoolVar(&flags.ManageUsers, "users", false, "puede administrar usuarios")
}

func (c *CLI) newUserAddCmd() *cobra.Command {
	var (
		username, password string
		perms              dto.PermissionFlags
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Alta de operador con sus permisos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.users.Create(c.session, dto.CreateUserRequest{
				Username:    username,
				Password:    password,
				Permissions: perms,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %d creado: %s\n", resp.ID, resp.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "nombre de usuario (único)")
	cmd.Flags().StringVar(&password, "password", "", "clave inicial")
	permFlags(cmd, &perms)
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *CLI) newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listado de operadores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.users.List(c.session)
			if err != nil {
				return err
			}
			printUsers(cmd.OutOrStdout(), resp.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d usuarios\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) newUserSetPermsCmd() *cobra.Command {
	var (
		userID int
		active bool
		perms  dto.PermissionFlags
	)
	cmd := &cobra.Command{
		Use:   "set-perms",
		Short: "Reemplaza el conjunto completo de permisos de un operador",
		Long: "Reemplaza el conjunto completo de permisos y el estado activo de un\n" +
			"operador. Los permisos no mencionados quedan revocados.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.users.SetPermissions(c.session, userID, perms, active)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %d actualizado\n", resp.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "id", 0, "ID del operador")
	cmd.Flags().BoolVar(&active, "active", true, "operador activo (false lo bloquea sin borrarlo)")
	permFlags(cmd, &perms)
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (c *CLI) newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <operador>",
		Short: "Elimina un operador (nunca el propio)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: operador %q no es un ID numérico", domain.ErrValidation, args[0])
			}

			if err := c.users.Delete(c.session, userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario %d eliminado\n", userID)
			return nil
		},
	}
}
