package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPasswdCmd() *cobra.Command {
	var oldPassword, newPassword string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Cambia la clave del operador autenticado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.auth.ChangePassword(c.session, oldPassword, newPassword); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Clave actualizada")
			return nil
		},
	}

	cmd.Flags().StringVar(&oldPassword, "old", "", "clave actual")
	cmd.Flags().StringVar(&newPassword, "new", "", "clave nueva")
	_ = cmd.MarkFlagRequired("old")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

// El respaldo no exige permiso; cualquier operador autenticado puede dispararlo.
func (c *CLI) newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copia los archivos de datos a un directorio con fecha",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := c.backup.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Respaldo creado en %s\n", dir)
			return nil
		},
	}
}
