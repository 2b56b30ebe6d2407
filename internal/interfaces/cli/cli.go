// Package cli implementa la capa de presentación del sistema: un árbol de
// comandos cobra con una operación nombrada por cada caso de uso. Cada flag
// llega ya tipado; la validación de negocio vive en los use cases. Las tablas
// se imprimen por stdout y el logging estructurado va por stderr, de modo que
// la salida siga siendo procesable con herramientas de línea de comandos.
//
// Toda invocación autentica primero: --username/--password o las variables
// TIENDA_USERNAME/TIENDA_PASSWORD. La sesión resultante se pasa a cada use
// case, que aplica su propio permiso.
package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Recoverer completa una venta a medio escribir si quedó un registro
// pendiente de la corrida anterior. Se ejecuta antes de atender comandos.
type Recoverer interface {
	Recover() error
}

// BackupRunner copia los archivos de datos a un directorio de respaldo y
// devuelve la ruta creada.
type BackupRunner interface {
	Run() (string, error)
}

// CLI agrupa los use cases y el estado de sesión del proceso. Se construye
// una vez en main y atiende una invocación.
type CLI struct {
	auth       *auth.AuthUseCase
	products   *usecase.ProductUseCase
	customers  *usecase.CustomerUseCase
	sales      *usecase.SaleUseCase
	repairs    *usecase.RepairUseCase
	assemblies *usecase.AssemblyUseCase
	users      *usecase.UserUseCase
	reports    *usecase.ReportUseCase
	receipts   *usecase.ReceiptUseCase
	journal    Recoverer
	backup     BackupRunner
	log        *logger.Logger

	v       *viper.Viper
	session *auth.Session
}

// New construye el CLI con sus dependencias ya cableadas.
func New(
	authUC *auth.AuthUseCase,
	products *usecase.ProductUseCase,
	customers *usecase.CustomerUseCase,
	sales *usecase.SaleUseCase,
	repairs *usecase.RepairUseCase,
	assemblies *usecase.AssemblyUseCase,
	users *usecase.UserUseCase,
	reports *usecase.ReportUseCase,
	receipts *usecase.ReceiptUseCase,
	journal Recoverer,
	backup BackupRunner,
	log *logger.Logger,
) *CLI {
	v := viper.New()
	v.SetEnvPrefix("TIENDA")
	v.AutomaticEnv()

	return &CLI{
		auth:       authUC,
		products:   products,
		customers:  customers,
		sales:      sales,
		repairs:    repairs,
		assemblies: assemblies,
		users:      users,
		reports:    reports,
		receipts:   receipts,
		journal:    journal,
		backup:     backup,
		log:        log,
		v:          v,
	}
}

// Execute arma el árbol de comandos, procesa args y escribe tablas en out y
// diagnósticos de cobra en errOut. Devuelve el error de dominio tal cual para
// que main lo reporte con código de salida 1.
func (c *CLI) Execute(args []string, out, errOut io.Writer) error {
	root := c.buildRoot()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}

func (c *CLI) buildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "tienda",
		Short: "Gestión de inventario, ventas y servicios del taller",
		Long: "tienda administra el catálogo, clientes, ventas, reparaciones y\n" +
			"ensambles de una tienda de cómputo, con persistencia en archivos\n" +
			"CSV planos y permisos por operador.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.PersistentFlags().StringP("username", "u", "", "usuario operador (env TIENDA_USERNAME)")
	root.PersistentFlags().StringP("password", "p", "", "clave del operador (env TIENDA_PASSWORD)")
	_ = c.v.BindPFlag("username", root.PersistentFlags().Lookup("username"))
	_ = c.v.BindPFlag("password", root.PersistentFlags().Lookup("password"))

	root.AddCommand(
		c.newProductCmd(),
		c.newCustomerCmd(),
		c.newSaleCmd(),
		c.newRepairCmd(),
		c.newAssemblyCmd(),
		c.newReportCmd(),
		c.newUserCmd(),
		c.newPasswdCmd(),
		c.newBackupCmd(),
	)
	return root
}

// preRun recupera el journal de ventas y autentica antes de cualquier
// comando. La ayuda queda fuera para poder consultarla sin credenciales.
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	if err := c.journal.Recover(); err != nil {
		return fmt.Errorf("recuperar journal de ventas: %w", err)
	}
	if err := c.auth.EnsureBootstrap(); err != nil {
		return err
	}

	sess, err := c.auth.Login(c.v.GetString("username"), c.v.GetString("password"))
	if err != nil {
		return err
	}
	c.session = sess
	return nil
}

// parseMoney convierte el valor de un flag monetario a decimal, con el
// nombre del flag en el mensaje de error.
func parseMoney(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: --%s %q no es un monto válido", domain.ErrValidation, flag, value)
	}
	return d, nil
}
