package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/csvstore"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/tienda-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-cli/internal/interfaces/cli"
	"github.com/jhoicas/tienda-cli/pkg/config"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Stores.DataDir).
		Msg("iniciando")

	stores := cfg.Stores
	products := csvstore.NewProductRepository(stores.ProductsPath(), log)
	customers := csvstore.NewCustomerRepository(stores.CustomersPath(), log)
	sales := csvstore.NewSaleRepository(stores.SalesPath(), products.Store(), stores.JournalPath(), log)
	users := csvstore.NewUserRepository(stores.UsersPath(), log)
	repairs := csvstore.NewRepairRepository(stores.RepairsPath(), log)
	assemblies := csvstore.NewAssemblyRepository(stores.AssembliesPath(), log)

	authUC := auth.NewAuthUseCase(users, auth.Config{
		BootstrapUser:     cfg.Auth.BootstrapUser,
		BootstrapPassword: cfg.Auth.BootstrapPassword,
		MinPasswordLen:    cfg.Auth.MinPasswordLen,
	}, log)

	backup := csvstore.NewBackup(stores.BackupPath(), []string{
		stores.ProductsPath(), stores.CustomersPath(), stores.SalesPath(),
		stores.UsersPath(), stores.RepairsPath(), stores.AssembliesPath(),
	}, log)

	app := cli.New(
		authUC,
		usecase.NewProductUseCase(products, log),
		usecase.NewCustomerUseCase(customers, log),
		usecase.NewSaleUseCase(sales, products, customers, log),
		usecase.NewRepairUseCase(repairs, customers, log),
		usecase.NewAssemblyUseCase(assemblies, customers, log),
		usecase.NewUserUseCase(users, cfg.Auth.MinPasswordLen, log),
		usecase.NewReportUseCase(products, sales, export.NewXMLExporter(), log),
		usecase.NewReceiptUseCase(sales, products, customers, infrapdf.NewReceiptGenerator(cfg.App.Name), log),
		sales.Journal(),
		backup,
		log,
	)

	if err := app.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
