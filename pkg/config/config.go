package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper
// desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Stores StoreConfig
	Auth   AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// StoreConfig nombra explícitamente la ruta de cada archivo de datos.
// Cada servicio recibe la ruta que le corresponde en su construcción;
// no hay rutas globales implícitas.
type StoreConfig struct {
	DataDir    string // directorio de trabajo de los archivos
	Products   string
	Customers  string
	Sales      string
	Users      string
	Repairs    string
	Assemblies string
	Journal    string // registro de ventas pendientes (write-ahead)
	BackupDir  string
}

// Path devuelve la ruta completa de un archivo dentro de DataDir.
func (s StoreConfig) Path(file string) string {
	return filepath.Join(s.DataDir, file)
}

// ProductsPath y compañía devuelven las rutas completas de cada store.
func (s StoreConfig) ProductsPath() string   { return s.Path(s.Products) }
func (s StoreConfig) CustomersPath() string  { return s.Path(s.Customers) }
func (s StoreConfig) SalesPath() string      { return s.Path(s.Sales) }
func (s StoreConfig) UsersPath() string      { return s.Path(s.Users) }
func (s StoreConfig) RepairsPath() string    { return s.Path(s.Repairs) }
func (s StoreConfig) AssembliesPath() string { return s.Path(s.Assemblies) }
func (s StoreConfig) JournalPath() string    { return s.Path(s.Journal) }
func (s StoreConfig) BackupPath() string     { return s.Path(s.BackupDir) }

// AuthConfig configuración de autenticación.
type AuthConfig struct {
	BootstrapUser     string // usuario administrador inicial
	BootstrapPassword string // clave inicial; cambiarla de inmediato
	MinPasswordLen    int
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// TIENDA_ENV, TIENDA_DATA_DIR, TIENDA_LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "TIENDA_ENV", "development"),
			Name:     getString(v, "TIENDA_NAME", "tienda-cli"),
			LogLevel: getString(v, "TIENDA_LOG_LEVEL", "info"),
		},
		Stores: StoreConfig{
			DataDir:    getString(v, "TIENDA_DATA_DIR", "."),
			Products:   getString(v, "TIENDA_PRODUCTS_FILE", "products.csv"),
			Customers:  getString(v, "TIENDA_CUSTOMERS_FILE", "customers.csv"),
			Sales:      getString(v, "TIENDA_SALES_FILE", "sales.csv"),
			Users:      getString(v, "TIENDA_USERS_FILE", "users.csv"),
			Repairs:    getString(v, "TIENDA_REPAIRS_FILE", "repairs.csv"),
			Assemblies: getString(v, "TIENDA_ASSEMBLIES_FILE", "assemblies.csv"),
			Journal:    getString(v, "TIENDA_JOURNAL_FILE", ".sales_journal"),
			BackupDir:  getString(v, "TIENDA_BACKUP_DIR", "backups"),
		},
		Auth: AuthConfig{
			BootstrapUser:     getString(v, "TIENDA_BOOTSTRAP_USER", "admin"),
			BootstrapPassword: getString(v, "TIENDA_BOOTSTRAP_PASSWORD", "admin"),
			MinPasswordLen:    getInt(v, "TIENDA_MIN_PASSWORD_LEN", 4),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
