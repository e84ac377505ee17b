package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	Demo         Demo         `mapstructure:",squash"`
	PlatformSync PlatformSync `mapstructure:",squash"`
	Shop         Shop         `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN               string `mapstructure:"-"`
	Driver            string `mapstructure:"database_driver"`
	Password          string `mapstructure:"database_password"`
	URL               string `mapstructure:"database_url"`
	User              string `mapstructure:"database_user"`
	SSLMode           string `mapstructure:"database_sslmode"`
	MigrationsEnabled bool   `mapstructure:"database_migrations_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"timezone"`
}

// Location retorna o fuso usado para definir "hoje" nos filtros e na projeção
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido %q, usando horário local: %v", a.Timezone, err)
		return time.Local
	}

	return loc
}

// Storage define onde os registros são persistidos: memory ou postgres
type Storage struct {
	Driver string `mapstructure:"storage_driver"`
}

// Demo popula os repositórios em memória com a loja de demonstração
type Demo struct {
	Enabled bool `mapstructure:"demo_enabled"`
}

type PlatformSync struct {
	CronSchedule string `mapstructure:"platform_sync_cron"`
	LookbackDays int    `mapstructure:"platform_sync_lookback_days"`
	Enabled      bool   `mapstructure:"platform_sync_enabled"`
	ShopName     string `mapstructure:"platform_sync_shop_name"` // Produto que recebe os resumos diários
}

const (
	ShopClientDemo = "demo"
	ShopClientHTTP = "http"
)

// Shop configura o cliente da API de pedidos da loja
type Shop struct {
	Client      string `mapstructure:"shop_client"`
	URL         string `mapstructure:"shop_url"`
	AccessToken string `mapstructure:"shop_access_token"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shop_pnl")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MIGRATIONS_ENABLED", true)

	viper.SetDefault("STORAGE_DRIVER", StorageMemory)

	viper.SetDefault("DEMO_ENABLED", true)

	viper.SetDefault("PLATFORM_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("PLATFORM_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar pedidos
	viper.SetDefault("PLATFORM_SYNC_ENABLED", false)    // Habilitar sincronização com a loja
	viper.SetDefault("PLATFORM_SYNC_SHOP_NAME", "Demo Store")

	viper.SetDefault("SHOP_CLIENT", ShopClientDemo)
	viper.SetDefault("SHOP_URL", "https://shop.example.com/api/v1")
	viper.SetDefault("SHOP_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("storage driver inválido: %q", c.Storage.Driver)
	}

	switch c.Shop.Client {
	case ShopClientDemo, ShopClientHTTP:
	default:
		return fmt.Errorf("shop client inválido: %q", c.Shop.Client)
	}

	if c.PlatformSync.LookbackDays <= 0 {
		return fmt.Errorf("platform_sync_lookback_days deve ser maior que zero")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
