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
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// Topologias suportadas do Versioner
const (
	VersionerModePerClient = "per-client"
	VersionerModeBulk      = "bulk"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
	Sheets      Sheets      `mapstructure:",squash"`
	Versioner   Versioner   `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	RefreshSync RefreshSync `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	ClientsFile string      `mapstructure:"clients_file"`

	Clients []domain.ClientProfile `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Google struct {
	CredentialsJSON string `mapstructure:"google_credentials_json"`
}

type Sheets struct {
	ColumnRange  string `mapstructure:"sheets_column_range"`
	HeaderRows   int    `mapstructure:"sheets_header_rows"`
	DefaultSheet string `mapstructure:"sheets_default_sheet"`
}

type Versioner struct {
	URL          string        `mapstructure:"versioner_url"`
	Mode         string        `mapstructure:"versioner_mode"`
	BulkPath     string        `mapstructure:"versioner_bulk_path"`
	Timeout      time.Duration `mapstructure:"versioner_timeout"`
	ProbeTimeout time.Duration `mapstructure:"versioner_probe_timeout"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

type RefreshSync struct {
	CronSchedule         string `mapstructure:"refresh_sync_cron"`
	Enabled              bool   `mapstructure:"refresh_sync_enabled"`
	MaxConcurrentFetches int    `mapstructure:"refresh_max_concurrent_fetches"`
}

type Auth struct {
	RefreshSecret string `mapstructure:"refresh_auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("GOOGLE_CREDENTIALS_JSON", "")

	viper.SetDefault("SHEETS_COLUMN_RANGE", "A:S")     // Colunas A-S da planilha de métricas
	viper.SetDefault("SHEETS_HEADER_ROWS", 2)          // Duas linhas de cabeçalho
	viper.SetDefault("SHEETS_DEFAULT_SHEET", "Sheet1") // Aba usada quando não é possível descobrir a primeira

	viper.SetDefault("VERSIONER_URL", "http://versioner.cloud.c2m")
	viper.SetDefault("VERSIONER_MODE", VersionerModePerClient)
	viper.SetDefault("VERSIONER_BULK_PATH", "/api/versions")
	viper.SetDefault("VERSIONER_TIMEOUT", "10s")
	viper.SetDefault("VERSIONER_PROBE_TIMEOUT", "5s")

	viper.SetDefault("CACHE_TTL", "24h")

	viper.SetDefault("REFRESH_SYNC_CRON", "0 5 * * *")    // Todos os dias às 5h da manhã
	viper.SetDefault("REFRESH_SYNC_ENABLED", true)        // Atualização diária automática
	viper.SetDefault("REFRESH_MAX_CONCURRENT_FETCHES", 0) // 0 = sem limite
	viper.SetDefault("REFRESH_AUTH_SECRET", "")           // Vazio = atualização manual sem autenticação
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("CLIENTS_FILE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Versioner.URL = strings.TrimRight(config.Versioner.URL, "/")

	if config.Versioner.Mode != VersionerModePerClient && config.Versioner.Mode != VersionerModeBulk {
		return nil, fmt.Errorf("config: VERSIONER_MODE inválido: %s", config.Versioner.Mode)
	}

	if config.ClientsFile != "" {
		config.Clients, err = LoadClients(config.ClientsFile)
		if err != nil {
			return nil, err
		}
	} else {
		config.Clients = DefaultClients()
	}

	return config, nil
}

// ClientByID busca o perfil de um cliente configurado
func (c *Config) ClientByID(id string) (domain.ClientProfile, bool) {
	for _, client := range c.Clients {
		if client.ID == id {
			return client, true
		}
	}
	return domain.ClientProfile{}, false
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
