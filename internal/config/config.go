package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Origens aceitas para o conjunto de dados mensal
const (
	SeedSourceEmbedded = "embedded"
	SeedSourceFile     = "file"
	SeedSourcePostgres = "postgres"
)

const monthsPerYear = 12

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Seed     Seed     `mapstructure:",squash"`
	Format   Format   `mapstructure:",squash"`
	Margin   Margin   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	QueryTimeout time.Duration `mapstructure:"database_query_timeout"`
	Table        string        `mapstructure:"database_table"`
}

type Seed struct {
	Source     string   `mapstructure:"seed_source"`
	File       string   `mapstructure:"seed_file"`
	MonthNames []string `mapstructure:"month_names"`
}

type Format struct {
	CurrencyPrefix     string `mapstructure:"currency_prefix"`
	ThousandsSeparator string `mapstructure:"thousands_separator"`
	DecimalSeparator   string `mapstructure:"decimal_separator"`
}

type Margin struct {
	FavorableThreshold   float64 `mapstructure:"margin_favorable_threshold"`
	UnfavorableThreshold float64 `mapstructure:"margin_unfavorable_threshold"`
	PercentDigits        int32   `mapstructure:"percent_digits"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("SEED_SOURCE", SeedSourceEmbedded)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("MONTH_NAMES", "") // vazio usa os meses em português

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/oficina?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
	v.SetDefault("DATABASE_QUERY_TIMEOUT", "5s")
	v.SetDefault("DATABASE_TABLE", "monthly_financials")

	v.SetDefault("CURRENCY_PREFIX", "R$ ")
	v.SetDefault("THOUSANDS_SEPARATOR", ".")
	v.SetDefault("DECIMAL_SEPARATOR", ",")

	v.SetDefault("MARGIN_FAVORABLE_THRESHOLD", 50)
	v.SetDefault("MARGIN_UNFAVORABLE_THRESHOLD", 30)
	v.SetDefault("PERCENT_DIGITS", 1)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(v)
}

// Load decodifica a configuração a partir de uma instância do viper já preparada
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: error decoding")
	}

	config.Server.CorsAllowedOrigins = trimAll(config.Server.CorsAllowedOrigins)
	config.Seed.MonthNames = trimAll(config.Seed.MonthNames)
	config.Seed.Source = strings.ToLower(strings.TrimSpace(config.Seed.Source))

	config.Database.DSN = config.Database.BuildDSN()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (d Database) BuildDSN() string {
	return d.Driver + "://" + d.User + ":" + d.Password + "@" + d.URL
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || strings.EqualFold(c.App.Env, "development")
}

func (c *Config) Validate() error {
	if c.Format.DecimalSeparator == "" {
		return errors.Wrap(ErrInvalidConfig, "DECIMAL_SEPARATOR não pode ser vazio")
	}

	if c.Format.DecimalSeparator == c.Format.ThousandsSeparator {
		return errors.Wrapf(ErrInvalidConfig,
			"separadores de milhar e decimal iguais (%q)", c.Format.DecimalSeparator)
	}

	if c.Margin.UnfavorableThreshold > c.Margin.FavorableThreshold {
		return errors.Wrapf(ErrInvalidConfig,
			"limite desfavorável %.1f maior que o favorável %.1f",
			c.Margin.UnfavorableThreshold, c.Margin.FavorableThreshold)
	}

	if c.Margin.PercentDigits < 0 {
		return errors.Wrapf(ErrInvalidConfig, "PERCENT_DIGITS negativo: %d", c.Margin.PercentDigits)
	}

	switch c.Seed.Source {
	case SeedSourceEmbedded, SeedSourcePostgres:
	case SeedSourceFile:
		if c.Seed.File == "" {
			return errors.Wrap(ErrInvalidConfig, "SEED_FILE é obrigatório quando SEED_SOURCE=file")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "SEED_SOURCE desconhecido: %q", c.Seed.Source)
	}

	if n := len(c.Seed.MonthNames); n != 0 && n != monthsPerYear {
		return errors.Wrapf(ErrInvalidConfig, "MONTH_NAMES deve ter %d nomes, recebeu %d", monthsPerYear, n)
	}

	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
