package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Exchange  Exchange  `mapstructure:",squash"`
	Ingestion Ingestion `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Exchange configura o feed externo de cotação e os valores iniciais dos dois
// canais de câmbio (custo e receita)
type Exchange struct {
	FeedURL            string  `mapstructure:"exchange_feed_url"`
	BaseCurrency       string  `mapstructure:"exchange_base_currency"`
	ForeignCurrency    string  `mapstructure:"exchange_foreign_currency"`
	CronSchedule       string  `mapstructure:"exchange_sync_cron"`
	SyncEnabled        bool    `mapstructure:"exchange_sync_enabled"`
	DefaultCostRate    float64 `mapstructure:"exchange_default_cost_rate"`
	DefaultRevenueRate float64 `mapstructure:"exchange_default_revenue_rate"`
}

// Ingestion configura o endpoint de ingestão consumido pelo exportador
type Ingestion struct {
	Token string `mapstructure:"ingestion_token"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_finance")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Feed de cotação (AwesomeAPI, par USD-BRL)
	viper.SetDefault("EXCHANGE_FEED_URL", "https://economia.awesomeapi.com.br")
	viper.SetDefault("EXCHANGE_BASE_CURRENCY", "BRL")
	viper.SetDefault("EXCHANGE_FOREIGN_CURRENCY", "USD")
	viper.SetDefault("EXCHANGE_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("EXCHANGE_SYNC_ENABLED", true)
	viper.SetDefault("EXCHANGE_DEFAULT_COST_RATE", 5.0)
	viper.SetDefault("EXCHANGE_DEFAULT_REVENUE_RATE", 5.0)

	viper.SetDefault("INGESTION_TOKEN", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
