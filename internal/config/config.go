package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	Clube           Clube           `mapstructure:",squash"`
	BillingSchedule BillingSchedule `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	SSLMode        string `mapstructure:"database_sslmode"`
	MigrateOnStart bool   `mapstructure:"database_migrate_on_start"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda os hashes bcrypt das senhas dos dois perfis administrativos
type Auth struct {
	SindicoPasswordHash     string        `mapstructure:"admin_sindico_password_hash"`
	GestorClubePasswordHash string        `mapstructure:"admin_gestor_clube_password_hash"`
	TokenTTL                time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Clube reúne as regras de negócio configuráveis do clube de vantagens
type Clube struct {
	ComissaoGestorPercentual float64 `mapstructure:"clube_comissao_gestor_percentual"`
}

type BillingSchedule struct {
	GenerationCron string `mapstructure:"billing_generation_cron"`
	OverdueCron    string `mapstructure:"billing_overdue_cron"`
	Enabled        bool   `mapstructure:"billing_schedule_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/clube")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MIGRATE_ON_START", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("ADMIN_SINDICO_PASSWORD_HASH", "")
	viper.SetDefault("ADMIN_GESTOR_CLUBE_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	// Percentual da receita do clube que fica com o gestor; o restante vai para o condomínio
	viper.SetDefault("CLUBE_COMISSAO_GESTOR_PERCENTUAL", 60)

	// Geração e atualização de atrasados são acionadas pelo admin; o agendamento é opcional
	viper.SetDefault("BILLING_GENERATION_CRON", "0 6 1 * *") // Dia 1 de cada mês às 6h
	viper.SetDefault("BILLING_OVERDUE_CRON", "0 7 * * *")    // Todos os dias às 7h
	viper.SetDefault("BILLING_SCHEDULE_ENABLED", false)

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

	if config.Clube.ComissaoGestorPercentual < 0 || config.Clube.ComissaoGestorPercentual > 100 {
		return nil, fmt.Errorf("CLUBE_COMISSAO_GESTOR_PERCENTUAL deve estar entre 0 e 100, recebido %.2f", config.Clube.ComissaoGestorPercentual)
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

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
