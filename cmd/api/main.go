package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/portalcondominio/clube-api/infrastructure/database/postgres"
	"github.com/portalcondominio/clube-api/infrastructure/migration"
	"github.com/portalcondominio/clube-api/infrastructure/repository"
	"github.com/portalcondominio/clube-api/internal/api"
	"github.com/portalcondominio/clube-api/internal/config"
	"github.com/portalcondominio/clube-api/internal/observability/metrics"
	"github.com/portalcondominio/clube-api/internal/scheduler"
	"github.com/portalcondominio/clube-api/internal/usecases/advertising"
	"github.com/portalcondominio/clube-api/internal/usecases/authenticating"
	"github.com/portalcondominio/clube-api/internal/usecases/billing"
	"github.com/portalcondominio/clube-api/internal/usecases/dashboard"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Valores monetários saem como número no JSON, como o painel espera
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrateOnStart {
		if err := migration.RunMigrations(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	advertiserRepo := repository.NewAdvertiserRepository(pgConn)
	financialRecordRepo := repository.NewFinancialRecordRepository(pgConn)

	billingMetrics := metrics.NewBillingMetrics(prometheus.DefaultRegisterer)

	billingService := billing.NewService(advertiserRepo, financialRecordRepo, billingMetrics)
	dashboardService := dashboard.NewService(advertiserRepo, financialRecordRepo, cfg.Clube.ComissaoGestorPercentual)
	advertisingService := advertising.NewService(advertiserRepo, billingService)
	authenticator := authenticating.NewService(cfg)

	billingSchedule := scheduler.NewBillingScheduleService(billingService, cfg)
	if err := billingSchedule.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de cobranças")
	}

	server, err := api.New(
		cfg,
		authenticator,
		advertisingService,
		billingService,
		dashboardService,
		billingSchedule,
		prometheus.DefaultGatherer,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// .env é procurado a partir do diretório do main
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório da aplicação, usando o diretório atual")
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
