package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/source"
	"github.com/vfg2006/oficina-dashboard-api/internal/api"
	"github.com/vfg2006/oficina-dashboard-api/internal/config"
	"github.com/vfg2006/oficina-dashboard-api/internal/recordstore"
	"github.com/vfg2006/oficina-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/oficina-dashboard-api/pkg/format"
	"github.com/vfg2006/oficina-dashboard-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	if err := log.Configure(log.Options{Level: cfg.App.LogLevel, Development: cfg.IsDevelopment()}); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	months, err := recordstore.MonthTableFor(cfg.Seed.MonthNames)
	if err != nil {
		logrus.WithError(err).Fatal("Tabela de meses inválida")
	}

	recordSource, closer := newRecordSource(ctx, cfg)
	store, err := recordstore.Load(ctx, recordSource, months)
	_ = closer.Close()
	if err != nil {
		fatalBuildError(err, recordSource.Name())
	}

	logrus.WithFields(logrus.Fields{
		"source":  recordSource.Name(),
		"records": store.Len(),
		"years":   store.DistinctYears(),
	}).Info("Registros mensais carregados")

	for _, mismatch := range store.ProfitMismatches() {
		logrus.WithFields(logrus.Fields{
			"period":   mismatch.Record.PeriodLabel,
			"profit":   mismatch.Record.Profit.StringFixed(2),
			"expected": mismatch.Expected.StringFixed(2),
			"diff":     mismatch.Diff.StringFixed(2),
		}).Warn("Lucro diverge de receita - despesas")
	}

	formatter := format.Formatter{
		ThousandsSeparator: cfg.Format.ThousandsSeparator,
		DecimalSeparator:   cfg.Format.DecimalSeparator,
		CurrencyPrefix:     cfg.Format.CurrencyPrefix,
	}
	if err := formatter.Validate(); err != nil {
		logrus.WithError(err).Fatal("Formatação inválida")
	}

	options := projecting.Options{
		FavorableThreshold:   decimal.NewFromFloat(cfg.Margin.FavorableThreshold),
		UnfavorableThreshold: decimal.NewFromFloat(cfg.Margin.UnfavorableThreshold),
		PercentDigits:        cfg.Margin.PercentDigits,
	}
	if err := options.Validate(); err != nil {
		logrus.WithError(err).Fatal("Limites de margem inválidos")
	}

	projector := projecting.NewService(store, formatter, options)

	if err := api.New(cfg, projector).Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar o servidor")
	}
}

// configureLogger configura o formato dos logs antes da leitura da configuração
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newRecordSource escolhe a fonte configurada. A conexão com o banco só é
// necessária durante a carga e é fechada logo depois.
func newRecordSource(ctx context.Context, cfg *config.Config) (source.RecordSource, io.Closer) {
	if cfg.Seed.Source != config.SeedSourcePostgres {
		src, err := source.New(cfg.Seed)
		if err != nil {
			logrus.WithError(err).Fatal("Fonte de registros inválida")
		}
		return src, closerFunc(func() error { return nil })
	}

	conn := pgconn(ctx, cfg.Database)
	repo := repository.NewMonthlyFinancialRepository(conn, cfg.Database.Table)

	return source.NewDatabaseSource(repo, cfg.Database.QueryTimeout), conn
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func fatalBuildError(err error, sourceName string) {
	fields := logrus.Fields{"source": sourceName}

	var buildErr *recordstore.BuildError
	if errors.As(err, &buildErr) {
		fields["year"] = buildErr.Year
		fields["month"] = buildErr.Month
	}

	logrus.WithFields(fields).WithError(err).Fatal("Erro ao carregar registros mensais")
}
