// Comando de carga: cria a tabela de registros mensais e grava o conjunto de
// dados embutido (ou SEED_FILE) no PostgreSQL configurado.
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/source"
	"github.com/vfg2006/oficina-dashboard-api/internal/config"
	"github.com/vfg2006/oficina-dashboard-api/internal/recordstore"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	ctx := context.Background()

	// A carga sempre lê do arquivo ou do conjunto embutido, nunca do próprio banco
	seed := cfg.Seed
	if seed.Source == config.SeedSourcePostgres {
		seed.Source = config.SeedSourceEmbedded
	}

	src, err := source.New(seed)
	if err != nil {
		logrus.WithError(err).Fatal("Fonte de registros inválida")
	}

	raw, err := src.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler conjunto de dados")
	}

	// Mesma tabela de meses da API: o que a carga aceita a API também aceita
	months, err := recordstore.MonthTableFor(cfg.Seed.MonthNames)
	if err != nil {
		logrus.WithError(err).Fatal("Tabela de meses inválida")
	}

	// Valida antes de gravar para não persistir meses ou valores inválidos
	store, err := recordstore.Build(raw, months)
	if err != nil {
		logrus.WithError(err).Fatal("Conjunto de dados inválido")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	repo := repository.NewMonthlyFinancialRepository(conn, cfg.Database.Table)
	startTime := time.Now()

	var saved int
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := repo.CreateTable(ctx, tx); err != nil {
			return err
		}

		saved, err = repo.SaveOrUpdate(ctx, tx, store.Records())
		return err
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro durante a migração")
	}

	logrus.WithFields(logrus.Fields{
		"source":   src.Name(),
		"table":    cfg.Database.Table,
		"saved":    saved,
		"years":    store.DistinctYears(),
		"duration": time.Since(startTime).String(),
	}).Info("Migração concluída")
}
