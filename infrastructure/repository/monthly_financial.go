package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/oficina-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/oficina-dashboard-api/internal/domain"
)

const DefaultMonthlyFinancialsTable = "monthly_financials"

// CreateMonthlyFinancialsTable cria a tabela usada pela fonte postgres
const CreateMonthlyFinancialsTable = `
CREATE TABLE IF NOT EXISTS %s (
	year       INTEGER       NOT NULL,
	month      TEXT          NOT NULL,
	revenue    NUMERIC(14,2) NOT NULL CHECK (revenue >= 0),
	expenses   NUMERIC(14,2) NOT NULL CHECK (expenses >= 0),
	profit     NUMERIC(14,2) NOT NULL,
	created_at TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (year, month)
)`

type MonthlyFinancialRepository interface {
	LoadAll(ctx context.Context) (domain.RawDataset, error)
	CreateTable(ctx context.Context, q postgres.Queryer) error
	SaveOrUpdate(ctx context.Context, q postgres.Queryer, records []domain.Record) (int, error)
}

// rowScanner é satisfeito por *sql.Rows
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type monthlyFinancialRepository struct {
	conn  postgres.Queryer
	table string
}

func NewMonthlyFinancialRepository(conn postgres.Queryer, table string) MonthlyFinancialRepository {
	if table == "" {
		table = DefaultMonthlyFinancialsTable
	}

	return &monthlyFinancialRepository{
		conn:  conn,
		table: table,
	}
}

func (r *monthlyFinancialRepository) selectQuery() (string, []any, error) {
	return squirrel.
		Select("year", "month", "revenue", "expenses", "profit").
		From(r.table).
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *monthlyFinancialRepository) LoadAll(ctx context.Context) (domain.RawDataset, error) {
	query, args, err := r.selectQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return scanDataset(rows)
}

// scanDataset agrupa as linhas no formato ano -> mês -> valores
func scanDataset(rows rowScanner) (domain.RawDataset, error) {
	defer rows.Close()

	dataset := domain.RawDataset{}
	for rows.Next() {
		var (
			year   int
			month  string
			values domain.MonthValues
		)

		if err := rows.Scan(&year, &month, &values.Revenue, &values.Expenses, &values.Profit); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro mensal: %w", err)
		}

		key := strconv.Itoa(year)
		if _, ok := dataset[key]; !ok {
			dataset[key] = map[string]domain.MonthValues{}
		}
		dataset[key][month] = values
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dataset, nil
}

func (r *monthlyFinancialRepository) CreateTable(ctx context.Context, q postgres.Queryer) error {
	if _, err := q.ExecContext(ctx, fmt.Sprintf(CreateMonthlyFinancialsTable, r.table)); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", r.table, err)
	}
	return nil
}

// upsertQuery grava o nome canônico de cada registro, nunca a chave recebida da
// fonte, para que "Março" e "MARÇO" caiam na mesma chave primária.
func (r *monthlyFinancialRepository) upsertQuery(records []domain.Record) (string, []any, int, error) {
	query := squirrel.StatementBuilder.
		Insert(r.table).
		Columns("year", "month", "revenue", "expenses", "profit").
		PlaceholderFormat(squirrel.Dollar)

	count := 0
	for _, record := range records {
		if record.MonthName == "" {
			return "", nil, 0, fmt.Errorf("registro sem nome de mês: ano %d, índice %d", record.Year, record.MonthIndex)
		}

		query = query.Values(
			record.Year,
			record.MonthName,
			record.Revenue.StringFixed(2),
			record.Expenses.StringFixed(2),
			record.Profit.StringFixed(2),
		)
		count++
	}

	if count == 0 {
		return "", nil, 0, nil
	}

	query = query.Suffix(`
		ON CONFLICT (year, month) DO UPDATE SET
			revenue = EXCLUDED.revenue,
			expenses = EXCLUDED.expenses,
			profit = EXCLUDED.profit,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return sqlQuery, args, count, nil
}

// SaveOrUpdate grava os registros já validados em lote e retorna a quantidade de meses gravados
func (r *monthlyFinancialRepository) SaveOrUpdate(ctx context.Context, q postgres.Queryer, records []domain.Record) (int, error) {
	sqlQuery, args, count, err := r.upsertQuery(records)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return count, nil
}
