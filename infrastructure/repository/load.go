package repository

//go:generate mockgen -source=load.go -destination=mocks/load.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/sqldb"
)

type LoadRepository interface {
	// InsertBatch grava todas as linhas em uma única transação, ignorando duplicadas.
	// Retorna quantas linhas foram de fato inseridas.
	InsertBatch(ctx context.Context, table Table, rows [][]any) (int64, error)
	InsertRow(ctx context.Context, table Table, row []any) (int64, error)
	ClearAll(ctx context.Context) error
}

type loadRepository struct {
	conn *sqldb.Connection
}

func NewLoadRepository(conn *sqldb.Connection) LoadRepository {
	return &loadRepository{
		conn: conn,
	}
}

func (r *loadRepository) InsertBatch(ctx context.Context, table Table, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	builder := r.conn.Dialect.InsertIgnore(table.Name, table.Columns...)
	for _, row := range rows {
		if len(row) != len(table.Columns) {
			return 0, fmt.Errorf("linha com %d valores para %d colunas de %s", len(row), len(table.Columns), table.Name)
		}
		builder = builder.Values(row...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var inserted int64
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		inserted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir lote em %s: %w", table.Name, err)
	}

	return inserted, nil
}

func (r *loadRepository) InsertRow(ctx context.Context, table Table, row []any) (int64, error) {
	query, args, err := r.conn.Dialect.InsertIgnore(table.Name, table.Columns...).
		Values(row...).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir linha em %s: %w", table.Name, err)
	}

	return result.RowsAffected()
}

// ClearAll apaga todas as tabelas na ordem das chaves estrangeiras e reinicia os contadores de id
func (r *loadRepository) ClearAll(ctx context.Context) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range clearOrder {
			query, args, err := squirrel.Delete(table.Name).
				PlaceholderFormat(r.conn.Dialect.Placeholder()).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao limpar %s: %w", table.Name, err)
			}
			logrus.WithField("table", table.Name).Debug("Tabela limpa")
		}

		for _, table := range clearOrder {
			if table.IDColumn == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, r.conn.Dialect.ResetCounter(table.Name, table.IDColumn)); err != nil {
				return fmt.Errorf("erro ao reiniciar contador de %s: %w", table.Name, err)
			}
		}

		return nil
	})
}
