package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/vfg2006/adtech-pipeline/internal/config"
)

const (
	pgUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
	postgresDriverName  = "postgres"
	mysqlDriverName     = "mysql"
)

// Dialect isola as diferenças de SQL entre os bancos suportados
type Dialect interface {
	DriverName() string
	Placeholder() squirrel.PlaceholderFormat

	// InsertIgnore monta um INSERT que ignora linhas que violam chaves únicas
	InsertIgnore(table string, columns ...string) squirrel.InsertBuilder

	// InsertReturningID insere uma linha e devolve o id gerado
	InsertReturningID(ctx context.Context, tx *sql.Tx, builder squirrel.InsertBuilder, idColumn string) (int64, error)

	// ResetCounter reinicia o contador de ids gerados da tabela
	ResetCounter(table, idColumn string) string

	IsUniqueViolation(err error) bool
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres, "":
		return Postgres{}, nil
	case config.DriverMySQL:
		return MySQL{}, nil
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}
}

type Postgres struct{}

func (Postgres) DriverName() string { return postgresDriverName }

func (Postgres) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (p Postgres) InsertIgnore(table string, columns ...string) squirrel.InsertBuilder {
	return squirrel.Insert(table).
		Columns(columns...).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(p.Placeholder())
}

func (p Postgres) InsertReturningID(ctx context.Context, tx *sql.Tx, builder squirrel.InsertBuilder, idColumn string) (int64, error) {
	query, args, err := builder.
		Suffix("RETURNING " + idColumn).
		PlaceholderFormat(p.Placeholder()).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (Postgres) ResetCounter(table, idColumn string) string {
	return fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), 1, false)", table, idColumn)
}

func (Postgres) IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	return false
}

type MySQL struct{}

func (MySQL) DriverName() string { return mysqlDriverName }

func (MySQL) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

func (m MySQL) InsertIgnore(table string, columns ...string) squirrel.InsertBuilder {
	return squirrel.Insert(table).
		Options("IGNORE").
		Columns(columns...).
		PlaceholderFormat(m.Placeholder())
}

func (m MySQL) InsertReturningID(ctx context.Context, tx *sql.Tx, builder squirrel.InsertBuilder, _ string) (int64, error) {
	query, args, err := builder.PlaceholderFormat(m.Placeholder()).ToSql()
	if err != nil {
		return 0, err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (MySQL) ResetCounter(table, _ string) string {
	return fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = 1", table)
}

func (MySQL) IsUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return false
}
