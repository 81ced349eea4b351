package repository

//go:generate mockgen -source=advertiser.go -destination=mocks/advertiser.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/sqldb"
)

type AdvertiserRepository interface {
	// ListAdvertisers retorna o mapa nome -> id dos anunciantes já gravados
	ListAdvertisers(ctx context.Context) (map[string]int64, error)
	// CreateAdvertiser retorna ErrDuplicateKey quando o nome já existe
	CreateAdvertiser(ctx context.Context, name string) (int64, error)
	FindAdvertiserID(ctx context.Context, name string) (int64, bool, error)
}

type advertiserRepository struct {
	conn *sqldb.Connection
}

func NewAdvertiserRepository(conn *sqldb.Connection) AdvertiserRepository {
	return &advertiserRepository{
		conn: conn,
	}
}

func (a *advertiserRepository) ListAdvertisers(ctx context.Context) (map[string]int64, error) {
	query, args, err := squirrel.
		Select("advertiser_id", "advertiser_name").
		From(AdvertisersTable.Name).
		PlaceholderFormat(a.conn.Dialect.Placeholder()).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anunciantes: %w", err)
	}
	defer rows.Close()

	advertisers := make(map[string]int64)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		advertisers[name] = id
	}

	return advertisers, rows.Err()
}

// CreateAdvertiser insere o anunciante em uma transação própria: uma violação de
// chave única aborta a transação no PostgreSQL e não pode contaminar os lotes.
func (a *advertiserRepository) CreateAdvertiser(ctx context.Context, name string) (int64, error) {
	builder := squirrel.Insert(AdvertisersTable.Name).
		Columns(AdvertisersTable.Columns...).
		Values(name)

	var id int64
	err := a.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = a.conn.Dialect.InsertReturningID(ctx, tx, builder, AdvertisersTable.IDColumn)
		return err
	})
	if err != nil {
		if a.conn.Dialect.IsUniqueViolation(err) {
			return 0, fmt.Errorf("anunciante %q: %w", name, ErrDuplicateKey)
		}
		return 0, fmt.Errorf("erro ao criar anunciante %q: %w", name, err)
	}

	return id, nil
}

func (a *advertiserRepository) FindAdvertiserID(ctx context.Context, name string) (int64, bool, error) {
	query, args, err := squirrel.
		Select("advertiser_id").
		From(AdvertisersTable.Name).
		Where(squirrel.Eq{"advertiser_name": name}).
		PlaceholderFormat(a.conn.Dialect.Placeholder()).
		ToSql()
	if err != nil {
		return 0, false, err
	}

	var id int64
	if err := a.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}

	return id, true, nil
}
