package mongodb

import (
	"context"
	"fmt"

	"github.com/vfg2006/adtech-pipeline/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
	cfg      config.Mongo
}

func NewConnection(ctx context.Context, cfg config.Mongo) (*Connection, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("falha ao conectar no MongoDB: %w", err)
	}

	return &Connection{
		Client:   client,
		Database: client.Database(cfg.Database),
		cfg:      cfg,
	}, nil
}

// Collection retorna a coleção de documentos de engajamento configurada
func (c *Connection) Collection() *mongo.Collection {
	return c.Database.Collection(c.cfg.Collection)
}

func (c *Connection) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
