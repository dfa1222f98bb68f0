// Package repository selects the persistence backend for analysis results.
package repository

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/repository/mongo"
)

type Kind string

const (
	Mongo      Kind = "mongo"
	ClickHouse Kind = "clickhouse"

	DefaultMongoDatabase = "blockchain"
)

// Store is implemented by every backend.
type Store interface {
	SaveAlerts(ctx context.Context, alerts []model.Alert) error
	SaveTransactions(ctx context.Context, txs []model.TransactionRecord) error
	SaveBlock(ctx context.Context, block model.BlockRecord) error
	SaveBlockAnalysis(ctx context.Context, analysis model.BlockMetrics) error

	Alerts(ctx context.Context, limit int64) ([]model.Alert, error)
	BlockAnalyses(ctx context.Context, limit int64) ([]model.BlockMetrics, error)

	Close(ctx context.Context) error
}

type Options struct {
	Kind          Kind
	MongoURI      string
	MongoDatabase string
	ClickHouseDSN string
}

// Open connects to the backend named by opts.Kind.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Kind {
	case Mongo, "":
		database := opts.MongoDatabase
		if database == "" {
			database = DefaultMongoDatabase
		}
		repo, err := mongo.NewRepository(ctx, opts.MongoURI, database, metrics.NewRepository(string(Mongo)))
		if err != nil {
			return nil, fmt.Errorf("open mongo repository: %w", err)
		}
		return repo, nil
	case ClickHouse:
		repo, err := clickhouse.NewRepository(opts.ClickHouseDSN, metrics.NewRepository(string(ClickHouse)))
		if err != nil {
			return nil, fmt.Errorf("open clickhouse repository: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store %q", opts.Kind)
	}
}
