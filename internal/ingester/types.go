package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		BlockWithTransactions(ctx context.Context, number uint64) (*model.Block, error)
		BlockHeader(ctx context.Context, number uint64) (*model.BlockHeader, error)
		Receipt(ctx context.Context, txHash string) (*model.Receipt, error)
	}
	Sink interface {
		SaveAlerts(ctx context.Context, alerts []model.Alert) error
		SaveTransactions(ctx context.Context, txs []model.TransactionRecord) error
		SaveBlock(ctx context.Context, block model.BlockRecord) error
		SaveBlockAnalysis(ctx context.Context, analysis model.BlockMetrics) error
	}
	BlockProcessor interface {
		Process(ctx context.Context, number uint64) error
	}

	PipelineMetrics interface {
		ObserveQueueLength(length int)
		ObserveProcessBlock(err error, number uint64, started time.Time)
		ObserveAlerts(alerts []model.Alert)
	}
)
