package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/analyzer"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/pkg/workerpool"
	"go.uber.org/zap"
)

type blockProcessor struct {
	gateway        Gateway
	sink           Sink
	metrics        PipelineMetrics
	thresholds     model.Thresholds
	receiptWorkers int
	now            func() time.Time
	newID          func() string
	logger         *zap.Logger
}

// Process fetches, analyzes and persists one block.
func (p *blockProcessor) Process(ctx context.Context, number uint64) error {
	block, err := p.gateway.BlockWithTransactions(ctx, number)
	if err != nil {
		return &GatewayFetchError{Op: "fetch block", BlockNumber: number, Err: err}
	}

	receipts, err := p.fetchReceipts(ctx, block)
	if err != nil {
		return &GatewayFetchError{Op: "fetch receipts", BlockNumber: number, Err: err}
	}

	metrics, alerts := analyzer.Analyze(*block, receipts, p.previousTimestamp(ctx, number), p.thresholds)

	created := p.now().UTC()
	for i := range alerts {
		alerts[i].ID = p.newID()
		alerts[i].Created = created
	}
	metrics.ID = p.newID()
	metrics.Created = created

	txs := make([]model.TransactionRecord, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		record := model.TransactionRecord{
			ID:          p.newID(),
			Created:     created,
			BlockNumber: block.Number,
			Transaction: tx,
		}
		if receipt, ok := receipts[tx.Hash]; ok {
			record.Receipt = &receipt
		}
		txs = append(txs, record)
	}
	blockRecord := model.BlockRecord{
		ID:      p.newID(),
		Created: created,
		Block:   *block,
	}

	if err := p.persist(ctx, number, alerts, txs, blockRecord, metrics); err != nil {
		return err
	}

	p.metrics.ObserveAlerts(alerts)
	p.logger.Info("block analyzed",
		zap.Uint64("block", number),
		zap.Uint32("transactions", metrics.TransactionCount),
		zap.Uint32("failed", metrics.FailedCount),
		zap.Uint32("contractCreations", metrics.ContractCreationCount),
		zap.Uint32("highValue", metrics.HighValueCount),
		zap.Int("alerts", len(alerts)),
	)
	return nil
}

func (p *blockProcessor) fetchReceipts(ctx context.Context, block *model.Block) (map[string]model.Receipt, error) {
	fetched, err := workerpool.Map(ctx, p.receiptWorkers, block.Transactions,
		func(ctx context.Context, tx model.Transaction) (model.Receipt, error) {
			receipt, err := p.gateway.Receipt(ctx, tx.Hash)
			if err != nil {
				return model.Receipt{}, fmt.Errorf("receipt %s: %w", tx.Hash, err)
			}
			if receipt == nil {
				return model.Receipt{}, fmt.Errorf("receipt %s: empty response", tx.Hash)
			}
			return *receipt, nil
		})
	if err != nil {
		return nil, err
	}

	receipts := make(map[string]model.Receipt, len(fetched))
	for i, receipt := range fetched {
		receipts[block.Transactions[i].Hash] = receipt
	}
	return receipts, nil
}

// previousTimestamp returns nil when the parent header is unavailable; timing
// metrics are then left empty instead of failing the block.
func (p *blockProcessor) previousTimestamp(ctx context.Context, number uint64) *uint64 {
	if number == 0 {
		return nil
	}
	header, err := p.gateway.BlockHeader(ctx, number-1)
	if err != nil || header == nil {
		p.logger.Warn("previous block header unavailable; timing metrics skipped",
			zap.Uint64("block", number), zap.Error(err))
		return nil
	}
	timestamp := header.Timestamp
	return &timestamp
}

func (p *blockProcessor) persist(
	ctx context.Context,
	number uint64,
	alerts []model.Alert,
	txs []model.TransactionRecord,
	block model.BlockRecord,
	analysis model.BlockMetrics,
) error {
	if len(alerts) > 0 {
		if err := p.sink.SaveAlerts(ctx, alerts); err != nil {
			return &StoreWriteError{Op: "save alerts", BlockNumber: number, Err: err}
		}
	}
	if len(txs) > 0 {
		if err := p.sink.SaveTransactions(ctx, txs); err != nil {
			return &StoreWriteError{Op: "save transactions", BlockNumber: number, Err: err}
		}
	}
	if err := p.sink.SaveBlock(ctx, block); err != nil {
		return &StoreWriteError{Op: "save block", BlockNumber: number, Err: err}
	}
	if err := p.sink.SaveBlockAnalysis(ctx, analysis); err != nil {
		return &StoreWriteError{Op: "save block analysis", BlockNumber: number, Err: err}
	}
	return nil
}
