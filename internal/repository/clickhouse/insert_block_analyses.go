package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

// SaveBlockAnalysis stores the computed metrics of one block.
func (r *Repository) SaveBlockAnalysis(ctx context.Context, analysis model.BlockMetrics) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_block_analysis", err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, insertBlockAnalysesQuery)
	if err != nil {
		return fmt.Errorf("prepare block analyses batch: %w", err)
	}

	if err = batch.Append(
		analysis.ID,
		analysis.Created,
		analysis.BlockNumber,
		analysis.BlockHash,
		analysis.BlockTimestamp,
		analysis.TransactionCount,
		analysis.HighGasUsageCount,
		analysis.FailedCount,
		analysis.ContractCreationCount,
		analysis.HighValueCount,
		bigString(analysis.AverageGasUsed),
		bigString(analysis.AverageGasPriceVolatility),
		analysis.FailedRatio,
		analysis.ContractCreationRatio,
		analysis.TransactionsPerSecond,
		analysis.MiningTimeSeconds,
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append block analysis: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block analyses: %w", err)
	}
	return nil
}

const insertBlockAnalysesQuery = `
INSERT INTO block_analyses (
	id,
	created,
	block_number,
	block_hash,
	block_timestamp,
	transaction_count,
	high_gas_usage_count,
	failed_count,
	contract_creation_count,
	high_value_count,
	average_gas_used,
	average_gas_price_volatility,
	failed_ratio,
	contract_creation_ratio,
	transactions_per_second,
	mining_time_seconds
) VALUES`
