package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

// BlockAnalyses returns up to limit block analyses, newest first.
func (r *Repository) BlockAnalyses(ctx context.Context, limit int64) ([]model.BlockMetrics, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_analyses", err, start)
	}()

	rows, err := r.conn.Query(ctx, blockAnalysesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query block analyses: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var analyses []model.BlockMetrics
	for rows.Next() {
		var (
			analysis           model.BlockMetrics
			averageGasUsed     string
			gasPriceVolatility string
		)
		if err = rows.Scan(
			&analysis.ID,
			&analysis.Created,
			&analysis.BlockNumber,
			&analysis.BlockHash,
			&analysis.BlockTimestamp,
			&analysis.TransactionCount,
			&analysis.HighGasUsageCount,
			&analysis.FailedCount,
			&analysis.ContractCreationCount,
			&analysis.HighValueCount,
			&averageGasUsed,
			&gasPriceVolatility,
			&analysis.FailedRatio,
			&analysis.ContractCreationRatio,
			&analysis.TransactionsPerSecond,
			&analysis.MiningTimeSeconds,
		); err != nil {
			return nil, fmt.Errorf("scan block analysis: %w", err)
		}
		if analysis.AverageGasUsed, err = parseBig(averageGasUsed); err != nil {
			return nil, fmt.Errorf("block %d average gas used: %w", analysis.BlockNumber, err)
		}
		if analysis.AverageGasPriceVolatility, err = parseBig(gasPriceVolatility); err != nil {
			return nil, fmt.Errorf("block %d gas price volatility: %w", analysis.BlockNumber, err)
		}
		analyses = append(analyses, analysis)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block analyses: %w", err)
	}

	return analyses, nil
}

const blockAnalysesQuery = `
SELECT
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
FROM block_analyses
ORDER BY created DESC, id ASC
LIMIT ?`
