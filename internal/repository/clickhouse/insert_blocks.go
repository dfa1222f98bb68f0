package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

// SaveBlock stores the block header row.
func (r *Repository) SaveBlock(ctx context.Context, record model.BlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_block", err, start)
	}()

	const query = `
INSERT INTO blocks (
	id,
	created,
	number,
	hash,
	parent_hash,
	timestamp,
	gas_used,
	gas_limit,
	miner,
	tx_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	block := record.Block
	if err = batch.Append(
		record.ID,
		record.Created,
		block.Number,
		block.Hash,
		block.ParentHash,
		block.Timestamp,
		bigString(block.GasUsed),
		bigString(block.GasLimit),
		block.Miner,
		uint32(len(block.Transactions)),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append block: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
