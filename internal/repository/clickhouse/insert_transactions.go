package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

// SaveTransactions stores transaction rows together with their receipts.
// A transaction without a receipt gets an empty receipt_status.
func (r *Repository) SaveTransactions(ctx context.Context, txs []model.TransactionRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transactions (
	id,
	created,
	block_number,
	hash,
	tx_index,
	from_address,
	to_address,
	value,
	gas,
	gas_price,
	nonce,
	input,
	receipt_status,
	receipt_gas_used,
	receipt_cumulative_gas_used,
	contract_address
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, record := range txs {
		var receipt model.Receipt
		if record.Receipt != nil {
			receipt = *record.Receipt
		}
		tx := record.Transaction
		if err = batch.Append(
			record.ID,
			record.Created,
			record.BlockNumber,
			tx.Hash,
			tx.Index,
			tx.From,
			tx.To,
			bigString(tx.Value),
			tx.Gas,
			bigString(tx.GasPrice),
			tx.Nonce,
			tx.Input,
			string(receipt.Status),
			bigString(receipt.GasUsed),
			bigString(receipt.CumulativeGasUsed),
			receipt.ContractAddress,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
