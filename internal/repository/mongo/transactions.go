package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

func (r *Repository) SaveTransactions(ctx context.Context, txs []model.TransactionRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	docs := make([]any, 0, len(txs))
	for _, tx := range txs {
		var doc transactionDocument
		doc, err = transactionToDocument(tx)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	if _, err = r.db.Collection(transactionCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
