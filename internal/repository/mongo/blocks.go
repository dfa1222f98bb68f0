package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

func (r *Repository) SaveBlock(ctx context.Context, block model.BlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_block", err, start)
	}()

	doc, err := blockToDocument(block)
	if err != nil {
		return err
	}
	if _, err = r.db.Collection(blockCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}
