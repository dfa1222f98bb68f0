package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

// SaveAlerts stores alert rows in ClickHouse.
func (r *Repository) SaveAlerts(ctx context.Context, alerts []model.Alert) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_alerts", err, start)
	}()

	if len(alerts) == 0 {
		return nil
	}

	const query = `
INSERT INTO alerts (
	id,
	created,
	block_number,
	block_hash,
	kind,
	tx_hash,
	message
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare alerts batch: %w", err)
	}

	for _, alert := range alerts {
		if err = batch.Append(
			alert.ID,
			alert.Created,
			alert.BlockNumber,
			alert.BlockHash,
			string(alert.Kind),
			alert.TxHash,
			alert.Message,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append alert: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}
	return nil
}
