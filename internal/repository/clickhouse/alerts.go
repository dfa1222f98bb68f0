package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

// Alerts returns up to limit alerts, newest first.
func (r *Repository) Alerts(ctx context.Context, limit int64) ([]model.Alert, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("alerts", err, start)
	}()

	const query = `
SELECT
	id,
	created,
	block_number,
	block_hash,
	kind,
	tx_hash,
	message
FROM alerts
ORDER BY created DESC, id ASC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var alerts []model.Alert
	for rows.Next() {
		var (
			alert model.Alert
			kind  string
		)
		if err = rows.Scan(
			&alert.ID,
			&alert.Created,
			&alert.BlockNumber,
			&alert.BlockHash,
			&kind,
			&alert.TxHash,
			&alert.Message,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alert.Kind = model.AlertKind(kind)
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}

	return alerts, nil
}
