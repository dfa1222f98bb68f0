package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

func (r *Repository) SaveAlerts(ctx context.Context, alerts []model.Alert) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_alerts", err, start)
	}()

	if len(alerts) == 0 {
		return nil
	}

	docs := make([]any, 0, len(alerts))
	for _, alert := range alerts {
		var doc alertDocument
		doc, err = alertToDocument(alert)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	if _, err = r.db.Collection(alertCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}
	return nil
}

// Alerts returns up to limit alerts, newest first.
func (r *Repository) Alerts(ctx context.Context, limit int64) ([]model.Alert, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("alerts", err, start)
	}()

	cursor, err := r.db.Collection(alertCollection).Find(ctx, bson.D{}, findRecent(limit))
	if err != nil {
		return nil, fmt.Errorf("find alerts: %w", err)
	}
	var docs []alertDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}

	alerts := make([]model.Alert, 0, len(docs))
	for _, doc := range docs {
		var alert model.Alert
		alert, err = alertFromDocument(doc)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
