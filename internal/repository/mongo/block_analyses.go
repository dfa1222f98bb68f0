package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

func (r *Repository) SaveBlockAnalysis(ctx context.Context, analysis model.BlockMetrics) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_block_analysis", err, start)
	}()

	doc, err := analysisToDocument(analysis)
	if err != nil {
		return err
	}
	if _, err = r.db.Collection(blockAnalysisCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert block analysis: %w", err)
	}
	return nil
}

// BlockAnalyses returns up to limit analyses, newest first.
func (r *Repository) BlockAnalyses(ctx context.Context, limit int64) ([]model.BlockMetrics, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_analyses", err, start)
	}()

	cursor, err := r.db.Collection(blockAnalysisCollection).Find(ctx, bson.D{}, findRecent(limit))
	if err != nil {
		return nil, fmt.Errorf("find block analyses: %w", err)
	}
	var docs []blockAnalysisDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode block analyses: %w", err)
	}

	analyses := make([]model.BlockMetrics, 0, len(docs))
	for _, doc := range docs {
		var analysis model.BlockMetrics
		analysis, err = analysisFromDocument(doc)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}
