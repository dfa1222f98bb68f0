// Package mongo persists analysis results in MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	alertCollection         = "alert"
	transactionCollection   = "transaction"
	blockCollection         = "block"
	blockAnalysisCollection = "blockAnalysis"

	connectTimeout = 10 * time.Second
)

type Repository struct {
	client  *mongo.Client
	db      *mongo.Database
	metrics Metrics
}

// NewRepository connects to uri, verifies the connection and prepares indexes in database.
func NewRepository(ctx context.Context, uri, database string, metrics Metrics) (*Repository, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is required")
	}
	if database == "" {
		return nil, errors.New("mongo database is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	client, err := connect(ctx, uri)
	if err != nil {
		return nil, err
	}

	r := &Repository{client: client, db: client.Database(database), metrics: metrics}
	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return r, nil
}

func connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func (r *Repository) ensureIndexes(ctx context.Context) error {
	byCreated := mongo.IndexModel{Keys: bson.D{{Key: "created", Value: -1}}}
	byBlock := mongo.IndexModel{Keys: bson.D{{Key: "blockNumber", Value: -1}}}

	indexes := map[string][]mongo.IndexModel{
		alertCollection:         {byCreated, byBlock},
		transactionCollection:   {byBlock, {Keys: bson.D{{Key: "hash", Value: 1}}}},
		blockCollection:         {byCreated, {Keys: bson.D{{Key: "number", Value: -1}}}},
		blockAnalysisCollection: {byCreated, byBlock},
	}
	for collection, models := range indexes {
		if _, err := r.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", collection, err)
		}
	}
	return nil
}

// Close disconnects the client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func findRecent(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)
}
