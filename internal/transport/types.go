// Package transport exposes the reporting HTTP API and the gRPC health service.
package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Reader interface {
		Alerts(ctx context.Context, limit int64) ([]model.Alert, error)
		BlockAnalyses(ctx context.Context, limit int64) ([]model.BlockMetrics, error)
	}
)
