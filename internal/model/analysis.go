package model

import (
	"math/big"
	"time"
)

// AlertKind classifies the anomaly an alert reports.
type AlertKind string

var (
	AlertHighValue             AlertKind = "high_value"
	AlertFailedRatio           AlertKind = "failed_ratio"
	AlertContractCreationRatio AlertKind = "contract_creation_ratio"
)

// Alert is a human-readable notice about an anomaly found in a block.
type Alert struct {
	ID          string
	Created     time.Time
	BlockNumber uint64
	BlockHash   string
	Kind        AlertKind
	// TxHash is set for per-transaction alerts only.
	TxHash  string
	Message string
}

// BlockMetrics is the analysis result for one block.
type BlockMetrics struct {
	ID             string
	Created        time.Time
	BlockNumber    uint64
	BlockHash      string
	BlockTimestamp uint64

	TransactionCount      uint32
	HighGasUsageCount     uint32
	FailedCount           uint32
	ContractCreationCount uint32
	HighValueCount        uint32

	AverageGasUsed            *big.Int
	AverageGasPriceVolatility *big.Int

	FailedRatio           float64
	ContractCreationRatio float64

	// TransactionsPerSecond and MiningTimeSeconds are nil when the previous
	// block timestamp could not be obtained.
	TransactionsPerSecond *float64
	MiningTimeSeconds     *uint64
}
