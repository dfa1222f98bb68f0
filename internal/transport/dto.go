package transport

import (
	"math/big"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
)

// Wei amounts and gas figures are rendered as decimal strings to keep precision in JSON.

type alertResponse struct {
	ID          string    `json:"id"`
	Created     time.Time `json:"created"`
	BlockNumber uint64    `json:"blockNumber"`
	BlockHash   string    `json:"blockHash"`
	Kind        string    `json:"kind"`
	TxHash      string    `json:"txHash,omitempty"`
	Message     string    `json:"alertMsg"`
}

type blockAnalysisResponse struct {
	ID                        string    `json:"id"`
	Created                   time.Time `json:"created"`
	BlockNumber               uint64    `json:"blockNumber"`
	BlockHash                 string    `json:"blockHash"`
	BlockTimestamp            uint64    `json:"blockTimestamp"`
	TransactionCount          uint32    `json:"transactionCount"`
	HighGasUsageCount         uint32    `json:"transactionsWithHighGasUsageCount"`
	FailedCount               uint32    `json:"failedTransactionsCount"`
	ContractCreationCount     uint32    `json:"contractCreationCount"`
	HighValueCount            uint32    `json:"highValueTransactions"`
	AverageGasUsed            string    `json:"averageGasUsed"`
	AverageGasPriceVolatility string    `json:"averageGasPriceVolatility"`
	FailedRatio               float64   `json:"failedTransactionsRate"`
	ContractCreationRatio     float64   `json:"contractCreationRate"`
	TransactionsPerSecond     *float64  `json:"transactionsPerSecond"`
	MiningTimeSeconds         *uint64   `json:"blockMiningTime"`
}

func newAlertResponses(alerts []model.Alert) []alertResponse {
	out := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, alertResponse{
			ID:          a.ID,
			Created:     a.Created,
			BlockNumber: a.BlockNumber,
			BlockHash:   a.BlockHash,
			Kind:        string(a.Kind),
			TxHash:      a.TxHash,
			Message:     a.Message,
		})
	}
	return out
}

func newBlockAnalysisResponses(analyses []model.BlockMetrics) []blockAnalysisResponse {
	out := make([]blockAnalysisResponse, 0, len(analyses))
	for _, m := range analyses {
		out = append(out, blockAnalysisResponse{
			ID:                        m.ID,
			Created:                   m.Created,
			BlockNumber:               m.BlockNumber,
			BlockHash:                 m.BlockHash,
			BlockTimestamp:            m.BlockTimestamp,
			TransactionCount:          m.TransactionCount,
			HighGasUsageCount:         m.HighGasUsageCount,
			FailedCount:               m.FailedCount,
			ContractCreationCount:     m.ContractCreationCount,
			HighValueCount:            m.HighValueCount,
			AverageGasUsed:            decimalString(m.AverageGasUsed),
			AverageGasPriceVolatility: decimalString(m.AverageGasPriceVolatility),
			FailedRatio:               m.FailedRatio,
			ContractCreationRatio:     m.ContractCreationRatio,
			TransactionsPerSecond:     m.TransactionsPerSecond,
			MiningTimeSeconds:         m.MiningTimeSeconds,
		})
	}
	return out
}

func decimalString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
