// Package analyzer computes block risk metrics and alerts.
//
// Analyze is pure: it performs no I/O, reads no clock and assigns no identifiers,
// so identical inputs always produce identical results.
package analyzer

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/shopspring/decimal"
)

// Analyze computes metrics and alerts for a block.
//
// receipts is keyed by transaction hash; a transaction without a receipt is not
// classified as failed or high gas. previousTimestamp is the timestamp of the
// parent block, nil when unknown.
func Analyze(
	block model.Block,
	receipts map[string]model.Receipt,
	previousTimestamp *uint64,
	thresholds model.Thresholds,
) (model.BlockMetrics, []model.Alert) {
	txCount := len(block.Transactions)
	metrics := model.BlockMetrics{
		BlockNumber:      block.Number,
		BlockHash:        block.Hash,
		BlockTimestamp:   block.Timestamp,
		TransactionCount: uint32(txCount),
		AverageGasUsed:   averageGasUsed(block.GasUsed, txCount),
	}

	var (
		alerts       []model.Alert
		highGasLimit = highGasLimit(metrics.AverageGasUsed, thresholds.HighGasMultiplier)
		volatility   gasPriceVolatility
	)
	for _, tx := range block.Transactions {
		if tx.IsContractCreation() {
			metrics.ContractCreationCount++
		}

		if receipt, ok := receipts[tx.Hash]; ok {
			if receipt.GasUsed != nil && new(big.Float).SetInt(receipt.GasUsed).Cmp(highGasLimit) > 0 {
				metrics.HighGasUsageCount++
			}
			if receipt.Status == model.ReceiptFailure {
				metrics.FailedCount++
			}
		}

		if isHighValue(tx.Value, thresholds.HighValueWei) {
			metrics.HighValueCount++
			alerts = append(alerts, model.Alert{
				BlockNumber: block.Number,
				BlockHash:   block.Hash,
				Kind:        model.AlertHighValue,
				TxHash:      tx.Hash,
				Message: fmt.Sprintf("Transaction with value greater than %s ETH: hash %s",
					formatEther(thresholds.HighValueWei), tx.Hash),
			})
		}

		volatility.observe(tx.GasPrice)
	}
	metrics.AverageGasPriceVolatility = volatility.mean()

	if txCount > 0 {
		metrics.FailedRatio = float64(metrics.FailedCount) / float64(txCount)
		metrics.ContractCreationRatio = float64(metrics.ContractCreationCount) / float64(txCount)
	}
	if metrics.FailedRatio > thresholds.FailedRatio {
		alerts = append(alerts, model.Alert{
			BlockNumber: block.Number,
			BlockHash:   block.Hash,
			Kind:        model.AlertFailedRatio,
			Message: fmt.Sprintf("Too many transactions (%.2f%%) failed in block %d",
				metrics.FailedRatio*100, block.Number),
		})
	}
	if metrics.ContractCreationRatio > thresholds.ContractCreationRatio {
		alerts = append(alerts, model.Alert{
			BlockNumber: block.Number,
			BlockHash:   block.Hash,
			Kind:        model.AlertContractCreationRatio,
			Message: fmt.Sprintf("Too many contract creations (%.2f%%) in block %d",
				metrics.ContractCreationRatio*100, block.Number),
		})
	}

	if previousTimestamp != nil {
		miningTime := miningTime(block.Timestamp, *previousTimestamp)
		tps := 0.0
		if miningTime > 0 {
			tps = float64(txCount) / float64(miningTime)
		}
		metrics.MiningTimeSeconds = &miningTime
		metrics.TransactionsPerSecond = &tps
	}

	return metrics, alerts
}

func averageGasUsed(gasUsed *big.Int, txCount int) *big.Int {
	if gasUsed == nil || txCount == 0 {
		return new(big.Int)
	}
	return new(big.Int).Quo(gasUsed, big.NewInt(int64(txCount)))
}

func highGasLimit(average *big.Int, multiplier float64) *big.Float {
	return new(big.Float).Mul(new(big.Float).SetInt(average), big.NewFloat(multiplier))
}

func isHighValue(value, threshold *big.Int) bool {
	if value == nil || threshold == nil {
		return false
	}
	return value.Cmp(threshold) > 0
}

// miningTime clamps to zero when timestamps go backwards.
func miningTime(current, previous uint64) uint64 {
	if current <= previous {
		return 0
	}
	return current - previous
}

func formatEther(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -18).String()
}

// gasPriceVolatility accumulates absolute gas price changes between consecutive transactions.
type gasPriceVolatility struct {
	previous *big.Int
	total    big.Int
	changes  int64
}

func (v *gasPriceVolatility) observe(gasPrice *big.Int) {
	current := gasPrice
	if current == nil {
		current = new(big.Int)
	}
	if v.previous != nil {
		delta := new(big.Int).Sub(current, v.previous)
		v.total.Add(&v.total, delta.Abs(delta))
		v.changes++
	}
	v.previous = current
}

func (v *gasPriceVolatility) mean() *big.Int {
	if v.changes == 0 {
		return new(big.Int)
	}
	return new(big.Int).Quo(&v.total, big.NewInt(v.changes))
}
